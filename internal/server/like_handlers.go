package server

import (
	"tuiter/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles PUT /api/users/:userid/likes/:tid
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	return s.toggleReaction(c, models.ReactionLiked)
}

// ToggleDislike handles PUT /api/users/:userid/dislikes/:tid
func (s *Server) ToggleDislike(c *fiber.Ctx) error {
	return s.toggleReaction(c, models.ReactionDisliked)
}

func (s *Server) toggleReaction(c *fiber.Ctx, want models.ReactionType) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}
	tuitID, err := s.parseID(c, "tid")
	if err != nil {
		return nil
	}

	tuit, err := s.likeService.Toggle(ctx, userID, tuitID, want)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(tuit)
}

// LikeTuit handles POST /api/users/:userid/likes/:tid
func (s *Server) LikeTuit(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}
	tuitID, err := s.parseID(c, "tid")
	if err != nil {
		return nil
	}

	tuit, err := s.likeService.React(ctx, userID, tuitID, models.ReactionLiked)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tuit)
}

// UnlikeTuit handles DELETE /api/users/:userid/unlikes/:tid
func (s *Server) UnlikeTuit(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}
	tuitID, err := s.parseID(c, "tid")
	if err != nil {
		return nil
	}

	tuit, err := s.likeService.Unreact(ctx, userID, tuitID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(tuit)
}

// GetReaction handles GET /api/users/:userid/likes/:tid
func (s *Server) GetReaction(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}
	tuitID, err := s.parseID(c, "tid")
	if err != nil {
		return nil
	}

	reaction, err := s.likeService.Reaction(ctx, userID, tuitID)
	if err != nil {
		return respondServiceError(c, err)
	}

	// A nil reaction marshals as null, so present and absent share one shape.
	return c.JSON(fiber.Map{"reaction": reaction})
}

// GetLikedTuits handles GET /api/users/:userid/likes
func (s *Server) GetLikedTuits(c *fiber.Ctx) error {
	return s.getReactedTuits(c, models.ReactionLiked)
}

// GetDislikedTuits handles GET /api/users/:userid/dislikes
func (s *Server) GetDislikedTuits(c *fiber.Ctx) error {
	return s.getReactedTuits(c, models.ReactionDisliked)
}

func (s *Server) getReactedTuits(c *fiber.Ctx, want models.ReactionType) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	tuits, err := s.likeService.TuitsReactedBy(ctx, userID, want, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(tuits)
}

// GetTuitLikers handles GET /api/tuits/:tid/likes
func (s *Server) GetTuitLikers(c *fiber.Ctx) error {
	ctx := c.Context()
	tuitID, err := s.parseID(c, "tid")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	users, err := s.likeService.UsersWhoReacted(ctx, tuitID, models.ReactionLiked, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(users)
}

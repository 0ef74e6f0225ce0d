package server

import (
	"github.com/gofiber/fiber/v2"
)

// Follow handles POST /api/users/:followerId/follows/:followedId
func (s *Server) Follow(c *fiber.Ctx) error {
	ctx := c.Context()
	followerID, err := s.parseID(c, "followerId")
	if err != nil {
		return nil
	}
	followedID, err := s.parseID(c, "followedId")
	if err != nil {
		return nil
	}

	if err := s.followService.Follow(ctx, followerID, followedID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

// Unfollow handles DELETE /api/users/:followerId/follows/:followedId
func (s *Server) Unfollow(c *fiber.Ctx) error {
	ctx := c.Context()
	followerID, err := s.parseID(c, "followerId")
	if err != nil {
		return nil
	}
	followedID, err := s.parseID(c, "followedId")
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(ctx, followerID, followedID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFollowing handles GET /api/users/:userid/follows
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	users, err := s.followService.Following(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(users)
}

// GetFollowers handles GET /api/users/:userid/follows/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	users, err := s.followService.Followers(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(users)
}

package server

import (
	"tuiter/internal/models"
	"tuiter/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateTuit handles POST /api/tuits. The author is carried in the body.
func (s *Server) CreateTuit(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Tuit       string `json:"tuit"`
		PostedByID uint   `json:"posted_by_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostedByID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("posted_by_id is required"))
	}

	tuit, err := s.tuitService.CreateTuit(ctx, service.CreateTuitInput{
		UserID: req.PostedByID,
		Tuit:   req.Tuit,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tuit)
}

// CreateUserTuit handles POST /api/users/:userid/tuits
func (s *Server) CreateUserTuit(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}

	var req struct {
		Tuit string `json:"tuit"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tuit, err := s.tuitService.CreateTuit(ctx, service.CreateTuitInput{
		UserID: userID,
		Tuit:   req.Tuit,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tuit)
}

// GetTuits handles GET /api/tuits
func (s *Server) GetTuits(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 20)

	tuits, err := s.tuitService.ListTuits(ctx, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(tuits)
}

// GetTuit handles GET /api/tuits/:tid
func (s *Server) GetTuit(c *fiber.Ctx) error {
	ctx := c.Context()
	tuitID, err := s.parseID(c, "tid")
	if err != nil {
		return nil
	}

	tuit, err := s.tuitService.GetTuit(ctx, tuitID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(tuit)
}

// GetUserTuits handles GET /api/users/:userid/tuits
func (s *Server) GetUserTuits(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	tuits, err := s.tuitService.GetUserTuits(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(tuits)
}

// UpdateTuit handles PUT /api/tuits/:tid
func (s *Server) UpdateTuit(c *fiber.Ctx) error {
	ctx := c.Context()
	tuitID, err := s.parseID(c, "tid")
	if err != nil {
		return nil
	}

	var req struct {
		Tuit string `json:"tuit"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tuit, err := s.tuitService.UpdateTuit(ctx, service.UpdateTuitInput{
		TuitID: tuitID,
		Tuit:   req.Tuit,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(tuit)
}

// DeleteTuit handles DELETE /api/tuits/:tid
func (s *Server) DeleteTuit(c *fiber.Ctx) error {
	ctx := c.Context()
	tuitID, err := s.parseID(c, "tid")
	if err != nil {
		return nil
	}

	if err := s.tuitService.DeleteTuit(ctx, tuitID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

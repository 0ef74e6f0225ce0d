package server

import (
	"tuiter/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SendMessage handles POST /api/users/:userid/messages/:otherId
func (s *Server) SendMessage(c *fiber.Ctx) error {
	ctx := c.Context()
	fromID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}
	toID, err := s.parseID(c, "otherId")
	if err != nil {
		return nil
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	message, err := s.messageService.Send(ctx, service.SendMessageInput{
		FromID:  fromID,
		ToID:    toID,
		Message: body.Message,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetSentMessages handles GET /api/users/:userid/messages/sent
func (s *Server) GetSentMessages(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	messages, err := s.messageService.Sent(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(messages)
}

// GetReceivedMessages handles GET /api/users/:userid/messages/received
func (s *Server) GetReceivedMessages(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	messages, err := s.messageService.Received(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(messages)
}

// DeleteMessage handles DELETE /api/messages/:mid
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	ctx := c.Context()
	messageID, err := s.parseID(c, "mid")
	if err != nil {
		return nil
	}

	if err := s.messageService.DeleteMessage(ctx, messageID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteConversation handles DELETE /api/users/:userid/messages/:otherId
func (s *Server) DeleteConversation(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}
	otherID, err := s.parseID(c, "otherId")
	if err != nil {
		return nil
	}

	if err := s.messageService.DeleteConversation(ctx, userID, otherID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

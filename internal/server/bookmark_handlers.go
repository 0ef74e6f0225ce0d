package server

import (
	"github.com/gofiber/fiber/v2"
)

// BookmarkTuit handles POST /api/users/:userid/bookmarks/:tid
func (s *Server) BookmarkTuit(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}
	tuitID, err := s.parseID(c, "tid")
	if err != nil {
		return nil
	}

	if err := s.bookmarkService.Bookmark(ctx, userID, tuitID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

// UnbookmarkTuit handles DELETE /api/users/:userid/bookmarks/:tid
func (s *Server) UnbookmarkTuit(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}
	tuitID, err := s.parseID(c, "tid")
	if err != nil {
		return nil
	}

	if err := s.bookmarkService.Unbookmark(ctx, userID, tuitID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetBookmarkedTuits handles GET /api/users/:userid/bookmarks
func (s *Server) GetBookmarkedTuits(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userid")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	tuits, err := s.bookmarkService.BookmarkedTuits(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(tuits)
}

// GetTuitBookmarkers handles GET /api/tuits/:tid/bookmarks
func (s *Server) GetTuitBookmarkers(c *fiber.Ctx) error {
	ctx := c.Context()
	tuitID, err := s.parseID(c, "tid")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	users, err := s.bookmarkService.UsersWhoBookmarked(ctx, tuitID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(users)
}

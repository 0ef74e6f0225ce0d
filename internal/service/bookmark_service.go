package service

import (
	"context"

	"tuiter/internal/models"
	"tuiter/internal/repository"
)

type BookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	tuitRepo     repository.TuitRepository
	userRepo     repository.UserRepository
}

func NewBookmarkService(
	bookmarkRepo repository.BookmarkRepository,
	tuitRepo repository.TuitRepository,
	userRepo repository.UserRepository,
) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		tuitRepo:     tuitRepo,
		userRepo:     userRepo,
	}
}

func (s *BookmarkService) Bookmark(ctx context.Context, userID, tuitID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.tuitRepo.GetByID(ctx, tuitID); err != nil {
		return err
	}
	return s.bookmarkRepo.Create(ctx, userID, tuitID)
}

func (s *BookmarkService) Unbookmark(ctx context.Context, userID, tuitID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.bookmarkRepo.Delete(ctx, userID, tuitID)
}

func (s *BookmarkService) BookmarkedTuits(ctx context.Context, userID uint, limit, offset int) ([]*models.Tuit, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.bookmarkRepo.TuitsBookmarkedBy(ctx, userID, limit, offset)
}

func (s *BookmarkService) UsersWhoBookmarked(ctx context.Context, tuitID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.tuitRepo.GetByID(ctx, tuitID); err != nil {
		return nil, err
	}
	return s.bookmarkRepo.UsersWhoBookmarked(ctx, tuitID, limit, offset)
}

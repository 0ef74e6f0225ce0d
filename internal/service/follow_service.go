package service

import (
	"context"

	"tuiter/internal/models"
	"tuiter/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow records a follow edge from follower to following. Following the same
// user again records another edge; Unfollow removes them all.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID uint) error {
	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return err
	}
	return s.followRepo.Create(ctx, followerID, followingID)
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return err
	}
	return s.followRepo.Delete(ctx, followerID, followingID)
}

func (s *FollowService) Following(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Following(ctx, userID, limit, offset)
}

func (s *FollowService) Followers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Followers(ctx, userID, limit, offset)
}

package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"tuiter/internal/models"
	"tuiter/internal/repository"
)

// maxTuitLen is the character limit for a tuit body.
const maxTuitLen = 280

type TuitService struct {
	tuitRepo repository.TuitRepository
	userRepo repository.UserRepository
}

type CreateTuitInput struct {
	UserID uint
	Tuit   string `json:"tuit"`
}

type UpdateTuitInput struct {
	TuitID uint
	Tuit   string `json:"tuit"`
}

func NewTuitService(tuitRepo repository.TuitRepository, userRepo repository.UserRepository) *TuitService {
	return &TuitService{tuitRepo: tuitRepo, userRepo: userRepo}
}

func validateTuitBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return models.NewValidationError("Tuit body is required")
	}
	if utf8.RuneCountInString(body) > maxTuitLen {
		return models.NewValidationError("Tuit body too long (max 280 characters)")
	}
	return nil
}

func (s *TuitService) CreateTuit(ctx context.Context, in CreateTuitInput) (*models.Tuit, error) {
	if err := validateTuitBody(in.Tuit); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	tuit := &models.Tuit{Tuit: in.Tuit, PostedByID: in.UserID}
	if err := s.tuitRepo.Create(ctx, tuit); err != nil {
		return nil, err
	}
	return s.tuitRepo.GetByID(ctx, tuit.ID)
}

func (s *TuitService) GetTuit(ctx context.Context, id uint) (*models.Tuit, error) {
	return s.tuitRepo.GetByID(ctx, id)
}

func (s *TuitService) ListTuits(ctx context.Context, limit, offset int) ([]*models.Tuit, error) {
	return s.tuitRepo.List(ctx, limit, offset)
}

func (s *TuitService) GetUserTuits(ctx context.Context, userID uint, limit, offset int) ([]*models.Tuit, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.tuitRepo.GetByUserID(ctx, userID, limit, offset)
}

// UpdateTuit replaces the tuit body. Author and timestamps are immutable.
func (s *TuitService) UpdateTuit(ctx context.Context, in UpdateTuitInput) (*models.Tuit, error) {
	if err := validateTuitBody(in.Tuit); err != nil {
		return nil, err
	}

	tuit, err := s.tuitRepo.GetByID(ctx, in.TuitID)
	if err != nil {
		return nil, err
	}

	tuit.Tuit = in.Tuit
	if err := s.tuitRepo.Update(ctx, tuit); err != nil {
		return nil, err
	}
	return s.tuitRepo.GetByID(ctx, in.TuitID)
}

func (s *TuitService) DeleteTuit(ctx context.Context, id uint) error {
	if _, err := s.tuitRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.tuitRepo.Delete(ctx, id)
}

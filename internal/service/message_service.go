package service

import (
	"context"
	"strings"

	"tuiter/internal/models"
	"tuiter/internal/repository"
)

type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

type SendMessageInput struct {
	FromID  uint
	ToID    uint
	Message string `json:"message"`
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo, userRepo: userRepo}
}

func (s *MessageService) Send(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, models.NewValidationError("Message body is required")
	}
	if _, err := s.userRepo.GetByID(ctx, in.FromID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, in.ToID); err != nil {
		return nil, err
	}

	message := &models.Message{Message: in.Message, FromID: in.FromID, ToID: in.ToID}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *MessageService) Sent(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.messageRepo.Sent(ctx, userID, limit, offset)
}

func (s *MessageService) Received(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.messageRepo.Received(ctx, userID, limit, offset)
}

func (s *MessageService) DeleteMessage(ctx context.Context, id uint) error {
	return s.messageRepo.DeleteByID(ctx, id)
}

// DeleteConversation removes every message between the two users in either
// direction.
func (s *MessageService) DeleteConversation(ctx context.Context, userID, otherID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.messageRepo.DeleteBetween(ctx, userID, otherID)
}

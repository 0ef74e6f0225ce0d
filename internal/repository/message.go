package repository

import (
	"context"

	"tuiter/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines persistence operations for direct messages.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	Sent(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error)
	Received(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteBetween(ctx context.Context, userID, otherID uint) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a new MessageRepository implementation.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *messageRepository) Sent(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.WithContext(ctx).
		Preload("To").
		Where("from_id = ?", userID).
		Order("sent_on DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return messages, nil
}

func (r *messageRepository) Received(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.WithContext(ctx).
		Preload("From").
		Where("to_id = ?", userID).
		Order("sent_on DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return messages, nil
}

func (r *messageRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Message{}, id).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

// DeleteBetween removes every message exchanged between the two users in
// either direction.
func (r *messageRepository) DeleteBetween(ctx context.Context, userID, otherID uint) error {
	err := r.db.WithContext(ctx).
		Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)",
			userID, otherID, otherID, userID).
		Delete(&models.Message{}).Error
	if err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

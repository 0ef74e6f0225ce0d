package repository

import (
	"context"

	"tuiter/internal/models"

	"gorm.io/gorm"
)

// BookmarkRepository defines persistence operations for bookmarks.
type BookmarkRepository interface {
	Create(ctx context.Context, userID, tuitID uint) error
	Delete(ctx context.Context, userID, tuitID uint) error
	TuitsBookmarkedBy(ctx context.Context, userID uint, limit, offset int) ([]*models.Tuit, error)
	UsersWhoBookmarked(ctx context.Context, tuitID uint, limit, offset int) ([]models.User, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository returns a new BookmarkRepository implementation.
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Create(ctx context.Context, userID, tuitID uint) error {
	bookmark := models.Bookmark{UserID: userID, TuitID: tuitID}
	if err := r.db.WithContext(ctx).Create(&bookmark).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *bookmarkRepository) Delete(ctx context.Context, userID, tuitID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tuit_id = ?", userID, tuitID).
		Delete(&models.Bookmark{}).Error
	if err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *bookmarkRepository) TuitsBookmarkedBy(ctx context.Context, userID uint, limit, offset int) ([]*models.Tuit, error) {
	var tuits []*models.Tuit
	err := applyTuitStats(r.db.WithContext(ctx)).
		Preload("PostedBy").
		Joins("JOIN bookmarks ON bookmarks.tuit_id = tuits.id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tuits).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return tuits, nil
}

func (r *bookmarkRepository) UsersWhoBookmarked(ctx context.Context, tuitID uint, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN bookmarks ON bookmarks.user_id = users.id").
		Where("bookmarks.tuit_id = ?", tuitID).
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return users, nil
}

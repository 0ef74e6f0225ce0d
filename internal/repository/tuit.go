package repository

import (
	"context"
	"errors"

	"tuiter/internal/cache"
	"tuiter/internal/models"

	"gorm.io/gorm"
)

// TuitRepository defines persistence operations for tuits.
type TuitRepository interface {
	Create(ctx context.Context, tuit *models.Tuit) error
	GetByID(ctx context.Context, id uint) (*models.Tuit, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Tuit, error)
	List(ctx context.Context, limit, offset int) ([]*models.Tuit, error)
	Update(ctx context.Context, tuit *models.Tuit) error
	Delete(ctx context.Context, id uint) error
}

type tuitRepository struct {
	db *gorm.DB
}

// NewTuitRepository returns a new TuitRepository implementation.
func NewTuitRepository(db *gorm.DB) TuitRepository {
	return &tuitRepository{db: db}
}

// applyTuitStats adds subqueries that derive like and dislike counts from the
// reaction rows in a single query. Counts are never stored on the tuit row, so
// they cannot drift from the rows they summarize.
func applyTuitStats(db *gorm.DB) *gorm.DB {
	return db.Select("tuits.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.tuit_id = tuits.id AND likes.type = 'LIKED') as stats_likes, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.tuit_id = tuits.id AND likes.type = 'DISLIKED') as stats_dislikes")
}

func (r *tuitRepository) Create(ctx context.Context, tuit *models.Tuit) error {
	if err := r.db.WithContext(ctx).Create(tuit).Error; err != nil {
		return models.NewStorageError(err)
	}
	cache.InvalidateUser(ctx, tuit.PostedByID)
	return nil
}

func (r *tuitRepository) GetByID(ctx context.Context, id uint) (*models.Tuit, error) {
	var tuit models.Tuit
	key := cache.TuitKey(id)

	err := cache.Aside(ctx, key, &tuit, cache.TuitTTL, func() error {
		if err := applyTuitStats(r.db.WithContext(ctx)).
			Preload("PostedBy").
			First(&tuit, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Tuit", id)
			}
			return models.NewStorageError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &tuit, nil
}

func (r *tuitRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Tuit, error) {
	var tuits []*models.Tuit
	err := applyTuitStats(r.db.WithContext(ctx)).
		Preload("PostedBy").
		Where("posted_by_id = ?", userID).
		Order("posted_on DESC").
		Limit(limit).
		Offset(offset).
		Find(&tuits).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return tuits, nil
}

func (r *tuitRepository) List(ctx context.Context, limit, offset int) ([]*models.Tuit, error) {
	var tuits []*models.Tuit
	err := applyTuitStats(r.db.WithContext(ctx)).
		Preload("PostedBy").
		Order("posted_on DESC").
		Limit(limit).
		Offset(offset).
		Find(&tuits).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return tuits, nil
}

func (r *tuitRepository) Update(ctx context.Context, tuit *models.Tuit) error {
	if err := r.db.WithContext(ctx).Save(tuit).Error; err != nil {
		return models.NewStorageError(err)
	}
	cache.InvalidateTuit(ctx, tuit.ID)
	return nil
}

func (r *tuitRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Tuit{}, id).Error; err != nil {
		return models.NewStorageError(err)
	}
	cache.InvalidateTuit(ctx, id)
	return nil
}

package repository

import (
	"context"
	"errors"

	"tuiter/internal/cache"
	"tuiter/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines persistence operations for tuit reactions.
type LikeRepository interface {
	Get(ctx context.Context, userID, tuitID uint) (*models.Like, error)
	Upsert(ctx context.Context, userID, tuitID uint, reaction models.ReactionType) error
	Delete(ctx context.Context, userID, tuitID uint) error
	CountByTuit(ctx context.Context, tuitID uint, reaction models.ReactionType) (int64, error)
	TuitsReactedBy(ctx context.Context, userID uint, reaction models.ReactionType, limit, offset int) ([]*models.Tuit, error)
	UsersWhoReacted(ctx context.Context, tuitID uint, reaction models.ReactionType, limit, offset int) ([]models.User, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Get returns the reaction row for the user and tuit, or nil when the user
// has no reaction recorded.
func (r *likeRepository) Get(ctx context.Context, userID, tuitID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tuit_id = ?", userID, tuitID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewStorageError(err)
	}
	return &like, nil
}

// Upsert records the reaction, overwriting any existing reaction of the other
// kind. The unique index on (user_id, tuit_id) makes concurrent upserts for
// the same pair collapse into a single row.
func (r *likeRepository) Upsert(ctx context.Context, userID, tuitID uint, reaction models.ReactionType) error {
	like := models.Like{UserID: userID, TuitID: tuitID, Type: reaction}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "tuit_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"type": reaction}),
		}).
		Create(&like).Error
	if err != nil {
		return models.NewStorageError(err)
	}
	cache.InvalidateTuit(ctx, tuitID)
	return nil
}

// Delete removes the user's reaction on the tuit, whichever kind it is.
func (r *likeRepository) Delete(ctx context.Context, userID, tuitID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tuit_id = ?", userID, tuitID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewStorageError(err)
	}
	cache.InvalidateTuit(ctx, tuitID)
	return nil
}

func (r *likeRepository) CountByTuit(ctx context.Context, tuitID uint, reaction models.ReactionType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("tuit_id = ? AND type = ?", tuitID, reaction).
		Count(&count).Error
	if err != nil {
		return 0, models.NewStorageError(err)
	}
	return count, nil
}

func (r *likeRepository) TuitsReactedBy(ctx context.Context, userID uint, reaction models.ReactionType, limit, offset int) ([]*models.Tuit, error) {
	var tuits []*models.Tuit
	err := applyTuitStats(r.db.WithContext(ctx)).
		Preload("PostedBy").
		Joins("JOIN likes ON likes.tuit_id = tuits.id").
		Where("likes.user_id = ? AND likes.type = ?", userID, reaction).
		Order("likes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tuits).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return tuits, nil
}

func (r *likeRepository) UsersWhoReacted(ctx context.Context, tuitID uint, reaction models.ReactionType, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN likes ON likes.user_id = users.id").
		Where("likes.tuit_id = ? AND likes.type = ?", tuitID, reaction).
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return users, nil
}

package service

import (
	"context"
	"errors"

	"tuiter/internal/cache"
	"tuiter/internal/models"
	"tuiter/internal/observability"
	"tuiter/internal/repository"

	"gorm.io/gorm"
)

// LikeService implements the reaction rules for tuits. A user holds at most
// one reaction per tuit, either a like or a dislike, and toggling the same
// reaction again removes it.
type LikeService struct {
	db       *gorm.DB
	tuitRepo repository.TuitRepository
	likeRepo repository.LikeRepository
	userRepo repository.UserRepository
}

// NewLikeService returns a new LikeService. The db handle is used for the
// toggle transaction; everything else goes through the repositories.
func NewLikeService(
	db *gorm.DB,
	tuitRepo repository.TuitRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
) *LikeService {
	return &LikeService{
		db:       db,
		tuitRepo: tuitRepo,
		likeRepo: likeRepo,
		userRepo: userRepo,
	}
}

// Toggle applies the requested reaction and returns the tuit with fresh
// counts. The resulting state depends on what the user already has recorded:
// no reaction creates one, the same reaction removes it, and the opposite
// reaction is replaced in place. The read-modify-write runs in a single
// transaction so concurrent toggles for the same pair serialize on the
// reaction row.
func (s *LikeService) Toggle(ctx context.Context, userID, tuitID uint, want models.ReactionType) (*models.Tuit, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	result := "NONE"
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tuit models.Tuit
		if err := tx.First(&tuit, tuitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Tuit", tuitID)
			}
			return models.NewInternalError(err)
		}

		var like models.Like
		err := tx.Where("user_id = ? AND tuit_id = ?", userID, tuitID).First(&like).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			result = string(want)
			return tx.Create(&models.Like{UserID: userID, TuitID: tuitID, Type: want}).Error
		case err != nil:
			return models.NewInternalError(err)
		case like.Type == want:
			result = "NONE"
			return tx.Delete(&like).Error
		default:
			result = string(want)
			return tx.Model(&like).Update("type", want).Error
		}
	})
	if txErr != nil {
		var appErr *models.AppError
		if errors.As(txErr, &appErr) {
			return nil, txErr
		}
		return nil, models.NewInternalError(txErr)
	}

	observability.ReactionToggles.WithLabelValues(result).Inc()
	cache.InvalidateTuit(ctx, tuitID)
	return s.tuitRepo.GetByID(ctx, tuitID)
}

// React records the reaction unconditionally, replacing any existing reaction
// of the other kind. Reacting twice with the same kind is a no-op.
func (s *LikeService) React(ctx context.Context, userID, tuitID uint, want models.ReactionType) (*models.Tuit, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.tuitRepo.GetByID(ctx, tuitID); err != nil {
		return nil, err
	}
	if err := s.likeRepo.Upsert(ctx, userID, tuitID, want); err != nil {
		return nil, err
	}
	return s.tuitRepo.GetByID(ctx, tuitID)
}

// Unreact removes whatever reaction the user has on the tuit, if any.
func (s *LikeService) Unreact(ctx context.Context, userID, tuitID uint) (*models.Tuit, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.tuitRepo.GetByID(ctx, tuitID); err != nil {
		return nil, err
	}
	if err := s.likeRepo.Delete(ctx, userID, tuitID); err != nil {
		return nil, err
	}
	return s.tuitRepo.GetByID(ctx, tuitID)
}

// Reaction returns the user's current reaction on the tuit, or nil when the
// user has none.
func (s *LikeService) Reaction(ctx context.Context, userID, tuitID uint) (*models.Like, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.tuitRepo.GetByID(ctx, tuitID); err != nil {
		return nil, err
	}
	return s.likeRepo.Get(ctx, userID, tuitID)
}

// TuitsReactedBy lists the tuits the user has reacted to with the given kind.
func (s *LikeService) TuitsReactedBy(ctx context.Context, userID uint, want models.ReactionType, limit, offset int) ([]*models.Tuit, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.likeRepo.TuitsReactedBy(ctx, userID, want, limit, offset)
}

// UsersWhoReacted lists the users holding the given reaction on the tuit.
func (s *LikeService) UsersWhoReacted(ctx context.Context, tuitID uint, want models.ReactionType, limit, offset int) ([]models.User, error) {
	if _, err := s.tuitRepo.GetByID(ctx, tuitID); err != nil {
		return nil, err
	}
	return s.likeRepo.UsersWhoReacted(ctx, tuitID, want, limit, offset)
}

package repository

import (
	"context"
	"errors"

	"pinboard/internal/cache"
	"pinboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PinRepository defines persistence operations for pins and pin likes.
type PinRepository interface {
	Create(ctx context.Context, pin *models.Pin) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Pin, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]models.Pin, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]models.Pin, error)
	Update(ctx context.Context, pin *models.Pin) error
	Delete(ctx context.Context, id uint) error

	Like(ctx context.Context, userID, pinID uint) error
	Unlike(ctx context.Context, userID, pinID uint) error
	IsLiked(ctx context.Context, userID, pinID uint) (bool, error)
	CountLikes(ctx context.Context, pinID uint) (int64, error)
}

type pinRepository struct {
	db *gorm.DB
}

// NewPinRepository returns a new PinRepository implementation.
func NewPinRepository(db *gorm.DB) PinRepository {
	return &pinRepository{db: db}
}

// applyPinDetails augments a pin query with like/comment counts and,
// when a viewer is known, whether that viewer has liked each pin.
func applyPinDetails(query *gorm.DB, currentUserID uint) *gorm.DB {
	likedSelect := "false AS liked"
	args := []interface{}{}
	if currentUserID != 0 {
		likedSelect = "EXISTS(SELECT 1 FROM likes WHERE likes.pin_id = pins.id AND likes.user_id = ?) AS liked"
		args = append(args, currentUserID)
	}
	return query.Select(
		"pins.*, "+
			"(SELECT COUNT(*) FROM likes WHERE likes.pin_id = pins.id) AS likes_count, "+
			"(SELECT COUNT(*) FROM comments WHERE comments.pin_id = pins.id AND comments.deleted_at IS NULL) AS comments_count, "+
			likedSelect,
		args...,
	)
}

func (r *pinRepository) Create(ctx context.Context, pin *models.Pin) error {
	if err := r.db.WithContext(ctx).Create(pin).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePinsList(ctx)
	return nil
}

func (r *pinRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Pin, error) {
	var pin models.Pin
	query := applyPinDetails(r.db.WithContext(ctx).Model(&models.Pin{}), currentUserID).
		Preload("User").
		Where("pins.id = ?", id)
	if err := query.First(&pin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Pin", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &pin, nil
}

func (r *pinRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]models.Pin, error) {
	var pins []models.Pin
	query := applyPinDetails(r.db.WithContext(ctx).Model(&models.Pin{}), currentUserID).
		Preload("User").
		Order("pins.created_at DESC").
		Limit(limit).
		Offset(offset)
	if err := query.Find(&pins).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return pins, nil
}

func (r *pinRepository) ListByUser(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]models.Pin, error) {
	var pins []models.Pin
	query := applyPinDetails(r.db.WithContext(ctx).Model(&models.Pin{}), currentUserID).
		Preload("User").
		Where("pins.user_id = ?", userID).
		Order("pins.created_at DESC").
		Limit(limit).
		Offset(offset)
	if err := query.Find(&pins).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return pins, nil
}

func (r *pinRepository) Update(ctx context.Context, pin *models.Pin) error {
	if err := r.db.WithContext(ctx).Save(pin).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePin(ctx, pin.ID)
	cache.InvalidatePinsList(ctx)
	return nil
}

// Delete removes a pin along with its board memberships, likes and comments.
func (r *pinRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pin_id = ?", id).Delete(&models.BoardPin{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pin_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pin_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Pin{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePin(ctx, id)
	cache.InvalidatePinsList(ctx)
	return nil
}

func (r *pinRepository) Like(ctx context.Context, userID, pinID uint) error {
	like := models.Like{UserID: userID, PinID: pinID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePin(ctx, pinID)
	return nil
}

func (r *pinRepository) Unlike(ctx context.Context, userID, pinID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND pin_id = ?", userID, pinID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePin(ctx, pinID)
	return nil
}

func (r *pinRepository) IsLiked(ctx context.Context, userID, pinID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND pin_id = ?", userID, pinID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *pinRepository) CountLikes(ctx context.Context, pinID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("pin_id = ?", pinID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

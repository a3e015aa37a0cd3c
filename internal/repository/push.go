package repository

import (
	"context"

	"joinme/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PushRepository defines the interface for web push subscription storage
type PushRepository interface {
	Upsert(ctx context.Context, sub *models.PushSubscription) error
	ListByUser(ctx context.Context, userID uint) ([]*models.PushSubscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}

type pushRepository struct {
	db *gorm.DB
}

// NewPushRepository creates a new push subscription repository
func NewPushRepository(db *gorm.DB) PushRepository {
	return &pushRepository{db: db}
}

// Upsert stores a subscription keyed by its endpoint. Re-subscribing with
// the same endpoint refreshes the keys and owner instead of erroring.
func (r *pushRepository) Upsert(ctx context.Context, sub *models.PushSubscription) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh", "auth", "updated_at"}),
		}).
		Create(sub).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *pushRepository) ListByUser(ctx context.Context, userID uint) ([]*models.PushSubscription, error) {
	var subs []*models.PushSubscription
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&subs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return subs, nil
}

func (r *pushRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	if err := r.db.WithContext(ctx).
		Where("endpoint = ?", endpoint).
		Delete(&models.PushSubscription{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

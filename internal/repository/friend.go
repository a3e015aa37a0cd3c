package repository

import (
	"context"
	"errors"

	"joinme/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines the interface for friendship data operations
type FriendRepository interface {
	Create(ctx context.Context, friendship *models.Friendship) error
	GetByID(ctx context.Context, id uint) (*models.Friendship, error)
	GetBetweenUsers(ctx context.Context, userA, userB uint) (*models.Friendship, error)
	GetFriends(ctx context.Context, userID uint) ([]*models.Friendship, error)
	GetPendingIncoming(ctx context.Context, userID uint) ([]*models.Friendship, error)
	AcceptMatching(ctx context.Context, id, targetID uint) (*models.Friendship, error)
	DeleteMatching(ctx context.Context, id, targetID uint) error
	ListInvolving(ctx context.Context, userID uint) ([]*models.Friendship, error)
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friendship repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	if err := r.db.WithContext(ctx).Create(friendship).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("friendship already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Friend").
		First(&friendship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friendship", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

// GetBetweenUsers finds a friendship row regardless of which side initiated
// it. Returns (nil, nil) when the pair has no row.
func (r *friendRepository) GetBetweenUsers(ctx context.Context, userA, userB uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", userA, userB, userB, userA).
		First(&friendship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

// GetFriends returns ACCEPTED friendships where the user sits on either side,
// with both ends preloaded so callers can pick the counterpart.
func (r *friendRepository) GetFriends(ctx context.Context, userID uint) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	if err := r.db.WithContext(ctx).
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, models.FriendshipStatusAccepted).
		Preload("User").
		Preload("Friend").
		Find(&friendships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return friendships, nil
}

// GetPendingIncoming returns PENDING requests where the user is the target.
func (r *friendRepository) GetPendingIncoming(ctx context.Context, userID uint) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	if err := r.db.WithContext(ctx).
		Where("friend_id = ? AND status = ?", userID, models.FriendshipStatusPending).
		Preload("User").
		Order("created_at DESC").
		Find(&friendships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return friendships, nil
}

// AcceptMatching flips a PENDING row to ACCEPTED, but only when the row id
// exists, the caller is the target, and the row is still pending. A zero
// rows-affected update maps to not found so callers can't accept on behalf
// of someone else.
func (r *friendRepository) AcceptMatching(ctx context.Context, id, targetID uint) (*models.Friendship, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("id = ? AND friend_id = ? AND status = ?", id, targetID, models.FriendshipStatusPending).
		Update("status", models.FriendshipStatusAccepted)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Friendship", id)
	}
	return r.GetByID(ctx, id)
}

// DeleteMatching rejects a pending request. Like AcceptMatching, the row
// must exist, still be PENDING, and the caller must be its target.
func (r *friendRepository) DeleteMatching(ctx context.Context, id, targetID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND friend_id = ? AND status = ?", id, targetID, models.FriendshipStatusPending).
		Delete(&models.Friendship{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Friendship", id)
	}
	return nil
}

// ListInvolving returns every friendship row the user sits on, any status,
// for annotating user listings with relationship state.
func (r *friendRepository) ListInvolving(ctx context.Context, userID uint) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	if err := r.db.WithContext(ctx).
		Where("user_id = ? OR friend_id = ?", userID, userID).
		Find(&friendships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return friendships, nil
}

package repository

import (
	"context"
	"time"

	"joinme/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for direct message data operations
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	ListBetween(ctx context.Context, userA, userB uint, since *time.Time, limit, offset int) ([]*models.Message, error)
	ListRecentInvolving(ctx context.Context, userID uint, limit int) ([]*models.Message, error)
	MarkRead(ctx context.Context, receiverID, senderID uint) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *models.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListBetween returns messages exchanged between two users, newest first.
// since filters to messages created strictly after the given instant.
func (r *messageRepository) ListBetween(ctx context.Context, userA, userB uint, since *time.Time, limit, offset int) ([]*models.Message, error) {
	q := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userA, userB, userB, userA)
	if since != nil {
		q = q.Where("created_at > ?", *since)
	}

	var msgs []*models.Message
	if err := q.
		Preload("Sender").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&msgs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return msgs, nil
}

// ListRecentInvolving returns the user's most recent messages across all
// counterparts, newest first, for conversation aggregation.
func (r *messageRepository) ListRecentInvolving(ctx context.Context, userID uint, limit int) ([]*models.Message, error) {
	var msgs []*models.Message
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Preload("Sender").
		Preload("Receiver").
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return msgs, nil
}

// MarkRead flags all unread messages from senderID to receiverID as read.
func (r *messageRepository) MarkRead(ctx context.Context, receiverID, senderID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND read = ?", receiverID, senderID, false).
		Update("read", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"joinme/internal/models"

	"gorm.io/gorm"
)

// JoinRequestRepository defines the interface for join request data operations
type JoinRequestRepository interface {
	Create(ctx context.Context, req *models.JoinRequest) error
	GetByID(ctx context.Context, id uint) (*models.JoinRequest, error)
	GetByPostAndSender(ctx context.Context, postID, senderID uint) (*models.JoinRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	ListForAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.JoinRequest, error)
}

type joinRequestRepository struct {
	db *gorm.DB
}

// NewJoinRequestRepository creates a new join request repository
func NewJoinRequestRepository(db *gorm.DB) JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) Create(ctx context.Context, req *models.JoinRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("join request already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *joinRequestRepository) GetByID(ctx context.Context, id uint) (*models.JoinRequest, error) {
	var req models.JoinRequest
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Post").
		First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("JoinRequest", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

// GetByPostAndSender returns (nil, nil) when the sender has no request yet.
func (r *joinRequestRepository) GetByPostAndSender(ctx context.Context, postID, senderID uint) (*models.JoinRequest, error) {
	var req models.JoinRequest
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND sender_id = ?", postID, senderID).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

func (r *joinRequestRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).
		Model(&models.JoinRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("JoinRequest", id)
	}
	return nil
}

// ListForAuthor pages through requests against the author's posts, newest
// first, with sender and post preloaded for the inbox view.
func (r *joinRequestRepository) ListForAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.JoinRequest, error) {
	var reqs []*models.JoinRequest
	if err := r.db.WithContext(ctx).
		Joins("JOIN posts ON posts.id = join_requests.post_id").
		Where("posts.author_id = ?", authorID).
		Preload("Sender").
		Preload("Post").
		Order("join_requests.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reqs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reqs, nil
}

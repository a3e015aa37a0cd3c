package repository

import (
	"context"
	"errors"
	"time"

	"joinme/internal/geo"
	"joinme/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListActiveInBox(ctx context.Context, box geo.Box, since *time.Time) ([]*models.Post, error)
	ListActiveByAuthors(ctx context.Context, authorIDs []uint, limit int) ([]*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// ListActiveInBox is the bounding-box pre-filter: it returns active posts
// whose coordinates fall in the rectangle, newest first, with author and
// join-request state preloaded. Callers must post-filter by exact distance.
func (r *postRepository) ListActiveInBox(ctx context.Context, box geo.Box, since *time.Time) ([]*models.Post, error) {
	q := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng)
	if since != nil {
		q = q.Where("created_at > ?", *since)
	}

	var posts []*models.Post
	if err := q.
		Preload("Author").
		Preload("JoinRequests").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListActiveByAuthors(ctx context.Context, authorIDs []uint, limit int) ([]*models.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Where("author_id IN ? AND active = ?", authorIDs, true).
		Preload("Author").
		Preload("JoinRequests").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

package service

import (
	"context"
	"strings"

	"joinme/internal/models"
	"joinme/internal/repository"
	"joinme/internal/validation"
)

// titlePrefixRunes is how much of the content stands in for a missing title.
const titlePrefixRunes = 50

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// PostService provides post creation and lifecycle logic.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePostInput carries a new activity post.
type CreatePostInput struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Price     string  `json:"price"`
	Category  string  `json:"category"`
	ImageURL  string  `json:"imageUrl"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreatePost validates and stores a new active post pinned at the given
// coordinates.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if err := validation.ValidateCoordinates(in.Latitude, in.Longitude); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.ImageURL != "" && !validation.IsDataImageURL(in.ImageURL) {
		return nil, models.NewValidationError("Image must be a data URL")
	}
	if strings.TrimSpace(in.Price) == "" {
		in.Price = "Free"
	}
	if strings.TrimSpace(in.Category) == "" {
		in.Category = "General"
	}

	content := strings.TrimSpace(in.Content)
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = truncateRunes(content, titlePrefixRunes)
		if len([]rune(content)) > titlePrefixRunes {
			title += "..."
		}
	}

	post := &models.Post{
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		Price:     in.Price,
		Category:  in.Category,
		ImageURL:  in.ImageURL,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Active:    true,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

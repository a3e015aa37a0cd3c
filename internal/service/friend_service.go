package service

import (
	"context"
	"strings"

	"joinme/internal/models"
	"joinme/internal/repository"
)

// friendPostsLimit caps how many friend posts the overview carries.
const friendPostsLimit = 50

// FriendService provides friendship business logic.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository, postRepo repository.PostRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		postRepo:   postRepo,
	}
}

// AddByEmail creates an immediately ACCEPTED friendship with the user who
// owns the given email. Adding by email carries consent implicitly: you
// already know the person.
func (s *FriendService) AddByEmail(ctx context.Context, userID uint, email string) (*models.Friendship, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, models.NewValidationError("Friend email is required")
	}

	target, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, models.NewNotFoundError("User", email)
	}

	return s.create(ctx, userID, target.ID, models.FriendshipStatusAccepted)
}

// RequestByID creates a PENDING friend request toward the user with the
// given id.
func (s *FriendService) RequestByID(ctx context.Context, userID, targetID uint) (*models.Friendship, error) {
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}
	return s.create(ctx, userID, targetID, models.FriendshipStatusPending)
}

func (s *FriendService) create(ctx context.Context, userID, targetID uint, status models.FriendshipStatus) (*models.Friendship, error) {
	if userID == targetID {
		return nil, models.NewValidationError("Cannot add yourself as a friend")
	}

	existing, err := s.friendRepo.GetBetweenUsers(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Friendship already exists")
	}

	friendship := &models.Friendship{
		UserID:   userID,
		FriendID: targetID,
		Status:   status,
	}
	if err := s.friendRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}
	return s.friendRepo.GetByID(ctx, friendship.ID)
}

// Accept confirms a pending request. Only the target of the request may
// accept it; the repository enforces the id/target/PENDING match atomically.
func (s *FriendService) Accept(ctx context.Context, userID, friendshipID uint) (*models.Friendship, error) {
	return s.friendRepo.AcceptMatching(ctx, friendshipID, userID)
}

// Remove rejects a pending request addressed to the user. Rows that are
// already accepted, or addressed to someone else, read as not found.
func (s *FriendService) Remove(ctx context.Context, userID, friendshipID uint) error {
	return s.friendRepo.DeleteMatching(ctx, friendshipID, userID)
}

// Overview is the friends-screen payload: accepted friends, their recent
// active posts and the user's pending incoming requests in one response.
type Overview struct {
	Friends         []models.UserSummary `json:"friends"`
	Posts           []*models.Post       `json:"posts"`
	PendingRequests []*models.Friendship `json:"pendingRequests"`
}

// GetOverview assembles the friends screen for the user.
func (s *FriendService) GetOverview(ctx context.Context, userID uint) (*Overview, error) {
	friendships, err := s.friendRepo.GetFriends(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends := make([]models.UserSummary, 0, len(friendships))
	friendIDs := make([]uint, 0, len(friendships))
	for _, f := range friendships {
		counterpart := f.Friend
		if f.FriendID == userID {
			counterpart = f.User
		}
		friends = append(friends, counterpart.Summary())
		friendIDs = append(friendIDs, counterpart.ID)
	}

	posts, err := s.postRepo.ListActiveByAuthors(ctx, friendIDs, friendPostsLimit)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	pending, err := s.friendRepo.GetPendingIncoming(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		pending = []*models.Friendship{}
	}

	return &Overview{
		Friends:         friends,
		Posts:           posts,
		PendingRequests: pending,
	}, nil
}

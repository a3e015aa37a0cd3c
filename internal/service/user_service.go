package service

import (
	"context"
	"strings"

	"joinme/internal/models"
	"joinme/internal/repository"
	"joinme/internal/validation"
)

const searchTake = 10

// UserService provides profile and user-directory business logic.
type UserService struct {
	userRepo   repository.UserRepository
	friendRepo repository.FriendRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, friendRepo repository.FriendRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		friendRepo: friendRepo,
	}
}

// AnnotatedUser is a directory entry carrying the caller's relationship to
// the listed user. FriendshipStatus is "", "PENDING" or "ACCEPTED".
type AnnotatedUser struct {
	models.UserSummary
	Profession       string                  `json:"profession,omitempty"`
	Location         string                  `json:"location,omitempty"`
	DistanceKm       *float64                `json:"distanceKm,omitempty"`
	FriendshipStatus models.FriendshipStatus `json:"friendshipStatus,omitempty"`
	IsFriend         bool                    `json:"isFriend"`
}

// GetProfile returns the full profile of the user.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// GetPublicProfile returns another user's profile.
func (s *UserService) GetPublicProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ProfileUpdate carries a partial profile update. Nil fields are untouched.
type ProfileUpdate struct {
	Name         *string  `json:"name"`
	Image        *string  `json:"image"`
	Bio          *string  `json:"bio"`
	Profession   *string  `json:"profession"`
	Location     *string  `json:"location"`
	Interests    *string  `json:"interests"`
	AccountLinks *string  `json:"accountLinks"`
	RadiusKm     *float64 `json:"radiusKm"`
	CurrentLat   *float64 `json:"currentLat"`
	CurrentLng   *float64 `json:"currentLng"`
}

// UpdateProfile applies a partial update to the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, models.NewValidationError("Name cannot be empty")
		}
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Image != nil {
		user.Image = *update.Image
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Profession != nil {
		user.Profession = *update.Profession
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.Interests != nil {
		user.Interests = *update.Interests
	}
	if update.AccountLinks != nil {
		user.AccountLinks = *update.AccountLinks
	}
	if update.RadiusKm != nil {
		if err := validation.ValidateRadiusKm(*update.RadiusKm); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.RadiusKm = *update.RadiusKm
	}
	if update.CurrentLat != nil || update.CurrentLng != nil {
		if update.CurrentLat == nil || update.CurrentLng == nil {
			return nil, models.NewValidationError("Latitude and longitude must be updated together")
		}
		if err := validation.ValidateCoordinates(*update.CurrentLat, *update.CurrentLng); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.CurrentLat = update.CurrentLat
		user.CurrentLng = update.CurrentLng
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListOthers returns every other user annotated with the caller's
// relationship to them.
func (s *UserService) ListOthers(ctx context.Context, userID uint) ([]AnnotatedUser, error) {
	users, err := s.userRepo.ListOthers(ctx, userID)
	if err != nil {
		return nil, err
	}

	statusByUser, err := s.friendshipIndex(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]AnnotatedUser, 0, len(users))
	for i := range users {
		out = append(out, s.annotate(&users[i], statusByUser))
	}
	return out, nil
}

// Search finds users by name or email substring. Queries shorter than the
// minimum return an empty list rather than an error.
func (s *UserService) Search(ctx context.Context, userID uint, query string) ([]AnnotatedUser, error) {
	query = strings.TrimSpace(query)
	if len(query) < validation.MinSearchQueryLength {
		return []AnnotatedUser{}, nil
	}

	users, err := s.userRepo.Search(ctx, userID, query, searchTake)
	if err != nil {
		return nil, err
	}

	statusByUser, err := s.friendshipIndex(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]AnnotatedUser, 0, len(users))
	for i := range users {
		out = append(out, s.annotate(&users[i], statusByUser))
	}
	return out, nil
}

// friendshipIndex maps counterpart user id to friendship status for the
// caller, one query for the whole directory.
func (s *UserService) friendshipIndex(ctx context.Context, userID uint) (map[uint]models.FriendshipStatus, error) {
	friendships, err := s.friendRepo.ListInvolving(ctx, userID)
	if err != nil {
		return nil, err
	}
	index := make(map[uint]models.FriendshipStatus, len(friendships))
	for _, f := range friendships {
		counterpartID := f.FriendID
		if f.FriendID == userID {
			counterpartID = f.UserID
		}
		index[counterpartID] = f.Status
	}
	return index, nil
}

func (s *UserService) annotate(u *models.User, statusByUser map[uint]models.FriendshipStatus) AnnotatedUser {
	status := statusByUser[u.ID]
	return AnnotatedUser{
		UserSummary:      u.Summary(),
		Profession:       u.Profession,
		Location:         u.Location,
		FriendshipStatus: status,
		IsFriend:         status == models.FriendshipStatusAccepted,
	}
}

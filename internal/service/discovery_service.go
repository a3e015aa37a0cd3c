package service

import (
	"context"
	"sort"
	"time"

	"joinme/internal/geo"
	"joinme/internal/middleware"
	"joinme/internal/models"
	"joinme/internal/repository"
	"joinme/internal/validation"
)

// defaultPollWindow is how far back a notification poll looks when the
// client does not say when it last checked.
const defaultPollWindow = time.Hour

// DiscoveryService provides proximity queries: the nearby post feed, nearby
// user discovery and the notification poll.
type DiscoveryService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	friendRepo repository.FriendRepository
}

// NewDiscoveryService returns a new DiscoveryService.
func NewDiscoveryService(postRepo repository.PostRepository, userRepo repository.UserRepository, friendRepo repository.FriendRepository) *DiscoveryService {
	return &DiscoveryService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		friendRepo: friendRepo,
	}
}

// NearbyPosts returns active posts within the fixed feed radius of the
// given point, newest first. A coarse bounding box narrows the database
// scan; exact haversine distance decides inclusion.
func (s *DiscoveryService) NearbyPosts(ctx context.Context, lat, lng float64) ([]*models.Post, error) {
	if err := validation.ValidateCoordinates(lat, lng); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	center := geo.Point{Lat: lat, Lng: lng}

	candidates, err := s.postRepo.ListActiveInBox(ctx, geo.BoundingBox(center), nil)
	if err != nil {
		return nil, err
	}
	middleware.NearbyQueryCandidates.Observe(float64(len(candidates)))

	posts := make([]*models.Post, 0, len(candidates))
	for _, p := range candidates {
		loc := geo.Point{Lat: p.Latitude, Lng: p.Longitude}
		if !geo.WithinKm(center, loc, geo.PostRadiusKm) {
			continue
		}
		p.DistanceKm = geo.DistanceKm(center, loc)
		posts = append(posts, p)
	}
	return posts, nil
}

// NearbyUsers returns users who have shared a location within radiusKm of
// the given point, closest first, annotated with the caller's friendship
// state. A zero radius falls back to the default.
func (s *DiscoveryService) NearbyUsers(ctx context.Context, userID uint, lat, lng, radiusKm float64) ([]AnnotatedUser, error) {
	if err := validation.ValidateCoordinates(lat, lng); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if radiusKm == 0 {
		radiusKm = validation.DefaultRadiusKm
	}
	if err := validation.ValidateRadiusKm(radiusKm); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	center := geo.Point{Lat: lat, Lng: lng}

	located, err := s.userRepo.ListLocated(ctx, userID)
	if err != nil {
		return nil, err
	}

	statusByUser, err := s.friendshipIndex(ctx, userID)
	if err != nil {
		return nil, err
	}

	nearby := make([]AnnotatedUser, 0)
	for _, u := range located {
		loc := geo.Point{Lat: *u.CurrentLat, Lng: *u.CurrentLng}
		if !geo.WithinKm(center, loc, radiusKm) {
			continue
		}
		d := geo.DistanceKm(center, loc)
		status := statusByUser[u.ID]
		nearby = append(nearby, AnnotatedUser{
			UserSummary:      u.Summary(),
			Profession:       u.Profession,
			Location:         u.Location,
			DistanceKm:       &d,
			FriendshipStatus: status,
			IsFriend:         status == models.FriendshipStatusAccepted,
		})
	}
	sort.Slice(nearby, func(i, j int) bool {
		return *nearby[i].DistanceKm < *nearby[j].DistanceKm
	})
	return nearby, nil
}

// Poll returns posts created after lastChecked within the feed radius of
// the given point, excluding the caller's own. Clients call this on a timer
// to surface new-activity notifications.
func (s *DiscoveryService) Poll(ctx context.Context, userID uint, lat, lng float64, lastChecked *time.Time) ([]*models.Post, error) {
	if err := validation.ValidateCoordinates(lat, lng); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	since := time.Now().Add(-defaultPollWindow)
	if lastChecked != nil {
		since = *lastChecked
	}
	center := geo.Point{Lat: lat, Lng: lng}

	candidates, err := s.postRepo.ListActiveInBox(ctx, geo.BoundingBox(center), &since)
	if err != nil {
		return nil, err
	}

	posts := make([]*models.Post, 0, len(candidates))
	for _, p := range candidates {
		if p.AuthorID == userID {
			continue
		}
		loc := geo.Point{Lat: p.Latitude, Lng: p.Longitude}
		if !geo.WithinKm(center, loc, geo.PostRadiusKm) {
			continue
		}
		p.DistanceKm = geo.DistanceKm(center, loc)
		posts = append(posts, p)
	}
	return posts, nil
}

func (s *DiscoveryService) friendshipIndex(ctx context.Context, userID uint) (map[uint]models.FriendshipStatus, error) {
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

package service

import (
	"context"
	"time"

	"joinme/internal/geo"
	"joinme/internal/models"
)

type userRepoStub struct {
	getByIDFn     func(context.Context, uint) (*models.User, error)
	getByEmailFn  func(context.Context, string) (*models.User, error)
	createFn      func(context.Context, *models.User) error
	updateFn      func(context.Context, *models.User) error
	listOthersFn  func(context.Context, uint) ([]models.User, error)
	listLocatedFn func(context.Context, uint) ([]models.User, error)
	searchFn      func(context.Context, uint, string, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) ListOthers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.listOthersFn(ctx, userID)
}
func (s *userRepoStub) ListLocated(ctx context.Context, excludeID uint) ([]models.User, error) {
	return s.listLocatedFn(ctx, excludeID)
}
func (s *userRepoStub) Search(ctx context.Context, excludeID uint, query string, limit int) ([]models.User, error) {
	return s.searchFn(ctx, excludeID, query, limit)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:     func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:  func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:      func(context.Context, *models.User) error { return nil },
		updateFn:      func(context.Context, *models.User) error { return nil },
		listOthersFn:  func(context.Context, uint) ([]models.User, error) { return nil, nil },
		listLocatedFn: func(context.Context, uint) ([]models.User, error) { return nil, nil },
		searchFn:      func(context.Context, uint, string, int) ([]models.User, error) { return nil, nil },
	}
}

type friendRepoStub struct {
	createFn             func(context.Context, *models.Friendship) error
	getByIDFn            func(context.Context, uint) (*models.Friendship, error)
	getBetweenUsersFn    func(context.Context, uint, uint) (*models.Friendship, error)
	getFriendsFn         func(context.Context, uint) ([]*models.Friendship, error)
	getPendingIncomingFn func(context.Context, uint) ([]*models.Friendship, error)
	acceptMatchingFn     func(context.Context, uint, uint) (*models.Friendship, error)
	deleteMatchingFn     func(context.Context, uint, uint) error
	listInvolvingFn      func(context.Context, uint) ([]*models.Friendship, error)
}

func (s *friendRepoStub) Create(ctx context.Context, f *models.Friendship) error {
	return s.createFn(ctx, f)
}
func (s *friendRepoStub) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	return s.getByIDFn(ctx, id)
}
func (s *friendRepoStub) GetBetweenUsers(ctx context.Context, a, b uint) (*models.Friendship, error) {
	return s.getBetweenUsersFn(ctx, a, b)
}
func (s *friendRepoStub) GetFriends(ctx context.Context, userID uint) ([]*models.Friendship, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *friendRepoStub) GetPendingIncoming(ctx context.Context, userID uint) ([]*models.Friendship, error) {
	return s.getPendingIncomingFn(ctx, userID)
}
func (s *friendRepoStub) AcceptMatching(ctx context.Context, id, targetID uint) (*models.Friendship, error) {
	return s.acceptMatchingFn(ctx, id, targetID)
}
func (s *friendRepoStub) DeleteMatching(ctx context.Context, id, targetID uint) error {
	return s.deleteMatchingFn(ctx, id, targetID)
}
func (s *friendRepoStub) ListInvolving(ctx context.Context, userID uint) ([]*models.Friendship, error) {
	return s.listInvolvingFn(ctx, userID)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createFn: func(context.Context, *models.Friendship) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Friendship, error) {
			return &models.Friendship{ID: id}, nil
		},
		getBetweenUsersFn:    func(context.Context, uint, uint) (*models.Friendship, error) { return nil, nil },
		getFriendsFn:         func(context.Context, uint) ([]*models.Friendship, error) { return nil, nil },
		getPendingIncomingFn: func(context.Context, uint) ([]*models.Friendship, error) { return nil, nil },
		acceptMatchingFn: func(_ context.Context, id, _ uint) (*models.Friendship, error) {
			return &models.Friendship{ID: id, Status: models.FriendshipStatusAccepted}, nil
		},
		deleteMatchingFn: func(context.Context, uint, uint) error { return nil },
		listInvolvingFn:  func(context.Context, uint) ([]*models.Friendship, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn              func(context.Context, *models.Post) error
	getByIDFn             func(context.Context, uint) (*models.Post, error)
	listActiveInBoxFn     func(context.Context, geo.Box, *time.Time) ([]*models.Post, error)
	listActiveByAuthorsFn func(context.Context, []uint, int) ([]*models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, p *models.Post) error {
	return s.createFn(ctx, p)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListActiveInBox(ctx context.Context, box geo.Box, since *time.Time) ([]*models.Post, error) {
	return s.listActiveInBoxFn(ctx, box, since)
}
func (s *postRepoStub) ListActiveByAuthors(ctx context.Context, ids []uint, limit int) ([]*models.Post, error) {
	return s.listActiveByAuthorsFn(ctx, ids, limit)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, Active: true}, nil
		},
		listActiveInBoxFn:     func(context.Context, geo.Box, *time.Time) ([]*models.Post, error) { return nil, nil },
		listActiveByAuthorsFn: func(context.Context, []uint, int) ([]*models.Post, error) { return nil, nil },
	}
}

type joinRepoStub struct {
	createFn             func(context.Context, *models.JoinRequest) error
	getByIDFn            func(context.Context, uint) (*models.JoinRequest, error)
	getByPostAndSenderFn func(context.Context, uint, uint) (*models.JoinRequest, error)
	updateStatusFn       func(context.Context, uint, string) error
	listForAuthorFn      func(context.Context, uint, int, int) ([]*models.JoinRequest, error)
}

func (s *joinRepoStub) Create(ctx context.Context, r *models.JoinRequest) error {
	return s.createFn(ctx, r)
}
func (s *joinRepoStub) GetByID(ctx context.Context, id uint) (*models.JoinRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *joinRepoStub) GetByPostAndSender(ctx context.Context, postID, senderID uint) (*models.JoinRequest, error) {
	return s.getByPostAndSenderFn(ctx, postID, senderID)
}
func (s *joinRepoStub) UpdateStatus(ctx context.Context, id uint, status string) error {
	return s.updateStatusFn(ctx, id, status)
}
func (s *joinRepoStub) ListForAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.JoinRequest, error) {
	return s.listForAuthorFn(ctx, authorID, limit, offset)
}

func noopJoinRepo() *joinRepoStub {
	return &joinRepoStub{
		createFn: func(context.Context, *models.JoinRequest) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.JoinRequest, error) {
			return &models.JoinRequest{ID: id, Status: models.JoinRequestStatusPending}, nil
		},
		getByPostAndSenderFn: func(context.Context, uint, uint) (*models.JoinRequest, error) { return nil, nil },
		updateStatusFn:       func(context.Context, uint, string) error { return nil },
		listForAuthorFn:      func(context.Context, uint, int, int) ([]*models.JoinRequest, error) { return nil, nil },
	}
}

type messageRepoStub struct {
	createFn              func(context.Context, *models.Message) error
	listBetweenFn         func(context.Context, uint, uint, *time.Time, int, int) ([]*models.Message, error)
	listRecentInvolvingFn func(context.Context, uint, int) ([]*models.Message, error)
	markReadFn            func(context.Context, uint, uint) error
}

func (s *messageRepoStub) Create(ctx context.Context, m *models.Message) error {
	return s.createFn(ctx, m)
}
func (s *messageRepoStub) ListBetween(ctx context.Context, a, b uint, since *time.Time, limit, offset int) ([]*models.Message, error) {
	return s.listBetweenFn(ctx, a, b, since, limit, offset)
}
func (s *messageRepoStub) ListRecentInvolving(ctx context.Context, userID uint, limit int) ([]*models.Message, error) {
	return s.listRecentInvolvingFn(ctx, userID, limit)
}
func (s *messageRepoStub) MarkRead(ctx context.Context, receiverID, senderID uint) error {
	return s.markReadFn(ctx, receiverID, senderID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn: func(context.Context, *models.Message) error { return nil },
		listBetweenFn: func(context.Context, uint, uint, *time.Time, int, int) ([]*models.Message, error) {
			return nil, nil
		},
		listRecentInvolvingFn: func(context.Context, uint, int) ([]*models.Message, error) { return nil, nil },
		markReadFn:            func(context.Context, uint, uint) error { return nil },
	}
}

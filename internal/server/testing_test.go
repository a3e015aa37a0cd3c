package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"joinme/internal/config"
	"joinme/internal/middleware"
	"joinme/internal/models"
	"joinme/internal/push"
	"joinme/internal/repository"
	"joinme/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// recordingSender captures push deliveries instead of talking to a gateway.
// Endpoints listed in gone return a GoneError, mimicking HTTP 410.
type recordingSender struct {
	mu       sync.Mutex
	sent     []string
	failWith error
	gone     map[string]bool
}

func (r *recordingSender) Send(_ context.Context, sub *models.PushSubscription, _ []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gone[sub.Endpoint] {
		return &push.GoneError{Endpoint: sub.Endpoint}
	}
	if r.failWith != nil {
		return r.failWith
	}
	r.sent = append(r.sent, sub.Endpoint)
	return nil
}

func (r *recordingSender) sentCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Friendship{},
		&models.JoinRequest{},
		&models.Message{},
		&models.PushSubscription{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestServer wires a Server against in-memory SQLite with no Redis and a
// recording push sender. Prometheus HTTP middleware is left out; the handler
// under test is registered directly on a bare Fiber app.
func newTestServer(t *testing.T) (*Server, *gorm.DB, *recordingSender) {
	t.Helper()
	db := setupTestDB(t)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	joinRepo := repository.NewJoinRequestRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	pushRepo := repository.NewPushRepository(db)

	sender := &recordingSender{gone: make(map[string]bool)}

	s := &Server{
		config: &config.Config{
			JWTSecret: "test-secret-test-secret-test-secret",
			Env:       "test",
		},
		db:          db,
		userRepo:    userRepo,
		postRepo:    postRepo,
		friendRepo:  friendRepo,
		joinRepo:    joinRepo,
		messageRepo: messageRepo,
		pushRepo:    pushRepo,
	}
	s.userService = service.NewUserService(userRepo, friendRepo)
	s.postService = service.NewPostService(postRepo)
	s.friendService = service.NewFriendService(friendRepo, userRepo, postRepo)
	s.joinService = service.NewJoinRequestService(joinRepo, postRepo, messageRepo, middleware.Logger)
	s.messageService = service.NewMessageService(messageRepo, userRepo)
	s.discoveryService = service.NewDiscoveryService(postRepo, userRepo, friendRepo)
	s.notificationService = service.NewNotificationService(pushRepo, sender, middleware.Logger)

	return s, db, sender
}

// newRequest builds a request with an optional Authorization header.
func newRequest(method, path, auth string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	return req
}

// asUser returns middleware that injects an authenticated user id.
func asUser(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

func createUser(t *testing.T, db *gorm.DB, email, name string, lat, lng float64) *models.User {
	t.Helper()
	user := &models.User{
		Email:      email,
		Name:       name,
		Password:   "hashed",
		CurrentLat: &lat,
		CurrentLng: &lng,
		RadiusKm:   5,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createPost(t *testing.T, db *gorm.DB, authorID uint, title string, lat, lng float64) *models.Post {
	t.Helper()
	post := &models.Post{
		AuthorID:  authorID,
		Title:     title,
		Content:   title,
		Price:     "Free",
		Category:  "General",
		Latitude:  lat,
		Longitude: lng,
		Active:    true,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	return post
}

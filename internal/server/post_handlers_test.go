package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"joinme/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postTestApp(s *Server, userID uint) *fiber.App {
	app := fiber.New()
	app.Use(asUser(userID))
	app.Get("/posts", s.GetNearbyPosts)
	app.Post("/posts", s.CreatePost)
	return app
}

func TestCreatePostAppliesDefaults(t *testing.T) {
	s, db, _ := newTestServer(t)
	alice := createUser(t, db, "alice@example.com", "Alice", 52.52, 13.405)

	app := postTestApp(s, alice.ID)
	resp := postJSON(t, app, http.MethodPost, "/posts", fiber.Map{
		"content":   "BBQ in the park, everyone welcome",
		"latitude":  52.52,
		"longitude": 13.405,
	})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var post models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
	assert.Equal(t, "Free", post.Price)
	assert.Equal(t, "General", post.Category)
	assert.True(t, post.Active)
	assert.Equal(t, alice.ID, post.AuthorID)
	// Short content stands in for the missing title as-is.
	assert.Equal(t, "BBQ in the park, everyone welcome", post.Title)
}

func TestCreatePostTitleFromLongContent(t *testing.T) {
	s, db, _ := newTestServer(t)
	alice := createUser(t, db, "alice@example.com", "Alice", 52.52, 13.405)
	app := postTestApp(s, alice.ID)

	content := strings.Repeat("ü", 90)
	resp := postJSON(t, app, http.MethodPost, "/posts", fiber.Map{
		"content":   content,
		"latitude":  52.52,
		"longitude": 13.405,
	})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var post models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
	assert.Equal(t, strings.Repeat("ü", 50)+"...", post.Title)

	// An explicit title is kept untouched.
	resp = postJSON(t, app, http.MethodPost, "/posts", fiber.Map{
		"title":     "Morning run",
		"content":   content,
		"latitude":  52.52,
		"longitude": 13.405,
	})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
	assert.Equal(t, "Morning run", post.Title)
}

func TestCreatePostRequiresContentAndValidCoords(t *testing.T) {
	s, db, _ := newTestServer(t)
	alice := createUser(t, db, "alice@example.com", "Alice", 52.52, 13.405)
	app := postTestApp(s, alice.ID)

	resp := postJSON(t, app, http.MethodPost, "/posts", fiber.Map{
		"latitude": 52.52, "longitude": 13.405,
	})
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, http.MethodPost, "/posts", fiber.Map{
		"content": "x", "latitude": 99.0, "longitude": 13.405,
	})
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Feed inclusion is decided by exact distance, not the bounding box: a post
// roughly 600 m away is in, one 6 km away is out, and inactive posts never
// show up.
func TestNearbyPostsFiltersByDistance(t *testing.T) {
	s, db, _ := newTestServer(t)
	alice := createUser(t, db, "alice@example.com", "Alice", 52.52, 13.405)
	bob := createUser(t, db, "bob@example.com", "Bob", 52.52, 13.405)

	// ~0.55 km north of the viewer.
	near := createPost(t, db, bob.ID, "BBQ nearby", 52.525, 13.405)
	// ~5.5 km north; outside both the box and the radius.
	createPost(t, db, bob.ID, "BBQ far away", 52.57, 13.405)
	// Inside the radius but retired.
	inactive := createPost(t, db, bob.ID, "Old BBQ", 52.521, 13.405)
	require.NoError(t, db.Model(inactive).Update("active", false).Error)

	app := postTestApp(s, alice.ID)
	req := httptest.NewRequest(http.MethodGet, "/posts?lat=52.52&lng=13.405", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Posts []models.Post `json:"posts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Posts, 1)
	assert.Equal(t, near.ID, body.Posts[0].ID)
	assert.InDelta(t, 0.55, body.Posts[0].DistanceKm, 0.05)
}

func TestNearbyPostsRequiresCoords(t *testing.T) {
	s, db, _ := newTestServer(t)
	alice := createUser(t, db, "alice@example.com", "Alice", 52.52, 13.405)

	app := postTestApp(s, alice.ID)
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

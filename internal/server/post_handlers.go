package server

import (
	"joinme/internal/models"
	"joinme/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetNearbyPosts handles GET /api/posts. Requires lat/lng query parameters
// and returns active posts within the feed radius, newest first.
func (s *Server) GetNearbyPosts(c *fiber.Ctx) error {
	lat, lng, err := parseCoords(c)
	if err != nil {
		return nil
	}

	posts, err := s.discoveryService.NearbyPosts(c.Context(), lat, lng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var in service.CreatePostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), currentUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

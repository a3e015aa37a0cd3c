package server

import (
	"joinme/internal/models"
	"joinme/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me. Only fields present in the
// body change; lat/lng must move together.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var update service.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), currentUserID(c), update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetAllUsers handles GET /api/users. Every other user, annotated with the
// caller's relationship to them.
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListOthers(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetNearbyUsers handles GET /api/users/nearby
func (s *Server) GetNearbyUsers(c *fiber.Ctx) error {
	lat, lng, err := parseCoords(c)
	if err != nil {
		return nil
	}
	radius := c.QueryFloat("radius", 0)

	users, err := s.discoveryService.NearbyUsers(c.Context(), currentUserID(c), lat, lng, radius)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// SearchUsers handles GET /api/users/search. Short queries return an empty
// list rather than an error.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	users, err := s.userService.Search(c.Context(), currentUserID(c), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetPublicProfile(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

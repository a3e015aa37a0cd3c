package server

import (
	"joinme/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFriendOverview handles GET /api/friends. The response carries the
// user's friends, their recent active posts and pending incoming requests
// in one payload.
func (s *Server) GetFriendOverview(c *fiber.Ctx) error {
	overview, err := s.friendService.GetOverview(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(overview)
}

// AddFriend handles POST /api/friends. friendEmail creates an immediately
// accepted friendship; friendId creates a pending request.
func (s *Server) AddFriend(c *fiber.Ctx) error {
	var req struct {
		FriendEmail string `json:"friendEmail"`
		FriendID    uint   `json:"friendId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)

	var (
		friendship *models.Friendship
		err        error
	)
	switch {
	case req.FriendEmail != "":
		friendship, err = s.friendService.AddByEmail(c.Context(), userID, req.FriendEmail)
	case req.FriendID != 0:
		friendship, err = s.friendService.RequestByID(c.Context(), userID, req.FriendID)
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("friendEmail or friendId is required"))
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(friendship)
}

// AcceptFriendRequest handles PUT /api/friends/:id
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	friendship, err := s.friendService.Accept(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(friendship)
}

// RejectFriendRequest handles DELETE /api/friends/:id
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.friendService.Remove(c.Context(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Friend request rejected"})
}

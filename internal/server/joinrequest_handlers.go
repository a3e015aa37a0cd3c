package server

import (
	"joinme/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetJoinRequests handles GET /api/join-requests. Lists requests against
// the caller's posts, newest first, with take/skip paging.
func (s *Server) GetJoinRequests(c *fiber.Ctx) error {
	take := c.QueryInt("take", 0)
	skip := c.QueryInt("skip", 0)

	reqs, err := s.joinService.ListForAuthor(c.Context(), currentUserID(c), take, skip)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"requests": reqs})
}

// CreateJoinRequest handles POST /api/join-requests. Creation is idempotent:
// an existing request for the same post is returned unchanged.
func (s *Server) CreateJoinRequest(c *fiber.Ctx) error {
	var req struct {
		PostID uint `json:"postId"`
	}
	if err := c.BodyParser(&req); err != nil || req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("postId is required"))
	}

	jr, err := s.joinService.Create(c.Context(), currentUserID(c), req.PostID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(jr)
}

// RespondJoinRequest handles PUT /api/join-requests
func (s *Server) RespondJoinRequest(c *fiber.Ctx) error {
	var req struct {
		RequestID uint                     `json:"requestId"`
		Status    models.JoinRequestStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil || req.RequestID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("requestId and status are required"))
	}

	jr, err := s.joinService.Respond(c.Context(), currentUserID(c), req.RequestID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(jr)
}

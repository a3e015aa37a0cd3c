package server

import (
	"time"

	"joinme/internal/models"
	"joinme/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetConversations handles GET /api/messages. Conversations are derived at
// read time from the caller's recent messages, one entry per counterpart.
func (s *Server) GetConversations(c *fiber.Ctx) error {
	conversations, err := s.messageService.GetConversations(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"conversations": conversations})
}

// SendMessage handles POST /api/messages
func (s *Server) SendMessage(c *fiber.Ctx) error {
	var in service.SendMessageInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	msg, err := s.messageService.SendMessage(c.Context(), currentUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// GetMessageHistory handles GET /api/messages/:userId. Returns both
// directions newest first; since (RFC 3339) filters to strictly newer
// messages for incremental polling.
func (s *Server) GetMessageHistory(c *fiber.Ctx) error {
	otherID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var since *time.Time
	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("since must be an RFC 3339 timestamp"))
		}
		since = &t
	}

	take := c.QueryInt("take", 0)
	skip := c.QueryInt("skip", 0)

	userID := currentUserID(c)
	msgs, err := s.messageService.GetHistory(c.Context(), userID, otherID, since, take, skip)
	if err != nil {
		return respondError(c, err)
	}

	// Opening a history view implies the unread messages in it were seen.
	if markErr := s.messageService.MarkConversationRead(c.Context(), userID, otherID); markErr != nil {
		return respondError(c, markErr)
	}

	return c.JSON(fiber.Map{"messages": msgs})
}

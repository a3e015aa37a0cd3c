package server

import (
	"time"

	"joinme/internal/models"
	"joinme/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PollNotifications handles GET /api/notifications. Returns active posts
// within the feed radius created since lastChecked (default: one hour ago).
func (s *Server) PollNotifications(c *fiber.Ctx) error {
	lat, lng, err := parseCoords(c)
	if err != nil {
		return nil
	}

	var lastChecked *time.Time
	if raw := c.Query("lastChecked"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("lastChecked must be an RFC 3339 timestamp"))
		}
		lastChecked = &t
	}

	posts, err := s.discoveryService.Poll(c.Context(), currentUserID(c), lat, lng, lastChecked)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// SubscribePush handles POST /api/notifications/subscribe
func (s *Server) SubscribePush(c *fiber.Ctx) error {
	var in service.SubscribeInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.notificationService.Subscribe(c.Context(), currentUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Subscribed"})
}

// SendPushNotification handles POST /api/notifications/send. Fans out to
// every subscription the target user holds; endpoint failures never fail
// the batch.
func (s *Server) SendPushNotification(c *fiber.Ctx) error {
	var req struct {
		UserID uint   `json:"userId"`
		Title  string `json:"title"`
		Body   string `json:"body"`
		URL    string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userId is required"))
	}

	result, err := s.notificationService.Send(c.Context(), req.UserID, service.PushPayload{
		Title: req.Title,
		Body:  req.Body,
		URL:   req.URL,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

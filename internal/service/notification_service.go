package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"joinme/internal/middleware"
	"joinme/internal/models"
	"joinme/internal/push"
	"joinme/internal/repository"
)

// NotificationService manages web push subscriptions and fan-out delivery.
type NotificationService struct {
	pushRepo repository.PushRepository
	sender   push.Sender
	logger   *slog.Logger
}

// NewNotificationService returns a new NotificationService.
func NewNotificationService(pushRepo repository.PushRepository, sender push.Sender, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		pushRepo: pushRepo,
		sender:   sender,
		logger:   logger,
	}
}

// SubscribeInput is a browser push subscription as produced by the
// PushManager API.
type SubscribeInput struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

// Subscribe registers or refreshes a push subscription for the user.
func (s *NotificationService) Subscribe(ctx context.Context, userID uint, in SubscribeInput) error {
	if in.Endpoint == "" || in.Keys.P256dh == "" || in.Keys.Auth == "" {
		return models.NewValidationError("Subscription endpoint and keys are required")
	}
	return s.pushRepo.Upsert(ctx, &models.PushSubscription{
		UserID:   userID,
		Endpoint: in.Endpoint,
		P256dh:   in.Keys.P256dh,
		Auth:     in.Keys.Auth,
	})
}

// PushPayload is the notification body delivered to the browser.
type PushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

// SendResult summarizes one fan-out batch.
type SendResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Pruned int `json:"pruned"`
}

// Send fans the payload out to every subscription the target user holds,
// concurrently. A failed endpoint never fails the batch; an endpoint the
// push service reports gone (HTTP 410) is pruned from storage.
func (s *NotificationService) Send(ctx context.Context, targetUserID uint, payload PushPayload) (*SendResult, error) {
	if payload.Title == "" {
		return nil, models.NewValidationError("Notification title is required")
	}

	subs, err := s.pushRepo.ListByUser(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	var (
		mu     sync.Mutex
		result SendResult
		wg     sync.WaitGroup
	)
	for _, sub := range subs {
		wg.Add(1)
		go func(sub *models.PushSubscription) {
			defer wg.Done()
			err := s.sender.Send(ctx, sub, body)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				result.Sent++
				middleware.PushDeliveries.WithLabelValues("sent").Inc()
			case isGone(err):
				result.Pruned++
				middleware.PushDeliveries.WithLabelValues("pruned").Inc()
				if delErr := s.pushRepo.DeleteByEndpoint(ctx, sub.Endpoint); delErr != nil {
					s.logger.WarnContext(ctx, "failed to prune gone push subscription",
						slog.String("endpoint", sub.Endpoint),
						slog.Any("error", delErr))
				}
			default:
				result.Failed++
				middleware.PushDeliveries.WithLabelValues("failed").Inc()
				s.logger.WarnContext(ctx, "push delivery failed",
					slog.Uint64("user_id", uint64(targetUserID)),
					slog.Any("error", err))
			}
		}(sub)
	}
	wg.Wait()

	return &result, nil
}

func isGone(err error) bool {
	var gone *push.GoneError
	return errors.As(err, &gone)
}

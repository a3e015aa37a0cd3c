// Package push wraps the Web Push protocol behind a small interface so the
// notification service can be tested without talking to browser push gateways.
package push

import (
	"context"
	"fmt"

	webpush "github.com/SherClockHolmes/webpush-go"

	"joinme/internal/models"
)

// GoneError is returned when the push service reports the endpoint
// permanently gone (HTTP 410). Callers should drop the subscription.
type GoneError struct {
	Endpoint string
}

func (e *GoneError) Error() string {
	return "push endpoint gone: " + e.Endpoint
}

// Sender delivers a payload to a single subscription.
type Sender interface {
	Send(ctx context.Context, sub *models.PushSubscription, payload []byte) error
}

// VAPIDConfig carries the server's Voluntary Application Server
// Identification keys.
type VAPIDConfig struct {
	PublicKey  string
	PrivateKey string
	Subject    string
}

type webpushSender struct {
	cfg VAPIDConfig
}

// NewSender creates a Sender backed by the Web Push protocol.
func NewSender(cfg VAPIDConfig) Sender {
	return &webpushSender{cfg: cfg}
}

func (s *webpushSender) Send(ctx context.Context, sub *models.PushSubscription, payload []byte) error {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		VAPIDPublicKey:  s.cfg.PublicKey,
		VAPIDPrivateKey: s.cfg.PrivateKey,
		Subscriber:      s.cfg.Subject,
		TTL:             60,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == 410 {
		return &GoneError{Endpoint: sub.Endpoint}
	}
	if resp.StatusCode >= 400 {
		return &webpushStatusError{status: resp.StatusCode}
	}
	return nil
}

type webpushStatusError struct {
	status int
}

func (e *webpushStatusError) Error() string {
	return fmt.Sprintf("push service returned status %d", e.status)
}

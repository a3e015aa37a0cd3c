package service

import (
	"context"
	"strings"
	"time"

	"joinme/internal/models"
	"joinme/internal/repository"
	"joinme/internal/validation"
)

const (
	// conversationScanLimit bounds the read-time aggregation pass. Only
	// this many recent messages are considered when grouping by counterpart.
	conversationScanLimit = 200
	// conversationCap bounds the number of conversations returned.
	conversationCap = 50

	defaultHistoryTake = 50
	maxHistoryTake     = 100
)

// Preview labels for non-text last messages in conversation lists.
const (
	previewImage    = "📷 Photo"
	previewLocation = "📍 Location"
)

// MessageService provides direct-message business logic.
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// SendMessageInput carries one outgoing message.
type SendMessageInput struct {
	ReceiverID uint               `json:"receiverId"`
	Content    string             `json:"content"`
	Type       models.MessageType `json:"type"`
	ImageURL   string             `json:"imageUrl"`
	Latitude   *float64           `json:"latitude"`
	Longitude  *float64           `json:"longitude"`
}

// SendMessage validates and stores one message from senderID.
func (s *MessageService) SendMessage(ctx context.Context, senderID uint, in SendMessageInput) (*models.Message, error) {
	if in.ReceiverID == 0 {
		return nil, models.NewValidationError("Receiver is required")
	}
	if in.ReceiverID == senderID {
		return nil, models.NewValidationError("Cannot send a message to yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, in.ReceiverID); err != nil {
		return nil, err
	}

	if in.Type == "" {
		in.Type = models.MessageTypeText
	}

	switch in.Type {
	case models.MessageTypeText:
		if strings.TrimSpace(in.Content) == "" {
			return nil, models.NewValidationError("Message content is required")
		}
	case models.MessageTypeImage:
		if !validation.IsDataImageURL(in.ImageURL) {
			return nil, models.NewValidationError("Image messages require an image data URL")
		}
	case models.MessageTypeLocation:
		if in.Latitude == nil || in.Longitude == nil {
			return nil, models.NewValidationError("Location messages require latitude and longitude")
		}
		if err := validation.ValidateCoordinates(*in.Latitude, *in.Longitude); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
	default:
		return nil, models.NewValidationError("Unknown message type")
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: in.ReceiverID,
		Content:    in.Content,
		Type:       in.Type,
		ImageURL:   in.ImageURL,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	// The response carries the sender's name and image for rendering.
	if sender, err := s.userRepo.GetByID(ctx, senderID); err == nil {
		msg.Sender = *sender
	}
	return msg, nil
}

// GetHistory returns messages between the user and a counterpart, newest
// first. take is clamped to maxHistoryTake; since filters to strictly newer
// messages, which lets clients poll incrementally.
func (s *MessageService) GetHistory(ctx context.Context, userID, otherID uint, since *time.Time, take, skip int) ([]*models.Message, error) {
	if take <= 0 {
		take = defaultHistoryTake
	}
	if take > maxHistoryTake {
		take = maxHistoryTake
	}
	if skip < 0 {
		skip = 0
	}

	msgs, err := s.messageRepo.ListBetween(ctx, userID, otherID, since, take, skip)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []*models.Message{}
	}
	return msgs, nil
}

// MarkConversationRead flags all unread messages from otherID to the user
// as read.
func (s *MessageService) MarkConversationRead(ctx context.Context, userID, otherID uint) error {
	return s.messageRepo.MarkRead(ctx, userID, otherID)
}

// GetConversations derives the user's conversation list from the flat
// message table. It scans the most recent messages once, newest first, and
// keeps the first message seen per counterpart, so each conversation
// surfaces with its latest message. Non-text messages get a preview label
// instead of raw content.
func (s *MessageService) GetConversations(ctx context.Context, userID uint) ([]models.Conversation, error) {
	msgs, err := s.messageRepo.ListRecentInvolving(ctx, userID, conversationScanLimit)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	conversations := make([]models.Conversation, 0)
	for _, m := range msgs {
		counterpart := m.Sender
		if m.SenderID == userID {
			counterpart = m.Receiver
		}
		if seen[counterpart.ID] {
			continue
		}
		seen[counterpart.ID] = true

		conversations = append(conversations, models.Conversation{
			User:        counterpart.Summary(),
			LastMessage: previewFor(m),
			Timestamp:   m.CreatedAt,
			Type:        m.Type,
		})
		if len(conversations) >= conversationCap {
			break
		}
	}
	return conversations, nil
}

func previewFor(m *models.Message) string {
	switch m.Type {
	case models.MessageTypeImage:
		return previewImage
	case models.MessageTypeLocation:
		return previewLocation
	default:
		return m.Content
	}
}

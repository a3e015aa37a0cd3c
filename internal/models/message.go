package models

import "time"

// MessageType distinguishes the payload carried by a message.
type MessageType string

const (
	// MessageTypeText is a plain text message.
	MessageTypeText MessageType = "text"
	// MessageTypeImage carries a data-URL image in ImageURL.
	MessageTypeImage MessageType = "image"
	// MessageTypeLocation carries coordinates in Latitude/Longitude.
	MessageTypeLocation MessageType = "location"
)

// Message is one row of the append-only direct-message table. Conversations
// are derived at read time from the counterpart user id; nothing groups
// messages in storage.
type Message struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	SenderID   uint        `gorm:"not null;index:idx_messages_sender" json:"senderId"`
	ReceiverID uint        `gorm:"not null;index:idx_messages_receiver" json:"receiverId"`
	Content    string      `gorm:"type:text;not null" json:"content"`
	Type       MessageType `gorm:"type:varchar(20);default:'text'" json:"type"`
	ImageURL   string      `json:"imageUrl,omitempty"`
	Latitude   *float64    `json:"latitude,omitempty"`
	Longitude  *float64    `json:"longitude,omitempty"`
	Read       bool        `gorm:"default:false" json:"read"`
	CreatedAt  time.Time   `gorm:"index" json:"createdAt"`

	// Relationships
	Sender   User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

// TableName specifies the table name for GORM
func (Message) TableName() string {
	return "messages"
}

// Conversation is a derived, not stored, grouping of messages by counterpart.
// LastMessage holds the preview of the most recent message.
type Conversation struct {
	User        UserSummary `json:"user"`
	LastMessage string      `json:"lastMessage"`
	Timestamp   time.Time   `json:"timestamp"`
	Type        MessageType `json:"type"`
}

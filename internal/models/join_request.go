package models

import "time"

// JoinRequestStatus represents the status of a request to join a post.
type JoinRequestStatus string

const (
	// JoinRequestStatusPending indicates the author has not responded yet.
	JoinRequestStatusPending JoinRequestStatus = "PENDING"
	// JoinRequestStatusAccepted is terminal; the sender was let in.
	JoinRequestStatusAccepted JoinRequestStatus = "ACCEPTED"
	// JoinRequestStatusRejected is terminal.
	JoinRequestStatusRejected JoinRequestStatus = "REJECTED"
)

// JoinRequest is one user's request to participate in another user's posted
// activity. Unique per (PostID, SenderID); creation is idempotent.
type JoinRequest struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	PostID    uint              `gorm:"not null;uniqueIndex:idx_join_request_post_sender" json:"postId"`
	SenderID  uint              `gorm:"not null;uniqueIndex:idx_join_request_post_sender" json:"senderId"`
	Status    JoinRequestStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`

	// Relationships
	Post   Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Sender User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

// TableName specifies the table name for GORM
func (JoinRequest) TableName() string {
	return "join_requests"
}

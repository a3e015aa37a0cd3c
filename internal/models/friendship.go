package models

import "time"

// FriendshipStatus represents the status of a friendship.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates a directed, unconfirmed request.
	FriendshipStatusPending FriendshipStatus = "PENDING"
	// FriendshipStatusAccepted indicates a mutual friendship.
	FriendshipStatusAccepted FriendshipStatus = "ACCEPTED"
)

// Friendship links two users. UserID is the requester and FriendID the
// target; direction only matters while the row is PENDING. At most one row
// exists per unordered pair.
type Friendship struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"userId"`
	FriendID  uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"friendId"`
	Status    FriendshipStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`

	// Relationships
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Friend User `gorm:"foreignKey:FriendID" json:"friend,omitempty"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}

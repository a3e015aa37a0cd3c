package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a short-lived nearby-activity announcement pinned to a coordinate.
// Posts are never hard-deleted; the Active flag retires them from feeds.
type Post struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	AuthorID  uint    `gorm:"not null;index" json:"authorId"`
	Author    User    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Title     string  `json:"title"`
	Content   string  `gorm:"not null" json:"content"`
	Price     string  `gorm:"default:'Free'" json:"price"`
	Category  string  `gorm:"default:'General'" json:"category"`
	ImageURL  string  `json:"imageUrl"` // data URL, stored opaquely
	Latitude  float64 `gorm:"not null;index:idx_posts_coords" json:"latitude"`
	Longitude float64 `gorm:"not null;index:idx_posts_coords" json:"longitude"`
	Active    bool    `gorm:"default:true;index" json:"active"`
	// DistanceKm is computed at read time for feeds; not persisted.
	DistanceKm   float64        `gorm:"-" json:"distanceKm,omitempty"`
	JoinRequests []JoinRequest  `gorm:"foreignKey:PostID" json:"joinRequests,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (Post) TableName() string {
	return "posts"
}

// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a member of the JoinMe platform. CurrentLat/CurrentLng hold
// the last location the client reported; nil means the user has never shared
// a location and is excluded from proximity discovery.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"unique;not null" json:"email"`
	Name         string         `gorm:"not null" json:"name"`
	Password     string         `json:"-"` // empty for OAuth-only accounts
	Image        string         `json:"image"`
	Bio          string         `json:"bio"`
	Profession   string         `json:"profession"`
	Location     string         `json:"location"` // free-form label, not coordinates
	CurrentLat   *float64       `json:"currentLat"`
	CurrentLng   *float64       `json:"currentLng"`
	RadiusKm     float64        `gorm:"default:5" json:"radiusKm"`
	Interests    string         `json:"interests"`
	AccountLinks string         `json:"accountLinks"` // JSON-encoded social links
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Posts        []Post         `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}

// HasLocation reports whether the user has shared coordinates.
func (u *User) HasLocation() bool {
	return u.CurrentLat != nil && u.CurrentLng != nil
}

// UserSummary is the public subset of a user embedded in feeds, friend lists
// and message payloads.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Image string `json:"image"`
	Bio   string `json:"bio,omitempty"`
}

// Summary returns the public view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
		Bio:   u.Bio,
	}
}

package models

import "time"

// PushSubscription is one browser/device push endpoint registered by a user.
// Rows are upserted by endpoint and deleted only when the push service
// reports the endpoint gone (HTTP 410); they are otherwise immortal.
type PushSubscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Endpoint  string    `gorm:"unique;not null" json:"endpoint"`
	P256dh    string    `gorm:"not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (PushSubscription) TableName() string {
	return "push_subscriptions"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email             string     `gorm:"unique;not null" json:"email"`
	PasswordHash      string     `json:"-"`
	WebhookURL        *string    `json:"webhook_url,omitempty"`
	PingIntervalHours int        `gorm:"not null;default:0" json:"ping_interval_hours"`
	LastPingAt        *time.Time `json:"last_ping_at,omitempty"`
	CreatedAt         time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"not null" json:"updated_at"`
}

// HasWebhook reports whether the user has a non-empty webhook configured.
func (u *User) HasWebhook() bool {
	return u.WebhookURL != nil && *u.WebhookURL != ""
}

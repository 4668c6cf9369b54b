package models

import (
	"time"

	"github.com/google/uuid"
)

// Task ids are auto-incremented by the database so they stay monotonic;
// the notifier uses them as stable headings.
type Task struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE;" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Note      string    `json:"note"`
	Done      bool      `gorm:"not null;default:false" json:"done"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

package models

import (
	"time"
)

// Severity untuk notifikasi dashboard.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   string    `gorm:"type:varchar(64)" json:"event_id"`
	Title     *string   `gorm:"type:varchar(100)" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Severity  string    `gorm:"type:varchar(20);not null;default:'info'" json:"severity"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

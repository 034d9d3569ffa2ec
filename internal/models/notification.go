package models

import "time"

// Notification is a best-effort in-app message. Unlike outbox messages
// these are written outside any transaction and may be dropped under load.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint   `gorm:"index" json:"user_id"`
	BookingID *uint  `json:"booking_id"`
	Kind      string `gorm:"size:50;not null" json:"kind"`
	Message   string `gorm:"size:255" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

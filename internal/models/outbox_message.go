package models

import "time"

// OutboxMessage is a durable domain event written in the same database
// transaction as the state change it describes. A separate drain process
// publishes rows with a nil PublishedAt; EventID lets consumers dedupe
// at-least-once deliveries.
type OutboxMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EventID   string `gorm:"size:36;uniqueIndex;not null" json:"event_id"`
	EventType string `gorm:"size:50;not null;index" json:"event_type"`
	Payload   string `gorm:"type:text" json:"payload"`

	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at"`
}

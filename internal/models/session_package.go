package models

import "time"

// SessionPackage is a prepaid bundle of coaching sessions sold by a coach.
type SessionPackage struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	CoachID uint `gorm:"index" json:"coach_id"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	SessionCount int     `json:"session_count"`
	Price        float64 `json:"price"`
	ValidityDays int     `gorm:"default:90" json:"validity_days"`
	Status       string  `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

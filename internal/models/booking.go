package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	CoachID uint `gorm:"index:idx_booking_coach_date" json:"coach_id"`
	Coach   User `gorm:"foreignKey:CoachID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"coach"`

	SportID uint  `json:"sport_id"`
	Sport   Sport `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sport"`

	BookingDate time.Time `gorm:"type:date;index:idx_booking_coach_date" json:"booking_date"`
	StartTime   string    `gorm:"size:5;not null" json:"start_time"`
	EndTime     string    `gorm:"size:5;not null" json:"end_time"`

	Status     string  `gorm:"size:20;default:'pending'" json:"status"`
	TotalPrice float64 `json:"total_price"`

	PackageID *uint `json:"package_id"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

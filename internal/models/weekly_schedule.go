package models

import "time"

// WeeklySchedule is one recurring availability window of a coach.
// DayOfWeek follows Monday=1 .. Sunday=7. Times are naive wall-clock
// "15:04" strings; zero-padding keeps string order equal to time order.
type WeeklySchedule struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	CoachID uint `gorm:"index:idx_schedule_coach_day" json:"coach_id"`

	DayOfWeek int `gorm:"index:idx_schedule_coach_day" json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

const (
	RoleUser  = "user"
	RoleCoach = "coach"
	RoleAdmin = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'user'" json:"role"`

	// Coach fields; zero for plain users.
	RatePerHour float64 `json:"rate_per_hour"`
	Bio         string  `gorm:"size:255" json:"bio"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

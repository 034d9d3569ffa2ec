package notify

import (
	"gorm.io/gorm"

	"github.com/CoachLinkServices/coach-scheduler/internal/models"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Save(ev Event) error {
	n := models.Notification{
		UserID:    ev.UserID,
		BookingID: ev.BookingID,
		Kind:      ev.Kind,
		Message:   ev.Message,
	}

	return s.db.Create(&n).Error
}

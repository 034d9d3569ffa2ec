package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
)

type CoachGormStore struct {
	db *gorm.DB
}

func NewCoachGormStore(db *gorm.DB) *CoachGormStore {
	return &CoachGormStore{db: db}
}

func (s *CoachGormStore) GetActiveCoach(
	ctx context.Context,
	coachID uint,
) (*models.User, error) {

	var coach models.User
	if err := s.db.WithContext(ctx).
		Where("id = ? AND role = ? AND active = true", coachID, models.RoleCoach).
		First(&coach).Error; err != nil {
		return nil, err
	}
	return &coach, nil
}

// Compile-time check
var _ domain.CoachStore = (*CoachGormStore)(nil)

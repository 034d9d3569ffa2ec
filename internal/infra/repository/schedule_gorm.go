package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/schedule"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.WeeklySchedule, error) {

	var s models.WeeklySchedule
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleGormRepository) GetByCoach(
	ctx context.Context,
	coachID uint,
) ([]models.WeeklySchedule, error) {

	var rows []models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where("coach_id = ?", coachID).
		Order("day_of_week ASC, start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ScheduleGormRepository) GetByCoachAndDay(
	ctx context.Context,
	coachID uint,
	dayOfWeek int,
) ([]models.WeeklySchedule, error) {

	var rows []models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where("coach_id = ? AND day_of_week = ?", coachID, dayOfWeek).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ScheduleGormRepository) HasConflict(
	ctx context.Context,
	coachID uint,
	dayOfWeek int,
	start string,
	end string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.WeeklySchedule{}).
		Where(
			"coach_id = ? AND day_of_week = ? AND start_time < ? AND end_time > ?",
			coachID, dayOfWeek, end, start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ScheduleGormRepository) Create(
	ctx context.Context,
	s *models.WeeklySchedule,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScheduleGormRepository) Update(
	ctx context.Context,
	s *models.WeeklySchedule,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ScheduleGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.WeeklySchedule{}, id).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)

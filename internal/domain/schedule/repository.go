package schedule

import (
	"context"

	"github.com/CoachLinkServices/coach-scheduler/internal/models"
)

type Repository interface {
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.WeeklySchedule, error)

	GetByCoach(
		ctx context.Context,
		coachID uint,
	) ([]models.WeeklySchedule, error)

	GetByCoachAndDay(
		ctx context.Context,
		coachID uint,
		dayOfWeek int,
	) ([]models.WeeklySchedule, error)

	// HasConflict checks [start,end) against the coach's other windows on
	// the same weekday. excludeID skips the row being updated; zero means
	// no exclusion.
	HasConflict(
		ctx context.Context,
		coachID uint,
		dayOfWeek int,
		start string,
		end string,
		excludeID uint,
	) (bool, error)

	Create(
		ctx context.Context,
		s *models.WeeklySchedule,
	) error

	Update(
		ctx context.Context,
		s *models.WeeklySchedule,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}

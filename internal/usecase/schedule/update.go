package schedule

import (
	"context"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/schedule"
	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
)

type UpdateScheduleInput struct {
	ScheduleID uint
	CoachID    uint
	DayOfWeek  int
	StartTime  string
	EndTime    string
}

type UpdateSchedule struct {
	repo domain.Repository
}

func NewUpdateSchedule(repo domain.Repository) *UpdateSchedule {
	return &UpdateSchedule{repo: repo}
}

func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	in UpdateScheduleInput,
) (*models.WeeklySchedule, error) {

	s, err := uc.repo.GetByID(ctx, in.ScheduleID)
	if err != nil {
		return nil, httperr.ErrNotFound("schedule_not_found", "Schedule not found")
	}

	if s.CoachID != in.CoachID {
		return nil, httperr.ErrBadRequest("coach_mismatch", "Schedule coach is not you")
	}

	if err := validateWindow(in.DayOfWeek, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	// The row being updated is excluded so shrinking or moving a window
	// within itself is not a conflict.
	conflict, err := uc.repo.HasConflict(
		ctx,
		in.CoachID,
		in.DayOfWeek,
		in.StartTime,
		in.EndTime,
		s.ID,
	)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, errScheduleConflict()
	}

	s.DayOfWeek = in.DayOfWeek
	s.StartTime = in.StartTime
	s.EndTime = in.EndTime

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}

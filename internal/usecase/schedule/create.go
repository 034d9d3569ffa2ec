package schedule

import (
	"context"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/schedule"
	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
	"github.com/CoachLinkServices/coach-scheduler/internal/timeutil"
)

type CreateScheduleInput struct {
	CoachID   uint
	DayOfWeek int
	StartTime string
	EndTime   string
}

// CreateSchedule adds a weekly availability window after checking it does
// not overlap the coach's existing windows on the same weekday.
type CreateSchedule struct {
	repo domain.Repository
}

func NewCreateSchedule(repo domain.Repository) *CreateSchedule {
	return &CreateSchedule{repo: repo}
}

func (uc *CreateSchedule) Execute(
	ctx context.Context,
	in CreateScheduleInput,
) (*models.WeeklySchedule, error) {

	if err := validateWindow(in.DayOfWeek, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	conflict, err := uc.repo.HasConflict(
		ctx,
		in.CoachID,
		in.DayOfWeek,
		in.StartTime,
		in.EndTime,
		0,
	)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, errScheduleConflict()
	}

	s := &models.WeeklySchedule{
		CoachID:   in.CoachID,
		DayOfWeek: in.DayOfWeek,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}

func validateWindow(dayOfWeek int, start, end string) error {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return httperr.ErrBadRequest("invalid_day_of_week", "Invalid day of week")
	}
	if !timeutil.ValidHM(start) || !timeutil.ValidHM(end) || start >= end {
		return httperr.ErrBadRequest("invalid_time_range", "Invalid time range")
	}
	return nil
}

func errScheduleConflict() error {
	return httperr.ErrConflict(
		"schedule_conflict",
		"Schedule conflicts with an existing availability window",
	)
}

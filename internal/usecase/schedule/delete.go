package schedule

import (
	"context"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/schedule"
	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
)

type DeleteSchedule struct {
	repo domain.Repository
}

func NewDeleteSchedule(repo domain.Repository) *DeleteSchedule {
	return &DeleteSchedule{repo: repo}
}

func (uc *DeleteSchedule) Execute(
	ctx context.Context,
	scheduleID uint,
	coachID uint,
) error {

	s, err := uc.repo.GetByID(ctx, scheduleID)
	if err != nil {
		return httperr.ErrNotFound("schedule_not_found", "Schedule not found")
	}

	if s.CoachID != coachID {
		return httperr.ErrBadRequest("coach_mismatch", "Schedule coach is not you")
	}

	return uc.repo.Delete(ctx, s.ID)
}

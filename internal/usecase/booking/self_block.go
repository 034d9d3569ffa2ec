package booking

import (
	"context"
	"time"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
	"github.com/CoachLinkServices/coach-scheduler/internal/notify"
)

type SelfBlockInput struct {
	CoachID uint
	SportID uint

	Date      time.Time
	StartTime string
	EndTime   string
}

// SelfBlock lets a coach reserve their own slot, e.g. for a break or an
// off-platform commitment. Schedule containment is bypassed; the
// no-overlap rule still holds and the block is free and immediately held.
type SelfBlock struct {
	coaches  domain.CoachStore
	bookings domain.Repository
	uow      domain.UnitOfWork
	notify   notify.Notifier
}

func NewSelfBlock(
	coaches domain.CoachStore,
	bookings domain.Repository,
	uow domain.UnitOfWork,
	notify notify.Notifier,
) *SelfBlock {
	return &SelfBlock{
		coaches:  coaches,
		bookings: bookings,
		uow:      uow,
		notify:   notify,
	}
}

func (uc *SelfBlock) Execute(
	ctx context.Context,
	in SelfBlockInput,
) (*models.Booking, error) {

	if _, err := uc.coaches.GetActiveCoach(ctx, in.CoachID); err != nil {
		return nil, httperr.ErrNotFound("coach_not_found", "Coach not found")
	}

	if err := validateTimeRange(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	overlap, err := uc.bookings.HasOverlap(ctx, in.CoachID, in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, httperr.ErrConflict(
			"slot_already_booked",
			"The selected time slot is already booked",
		)
	}

	b := &models.Booking{
		UserID:      in.CoachID,
		CoachID:     in.CoachID,
		SportID:     in.SportID,
		BookingDate: in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Status:      string(domain.StatusCompleted),
		TotalPrice:  0,
	}

	err = uc.uow.InTx(ctx, func(tx domain.TxStores) error {
		return tx.Bookings().Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		UserID:    in.CoachID,
		BookingID: &b.ID,
		Kind:      notify.KindBookingBlocked,
		Message:   "Your slot was blocked",
	})

	return b, nil
}

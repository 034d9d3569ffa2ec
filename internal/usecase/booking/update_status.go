package booking

import (
	"context"
	"time"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
)

// UpdateStatus moves a booking along the status state machine on behalf
// of its coach. pending -> completed|cancelled; both targets terminal.
type UpdateStatus struct {
	bookings domain.Repository
}

func NewUpdateStatus(bookings domain.Repository) *UpdateStatus {
	return &UpdateStatus{bookings: bookings}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	bookingID uint,
	newStatus string,
	coachID uint,
) (bool, error) {

	b, err := uc.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return false, httperr.ErrNotFound("booking_not_found", "Booking not found")
	}

	if b.CoachID != coachID {
		return false, httperr.ErrBadRequest("coach_mismatch", "Booking coach is not you")
	}

	if !domain.CanTransition(domain.Status(b.Status), domain.Status(newStatus)) {
		return false, httperr.ErrBadRequest("invalid_status", "Invalid booking status")
	}

	now := time.Now()
	switch domain.Status(newStatus) {
	case domain.StatusCompleted:
		if err := domain.Complete(b, now); err != nil {
			return false, err
		}
	case domain.StatusCancelled:
		if err := domain.Cancel(b, now); err != nil {
			return false, err
		}
	}

	if err := uc.bookings.Update(ctx, b); err != nil {
		return false, err
	}

	return true, nil
}

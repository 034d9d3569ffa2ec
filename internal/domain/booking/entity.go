package booking

import (
	"time"

	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel flips a booking to cancelled. Re-cancelling is rejected rather
// than treated as a no-op; completed bookings stay cancellable so prepaid
// sessions can still be refunded.
func Cancel(b *models.Booking, now time.Time) error {
	if Status(b.Status) == StatusCancelled {
		return httperr.ErrConflict("already_cancelled", "Booking is already cancelled")
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// Complete marks a pending booking as held.
func Complete(b *models.Booking, now time.Time) error {
	if !CanTransition(Status(b.Status), StatusCompleted) {
		return httperr.ErrBadRequest("invalid_status", "Invalid booking status")
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

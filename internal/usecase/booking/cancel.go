package booking

import (
	"context"
	"time"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
	"github.com/CoachLinkServices/coach-scheduler/internal/outbox"
)

type CancelInput struct {
	BookingID   uint
	Reason      string
	RequestedAt time.Time

	ActorID   uint
	ActorRole string
}

type CancelResult struct {
	BookingID    uint    `json:"booking_id"`
	CoachID      uint    `json:"coach_id"`
	Status       string  `json:"status"`
	RefundAmount float64 `json:"refund_amount"`
	Message      string  `json:"message"`
}

// CancelBooking cancels a booking and records the refund and notification
// events through the transactional outbox: the status flip and both event
// rows commit together or not at all, so a broker outage at commit time
// never loses an event and a failed write never leaves a half-cancelled
// booking.
type CancelBooking struct {
	bookings domain.Repository
	uow      domain.UnitOfWork
}

func NewCancelBooking(
	bookings domain.Repository,
	uow domain.UnitOfWork,
) *CancelBooking {
	return &CancelBooking{
		bookings: bookings,
		uow:      uow,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	in CancelInput,
) (*CancelResult, error) {

	b, err := uc.bookings.GetByID(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "Booking not found")
	}

	if !canCancel(b, in.ActorID, in.ActorRole) {
		return nil, httperr.ErrUnauthorized(
			"cancel_not_allowed",
			"You are not allowed to cancel this booking",
		)
	}

	refund := b.TotalPrice

	err = uc.uow.InTx(ctx, func(tx domain.TxStores) error {
		if err := domain.Cancel(b, in.RequestedAt); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}

		if err := tx.Outbox().Append(ctx, outbox.Event{
			Type: outbox.EventBookingRefund,
			Payload: outbox.RefundEvent{
				BookingID:    b.ID,
				UserID:       b.UserID,
				CoachID:      b.CoachID,
				RefundAmount: refund,
				Reason:       in.Reason,
				RequestedAt:  in.RequestedAt,
			},
		}); err != nil {
			return err
		}

		return tx.Outbox().Append(ctx, outbox.Event{
			Type: outbox.EventBookingCancelled,
			Payload: outbox.CancelledEvent{
				BookingID:   b.ID,
				UserID:      b.UserID,
				CoachID:     b.CoachID,
				Reason:      in.Reason,
				RequestedAt: in.RequestedAt,
				HasRefund:   refund > 0,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return &CancelResult{
		BookingID:    b.ID,
		CoachID:      b.CoachID,
		Status:       b.Status,
		RefundAmount: refund,
		Message:      "Booking cancelled",
	}, nil
}

func canCancel(b *models.Booking, actorID uint, actorRole string) bool {
	return actorID == b.UserID || actorID == b.CoachID || actorRole == models.RoleAdmin
}

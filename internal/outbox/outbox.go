package outbox

import (
	"context"
	"time"
)

// Event types drained by the external publisher.
const (
	EventBookingRefund    = "booking.refund_requested"
	EventBookingCancelled = "booking.cancelled"
)

// RefundEvent asks the payment side to refund a cancelled booking.
type RefundEvent struct {
	BookingID    uint      `json:"booking_id"`
	UserID       uint      `json:"user_id"`
	CoachID      uint      `json:"coach_id"`
	RefundAmount float64   `json:"refund_amount"`
	Reason       string    `json:"reason"`
	RequestedAt  time.Time `json:"requested_at"`
}

// CancelledEvent notifies both parties that a booking was cancelled.
type CancelledEvent struct {
	BookingID   uint      `json:"booking_id"`
	UserID      uint      `json:"user_id"`
	CoachID     uint      `json:"coach_id"`
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requested_at"`
	HasRefund   bool      `json:"has_refund"`
}

type Event struct {
	Type    string
	Payload any
}

// Appender records an event durably. Implementations must share the
// caller's transaction so the event commits or rolls back with the state
// change it describes.
type Appender interface {
	Append(ctx context.Context, ev Event) error
}

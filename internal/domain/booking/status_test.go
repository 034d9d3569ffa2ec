package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		current Status
		next    Status
		want    bool
	}{
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCancelled, StatusPending, false},
		{StatusPending, Status("unknown"), false},
	}

	for _, tt := range tests {
		assert.Equal(
			t, tt.want,
			CanTransition(tt.current, tt.next),
			"%s -> %s", tt.current, tt.next,
		)
	}
}

func TestCancel(t *testing.T) {
	now := time.Now()

	b := &models.Booking{Status: string(StatusPending)}
	assert.NoError(t, Cancel(b, now))
	assert.Equal(t, string(StatusCancelled), b.Status)
	assert.NotNil(t, b.CancelledAt)

	// not idempotent
	err := Cancel(b, now)
	assert.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "already_cancelled"))
	assert.Equal(t, "Booking is already cancelled", err.Error())

	// completed bookings stay cancellable (prepaid refund path)
	b = &models.Booking{Status: string(StatusCompleted)}
	assert.NoError(t, Cancel(b, now))
	assert.Equal(t, string(StatusCancelled), b.Status)
}

func TestComplete(t *testing.T) {
	now := time.Now()

	b := &models.Booking{Status: string(StatusPending)}
	assert.NoError(t, Complete(b, now))
	assert.Equal(t, string(StatusCompleted), b.Status)
	assert.NotNil(t, b.CompletedAt)

	err := Complete(b, now)
	assert.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	b = &models.Booking{Status: string(StatusCancelled)}
	assert.Error(t, Complete(b, now))
}

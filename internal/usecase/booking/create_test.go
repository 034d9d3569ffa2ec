package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
	"github.com/CoachLinkServices/coach-scheduler/internal/notify"
)

// 2026-08-24 is a Monday.
var monday = time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)

func fixtureStores() *stubStores {
	s := newStubStores()
	s.coaches[2] = &models.User{
		ID:          2,
		Role:        models.RoleCoach,
		RatePerHour: 50,
		Active:      true,
	}
	s.schedules = []models.WeeklySchedule{
		{ID: 1, CoachID: 2, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
	}
	return s
}

func newCreateUC(s *stubStores, n *stubNotifier) *CreateBooking {
	return NewCreateBooking(s, stubScheduleRepo{s: s}, s, s, stubUow{s: s}, n)
}

func TestCreateBooking_PayPerSession(t *testing.T) {
	s := fixtureStores()
	n := &stubNotifier{}
	uc := newCreateUC(s, n)

	res, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    1,
		CoachID:   2,
		SportID:   3,
		Date:      monday,
		StartTime: "10:00",
		EndTime:   "11:30",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), res.Booking.Status)
	assert.Equal(t, 75.0, res.Booking.TotalPrice) // 50/h * 1.5h
	assert.Equal(t, 0, res.SessionsRemaining)
	assert.Nil(t, res.Booking.PackageID)

	require.Len(t, s.bookings, 1)
	assert.Equal(t, res.Booking.ID, s.bookings[0].ID)

	require.Len(t, n.events, 1)
	assert.Equal(t, notify.KindBookingCreated, n.events[0].Kind)
	assert.Equal(t, uint(1), n.events[0].UserID)
}

func TestCreateBooking_CoachNotFound(t *testing.T) {
	s := fixtureStores()
	uc := newCreateUC(s, &stubNotifier{})

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID: 1, CoachID: 99, Date: monday,
		StartTime: "10:00", EndTime: "11:00",
	})
	require.Error(t, err)
	assert.Equal(t, "Coach not found", err.Error())

	// an inactive coach is treated the same as a missing one
	s.coaches[2].Active = false
	_, err = uc.Execute(context.Background(), CreateBookingInput{
		UserID: 1, CoachID: 2, Date: monday,
		StartTime: "10:00", EndTime: "11:00",
	})
	require.Error(t, err)
	assert.Equal(t, "Coach not found", err.Error())
}

func TestCreateBooking_OutsideAvailableHours(t *testing.T) {
	s := fixtureStores()
	uc := newCreateUC(s, &stubNotifier{})

	tests := []struct {
		name       string
		date       time.Time
		start, end string
	}{
		{"before window", monday, "08:00", "09:30"},
		{"past window end", monday, "16:30", "17:30"},
		{"day with no windows", monday.AddDate(0, 0, 1), "10:00", "11:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), CreateBookingInput{
				UserID: 1, CoachID: 2, Date: tt.date,
				StartTime: tt.start, EndTime: tt.end,
			})
			require.Error(t, err)
			assert.Equal(t, "Booking time is outside coach's available hours", err.Error())
			assert.Equal(t, 400, httperr.StatusOf(err))
		})
	}

	assert.Empty(t, s.bookings)
}

func TestCreateBooking_SlotAlreadyBooked(t *testing.T) {
	s := fixtureStores()
	uc := newCreateUC(s, &stubNotifier{})

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID: 1, CoachID: 2, Date: monday,
		StartTime: "10:00", EndTime: "11:00",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), CreateBookingInput{
		UserID: 5, CoachID: 2, Date: monday,
		StartTime: "10:30", EndTime: "11:30",
	})
	require.Error(t, err)
	assert.Equal(t, "The selected time slot is already booked", err.Error())
	assert.Equal(t, 409, httperr.StatusOf(err))

	// back to back is fine: [10:00,11:00) then [11:00,12:00)
	_, err = uc.Execute(context.Background(), CreateBookingInput{
		UserID: 5, CoachID: 2, Date: monday,
		StartTime: "11:00", EndTime: "12:00",
	})
	assert.NoError(t, err)
}

func TestCreateBooking_CancelledSlotIsRebookable(t *testing.T) {
	s := fixtureStores()
	uc := newCreateUC(s, &stubNotifier{})

	s.bookings = append(s.bookings, &models.Booking{
		ID: 10, CoachID: 2, UserID: 7,
		BookingDate: monday, StartTime: "10:00", EndTime: "11:00",
		Status: string(domain.StatusCancelled),
	})
	s.nextBookingID = 11

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID: 1, CoachID: 2, Date: monday,
		StartTime: "10:00", EndTime: "11:00",
	})
	assert.NoError(t, err)
}

func TestCreateBooking_InvalidTimeRange(t *testing.T) {
	uc := newCreateUC(fixtureStores(), &stubNotifier{})

	for _, in := range []CreateBookingInput{
		{UserID: 1, CoachID: 2, Date: monday, StartTime: "11:00", EndTime: "10:00"},
		{UserID: 1, CoachID: 2, Date: monday, StartTime: "10:00", EndTime: "10:00"},
		{UserID: 1, CoachID: 2, Date: monday, StartTime: "10am", EndTime: "11:00"},
	} {
		_, err := uc.Execute(context.Background(), in)
		require.Error(t, err)
		assert.Equal(t, 400, httperr.StatusOf(err))
	}
}

func TestCreateBooking_UnknownCoachWinsOverBadTimeRange(t *testing.T) {
	uc := newCreateUC(fixtureStores(), &stubNotifier{})

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID: 1, CoachID: 99, Date: monday,
		StartTime: "11:00", EndTime: "10:00",
	})
	require.Error(t, err)
	assert.Equal(t, "Coach not found", err.Error())
	assert.Equal(t, 404, httperr.StatusOf(err))
}

func TestCreateBooking_WithPackage(t *testing.T) {
	s := fixtureStores()
	n := &stubNotifier{}
	uc := newCreateUC(s, n)

	s.packages[7] = &models.SessionPackage{ID: 7, CoachID: 2, SessionCount: 10}
	s.purchases = append(s.purchases, &models.PackagePurchase{
		ID: 1, UserID: 1, PackageID: 7,
		PurchaseDate: monday.AddDate(0, 0, -10),
		ExpiryDate:   monday.AddDate(0, 1, 0),
		SessionsUsed: 3,
	})

	pkgID := uint(7)
	res, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID: 1, CoachID: 2, Date: monday,
		StartTime: "10:00", EndTime: "11:00",
		PackageID: &pkgID,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), res.Booking.Status)
	assert.Equal(t, 0.0, res.Booking.TotalPrice)
	assert.Equal(t, 6, res.SessionsRemaining)
	assert.Equal(t, 4, s.purchases[0].SessionsUsed)
}

func TestCreateBooking_PackageErrors(t *testing.T) {
	s := fixtureStores()
	uc := newCreateUC(s, &stubNotifier{})

	s.packages[7] = &models.SessionPackage{ID: 7, CoachID: 2, SessionCount: 5}
	s.packages[8] = &models.SessionPackage{ID: 8, CoachID: 9, SessionCount: 5}

	run := func(pkgID uint) error {
		_, err := uc.Execute(context.Background(), CreateBookingInput{
			UserID: 1, CoachID: 2, Date: monday,
			StartTime: "10:00", EndTime: "11:00",
			PackageID: &pkgID,
		})
		return err
	}

	err := run(99)
	require.Error(t, err)
	assert.Equal(t, "Package not found", err.Error())

	err = run(8)
	require.Error(t, err)
	assert.Equal(t, "Package does not belong to this coach", err.Error())

	// no purchase at all
	err = run(7)
	require.Error(t, err)
	assert.Equal(t, "No valid package with remaining sessions found for this user", err.Error())

	// expired purchase
	s.purchases = []*models.PackagePurchase{{
		ID: 1, UserID: 1, PackageID: 7,
		PurchaseDate: monday.AddDate(0, -4, 0),
		ExpiryDate:   monday.AddDate(0, -1, 0),
		SessionsUsed: 0,
	}}
	err = run(7)
	require.Error(t, err)
	assert.Equal(t, "No valid package with remaining sessions found for this user", err.Error())

	// exhausted purchase
	s.purchases = []*models.PackagePurchase{{
		ID: 2, UserID: 1, PackageID: 7,
		PurchaseDate: monday.AddDate(0, 0, -1),
		ExpiryDate:   monday.AddDate(0, 1, 0),
		SessionsUsed: 5,
	}}
	err = run(7)
	require.Error(t, err)
	assert.Equal(t, "No valid package with remaining sessions found for this user", err.Error())

	assert.Empty(t, s.bookings)
}

func TestCreateBooking_PicksNewestUsablePurchase(t *testing.T) {
	s := fixtureStores()
	uc := newCreateUC(s, &stubNotifier{})

	s.packages[7] = &models.SessionPackage{ID: 7, CoachID: 2, SessionCount: 5}
	s.purchases = []*models.PackagePurchase{
		{
			ID: 1, UserID: 1, PackageID: 7,
			PurchaseDate: monday.AddDate(0, 0, -30),
			ExpiryDate:   monday.AddDate(0, 1, 0),
			SessionsUsed: 2,
		},
		{
			ID: 2, UserID: 1, PackageID: 7,
			PurchaseDate: monday.AddDate(0, 0, -1),
			ExpiryDate:   monday.AddDate(0, 2, 0),
			SessionsUsed: 0,
		},
	}

	pkgID := uint(7)
	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID: 1, CoachID: 2, Date: monday,
		StartTime: "10:00", EndTime: "11:00",
		PackageID: &pkgID,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, s.purchases[0].SessionsUsed) // untouched
	assert.Equal(t, 1, s.purchases[1].SessionsUsed) // newest decremented
}

func TestSelfBlock(t *testing.T) {
	s := fixtureStores()
	n := &stubNotifier{}
	uc := NewSelfBlock(s, s, stubUow{s: s}, n)

	// outside the weekly schedule on purpose; containment does not apply
	b, err := uc.Execute(context.Background(), SelfBlockInput{
		CoachID: 2, SportID: 3, Date: monday,
		StartTime: "07:00", EndTime: "08:00",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), b.UserID)
	assert.Equal(t, string(domain.StatusCompleted), b.Status)
	assert.Equal(t, 0.0, b.TotalPrice)

	require.Len(t, n.events, 1)
	assert.Equal(t, notify.KindBookingBlocked, n.events[0].Kind)

	// overlap still enforced
	_, err = uc.Execute(context.Background(), SelfBlockInput{
		CoachID: 2, SportID: 3, Date: monday,
		StartTime: "07:30", EndTime: "08:30",
	})
	require.Error(t, err)
	assert.Equal(t, "The selected time slot is already booked", err.Error())
}

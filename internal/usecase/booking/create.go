package booking

import (
	"context"
	"time"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	scheduledomain "github.com/CoachLinkServices/coach-scheduler/internal/domain/schedule"
	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
	"github.com/CoachLinkServices/coach-scheduler/internal/notify"
	"github.com/CoachLinkServices/coach-scheduler/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID  uint
	CoachID uint
	SportID uint

	Date      time.Time
	StartTime string
	EndTime   string

	PackageID *uint
}

type CreateBookingResult struct {
	Booking           *models.Booking
	SessionsRemaining int
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking admits a booking against the coach's weekly availability,
// the no-overlap rule and, for prepaid bookings, the user's package
// purchases. The booking row and any purchase decrement persist in one
// transaction; the created notification is fire-and-forget.
type CreateBooking struct {
	coaches   domain.CoachStore
	schedules scheduledomain.Repository
	bookings  domain.Repository
	packages  domain.PackageStore
	uow       domain.UnitOfWork
	notify    notify.Notifier
}

func NewCreateBooking(
	coaches domain.CoachStore,
	schedules scheduledomain.Repository,
	bookings domain.Repository,
	packages domain.PackageStore,
	uow domain.UnitOfWork,
	notify notify.Notifier,
) *CreateBooking {
	return &CreateBooking{
		coaches:   coaches,
		schedules: schedules,
		bookings:  bookings,
		packages:  packages,
		uow:       uow,
		notify:    notify,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingResult, error) {

	// Existence first: a bad time range against an unknown coach is still
	// a 404, not a 400.
	coach, err := uc.coaches.GetActiveCoach(ctx, in.CoachID)
	if err != nil {
		return nil, httperr.ErrNotFound("coach_not_found", "Coach not found")
	}

	if err := validateTimeRange(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	dow := timeutil.DayOfWeekOf(in.Date)
	windows, err := uc.schedules.GetByCoachAndDay(ctx, in.CoachID, dow)
	if err != nil {
		return nil, err
	}

	contained := false
	for _, w := range windows {
		if timeutil.Contains(w.StartTime, w.EndTime, in.StartTime, in.EndTime) {
			contained = true
			break
		}
	}
	if !contained {
		return nil, httperr.ErrBadRequest(
			"outside_available_hours",
			"Booking time is outside coach's available hours",
		)
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
		UserID:      in.UserID,
		CoachID:     in.CoachID,
		SportID:     in.SportID,
		BookingDate: in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		PackageID:   in.PackageID,
	}

	var purchase *models.PackagePurchase
	sessionsRemaining := 0

	if in.PackageID == nil {
		b.Status = string(domain.StatusPending)
		b.TotalPrice = coach.RatePerHour * timeutil.DurationHours(in.StartTime, in.EndTime)
	} else {
		pkg, err := uc.packages.GetPackage(ctx, *in.PackageID)
		if err != nil {
			return nil, httperr.ErrNotFound("package_not_found", "Package not found")
		}
		if pkg.CoachID != in.CoachID {
			return nil, httperr.ErrBadRequest(
				"package_coach_mismatch",
				"Package does not belong to this coach",
			)
		}

		purchase, err = uc.selectPurchase(ctx, in.UserID, pkg)
		if err != nil {
			return nil, err
		}

		purchase.SessionsUsed++
		sessionsRemaining = pkg.SessionCount - purchase.SessionsUsed

		b.Status = string(domain.StatusCompleted)
		b.TotalPrice = 0
	}

	err = uc.uow.InTx(ctx, func(tx domain.TxStores) error {
		if purchase != nil {
			if err := tx.Packages().UpdatePurchase(ctx, purchase); err != nil {
				return err
			}
		}
		return tx.Bookings().Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		UserID:    in.UserID,
		BookingID: &b.ID,
		Kind:      notify.KindBookingCreated,
		Message:   "Your booking was created",
	})

	return &CreateBookingResult{
		Booking:           b,
		SessionsRemaining: sessionsRemaining,
	}, nil
}

// selectPurchase picks the user's most recent non-expired purchase of the
// package that still has sessions left. The store returns purchases newest
// first, so the first hit wins ties on purchase date.
func (uc *CreateBooking) selectPurchase(
	ctx context.Context,
	userID uint,
	pkg *models.SessionPackage,
) (*models.PackagePurchase, error) {

	purchases, err := uc.packages.ListActivePurchases(ctx, userID, pkg.ID, time.Now())
	if err != nil {
		return nil, err
	}

	for i := range purchases {
		if purchases[i].SessionsUsed < pkg.SessionCount {
			return &purchases[i], nil
		}
	}

	return nil, httperr.ErrBadRequest(
		"no_valid_package",
		"No valid package with remaining sessions found for this user",
	)
}

func validateTimeRange(start, end string) error {
	if !timeutil.ValidHM(start) || !timeutil.ValidHM(end) || start >= end {
		return httperr.ErrBadRequest("invalid_time_range", "Invalid time range")
	}
	return nil
}

package booking

import (
	"context"
	"errors"
	"sort"
	"time"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
	"github.com/CoachLinkServices/coach-scheduler/internal/notify"
	"github.com/CoachLinkServices/coach-scheduler/internal/outbox"
	"github.com/CoachLinkServices/coach-scheduler/internal/timeutil"
)

var errNotFound = errors.New("record not found")

// stubStores is an in-memory implementation of every store the booking
// usecases touch, shared by the tests in this package.
type stubStores struct {
	coaches   map[uint]*models.User
	schedules []models.WeeklySchedule
	bookings  []*models.Booking
	packages  map[uint]*models.SessionPackage
	purchases []*models.PackagePurchase

	outboxEvents []outbox.Event

	nextBookingID uint

	// failure injection for rollback tests
	failBookingUpdate bool
	failOutboxAppend  int // fail the Nth append, 1-based; 0 = never
	outboxAppends     int
}

func newStubStores() *stubStores {
	return &stubStores{
		coaches:       map[uint]*models.User{},
		packages:      map[uint]*models.SessionPackage{},
		nextBookingID: 1,
	}
}

// -------- CoachStore --------

func (s *stubStores) GetActiveCoach(_ context.Context, coachID uint) (*models.User, error) {
	c, ok := s.coaches[coachID]
	if !ok || !c.Active {
		return nil, errNotFound
	}
	return c, nil
}

// -------- schedule.Repository --------

// stubScheduleRepo is separate from stubStores because both repository
// interfaces declare GetByID with different return types.
type stubScheduleRepo struct {
	s *stubStores
}

func (r stubScheduleRepo) GetByID(_ context.Context, id uint) (*models.WeeklySchedule, error) {
	for i := range r.s.schedules {
		if r.s.schedules[i].ID == id {
			return &r.s.schedules[i], nil
		}
	}
	return nil, errNotFound
}

func (r stubScheduleRepo) GetByCoach(_ context.Context, coachID uint) ([]models.WeeklySchedule, error) {
	var out []models.WeeklySchedule
	for _, row := range r.s.schedules {
		if row.CoachID == coachID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r stubScheduleRepo) GetByCoachAndDay(_ context.Context, coachID uint, dow int) ([]models.WeeklySchedule, error) {
	var out []models.WeeklySchedule
	for _, row := range r.s.schedules {
		if row.CoachID == coachID && row.DayOfWeek == dow {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r stubScheduleRepo) HasConflict(_ context.Context, coachID uint, dow int, start, end string, excludeID uint) (bool, error) {
	for _, row := range r.s.schedules {
		if row.CoachID != coachID || row.DayOfWeek != dow || row.ID == excludeID {
			continue
		}
		if timeutil.Overlaps(row.StartTime, row.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r stubScheduleRepo) Create(_ context.Context, row *models.WeeklySchedule) error {
	r.s.schedules = append(r.s.schedules, *row)
	return nil
}

func (r stubScheduleRepo) Update(_ context.Context, row *models.WeeklySchedule) error {
	for i := range r.s.schedules {
		if r.s.schedules[i].ID == row.ID {
			r.s.schedules[i] = *row
			return nil
		}
	}
	return errNotFound
}

func (r stubScheduleRepo) Delete(_ context.Context, id uint) error {
	for i := range r.s.schedules {
		if r.s.schedules[i].ID == id {
			r.s.schedules = append(r.s.schedules[:i], r.s.schedules[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

// -------- booking.Repository --------

func (s *stubStores) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errNotFound
}

func (s *stubStores) ListForPeriod(_ context.Context, coachID uint, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.CoachID != coachID || b.Status == string(domain.StatusCancelled) {
			continue
		}
		if b.BookingDate.Before(from) || b.BookingDate.After(to) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (s *stubStores) ListForPeriodDetailed(_ context.Context, coachID uint, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.CoachID != coachID {
			continue
		}
		if b.BookingDate.Before(from) || b.BookingDate.After(to) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (s *stubStores) HasOverlap(_ context.Context, coachID uint, date time.Time, start, end string) (bool, error) {
	for _, b := range s.bookings {
		if b.CoachID != coachID || !b.BookingDate.Equal(date) {
			continue
		}
		if b.Status == string(domain.StatusCancelled) {
			continue
		}
		if timeutil.Overlaps(b.StartTime, b.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubStores) Create(_ context.Context, b *models.Booking) error {
	b.ID = s.nextBookingID
	s.nextBookingID++

	copied := *b
	s.bookings = append(s.bookings, &copied)
	return nil
}

func (s *stubStores) Update(_ context.Context, b *models.Booking) error {
	if s.failBookingUpdate {
		return errors.New("update failed")
	}
	for i, existing := range s.bookings {
		if existing.ID == b.ID {
			copied := *b
			s.bookings[i] = &copied
			return nil
		}
	}
	return errNotFound
}

// -------- booking.PackageStore --------

func (s *stubStores) GetPackage(_ context.Context, packageID uint) (*models.SessionPackage, error) {
	pkg, ok := s.packages[packageID]
	if !ok {
		return nil, errNotFound
	}
	return pkg, nil
}

func (s *stubStores) ListActivePurchases(_ context.Context, userID, packageID uint, now time.Time) ([]models.PackagePurchase, error) {
	var out []models.PackagePurchase
	for _, p := range s.purchases {
		if p.UserID == userID && p.PackageID == packageID && p.ExpiryDate.After(now) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PurchaseDate.After(out[j].PurchaseDate)
	})
	return out, nil
}

func (s *stubStores) UpdatePurchase(_ context.Context, p *models.PackagePurchase) error {
	for i, existing := range s.purchases {
		if existing.ID == p.ID {
			copied := *p
			s.purchases[i] = &copied
			return nil
		}
	}
	return errNotFound
}

// -------- outbox.Appender --------

type stubAppender struct {
	s *stubStores
}

func (a stubAppender) Append(_ context.Context, ev outbox.Event) error {
	a.s.outboxAppends++
	if a.s.failOutboxAppend > 0 && a.s.outboxAppends == a.s.failOutboxAppend {
		return errors.New("outbox write failed")
	}
	a.s.outboxEvents = append(a.s.outboxEvents, ev)
	return nil
}

// -------- UnitOfWork --------

// stubUow snapshots the mutable stores before running fn and restores
// them when fn errors, mimicking a database rollback.
type stubUow struct {
	s *stubStores
}

func (u stubUow) InTx(_ context.Context, fn func(tx domain.TxStores) error) error {
	bookingsBackup := make([]*models.Booking, len(u.s.bookings))
	for i, b := range u.s.bookings {
		copied := *b
		bookingsBackup[i] = &copied
	}
	purchasesBackup := make([]*models.PackagePurchase, len(u.s.purchases))
	for i, p := range u.s.purchases {
		copied := *p
		purchasesBackup[i] = &copied
	}
	outboxBackup := append([]outbox.Event(nil), u.s.outboxEvents...)
	idBackup := u.s.nextBookingID

	if err := fn(stubTx{s: u.s}); err != nil {
		u.s.bookings = bookingsBackup
		u.s.purchases = purchasesBackup
		u.s.outboxEvents = outboxBackup
		u.s.nextBookingID = idBackup
		return err
	}
	return nil
}

type stubTx struct {
	s *stubStores
}

func (t stubTx) Bookings() domain.Repository   { return t.s }
func (t stubTx) Packages() domain.PackageStore { return t.s }
func (t stubTx) Outbox() outbox.Appender       { return stubAppender{s: t.s} }

// -------- notifier --------

type stubNotifier struct {
	events []notify.Event
}

func (n *stubNotifier) Dispatch(ev notify.Event) {
	n.events = append(n.events, ev)
}

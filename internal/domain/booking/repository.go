package booking

import (
	"context"
	"time"

	"github.com/CoachLinkServices/coach-scheduler/internal/models"
	"github.com/CoachLinkServices/coach-scheduler/internal/outbox"
)

type Repository interface {
	// -------- Booking (read) --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListForPeriod(
		ctx context.Context,
		coachID uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	ListForPeriodDetailed(
		ctx context.Context,
		coachID uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	// HasOverlap checks [start,end) against every non-cancelled booking
	// of the coach on the given date.
	HasOverlap(
		ctx context.Context,
		coachID uint,
		date time.Time,
		start string,
		end string,
	) (bool, error)

	// -------- Booking (write) --------
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	Update(
		ctx context.Context,
		b *models.Booking,
	) error
}

type CoachStore interface {
	GetActiveCoach(
		ctx context.Context,
		coachID uint,
	) (*models.User, error)
}

type PackageStore interface {
	GetPackage(
		ctx context.Context,
		packageID uint,
	) (*models.SessionPackage, error)

	// ListActivePurchases returns the user's non-expired purchases of the
	// package, most recent purchase first.
	ListActivePurchases(
		ctx context.Context,
		userID uint,
		packageID uint,
		now time.Time,
	) ([]models.PackagePurchase, error)

	UpdatePurchase(
		ctx context.Context,
		p *models.PackagePurchase,
	) error
}

// TxStores exposes transaction-scoped stores inside a unit of work.
// The outbox appender is only reachable here, which keeps event writes
// inside the ambient transaction.
type TxStores interface {
	Bookings() Repository
	Packages() PackageStore
	Outbox() outbox.Appender
}

// UnitOfWork runs fn atomically: every store write made through tx is
// committed together or not at all.
type UnitOfWork interface {
	InTx(ctx context.Context, fn func(tx TxStores) error) error
}

package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	"github.com/CoachLinkServices/coach-scheduler/internal/outbox"
)

// GormUnitOfWork maps the domain's unit of work onto gorm's Transaction:
// fn returning an error rolls everything back and the error propagates
// unchanged to the caller.
type GormUnitOfWork struct {
	db *gorm.DB
}

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) InTx(
	ctx context.Context,
	fn func(tx domain.TxStores) error,
) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(gormTxStores{tx: tx})
	})
}

type gormTxStores struct {
	tx *gorm.DB
}

func (s gormTxStores) Bookings() domain.Repository {
	return NewBookingGormRepository(s.tx)
}

func (s gormTxStores) Packages() domain.PackageStore {
	return NewPackageGormStore(s.tx)
}

func (s gormTxStores) Outbox() outbox.Appender {
	return NewOutboxGormStore(s.tx)
}

// Compile-time check
var _ domain.UnitOfWork = (*GormUnitOfWork)(nil)

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListForPeriod(
	ctx context.Context,
	coachID uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("booking_date", "start_time", "end_time", "status").
		Where(
			"coach_id = ? AND status <> 'cancelled' AND booking_date >= ? AND booking_date <= ?",
			coachID, from, to,
		).
		Order("booking_date ASC, start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListForPeriodDetailed(
	ctx context.Context,
	coachID uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Sport").
		Where(
			"coach_id = ? AND booking_date >= ? AND booking_date <= ?",
			coachID, from, to,
		).
		Order("booking_date ASC, start_time ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) HasOverlap(
	ctx context.Context,
	coachID uint,
	date time.Time,
	start string,
	end string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"coach_id = ? AND booking_date = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
			coachID, date, end, start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Booking (write)
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

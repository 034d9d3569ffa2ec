package booking

import (
	"context"
	"time"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	"github.com/CoachLinkServices/coach-scheduler/internal/dto"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
	"github.com/CoachLinkServices/coach-scheduler/internal/timeutil"
)

type ListByDate struct {
	bookings domain.Repository
}

func NewListByDate(bookings domain.Repository) *ListByDate {
	return &ListByDate{bookings: bookings}
}

func (uc *ListByDate) Execute(
	ctx context.Context,
	coachID uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.bookings.ListForPeriodDetailed(ctx, coachID, date, date)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}

func toListDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			BookingDate: b.BookingDate.Format(timeutil.LayoutDate),
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Status:      b.Status,
			TotalPrice:  b.TotalPrice,
			UserName:    b.User.Name,
			SportName:   b.Sport.Name,
		})
	}
	return out
}

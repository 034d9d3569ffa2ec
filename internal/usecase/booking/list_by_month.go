package booking

import (
	"context"
	"time"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	"github.com/CoachLinkServices/coach-scheduler/internal/dto"
)

type ListByMonth struct {
	bookings domain.Repository
}

func NewListByMonth(bookings domain.Repository) *ListByMonth {
	return &ListByMonth{bookings: bookings}
}

func (uc *ListByMonth) Execute(
	ctx context.Context,
	coachID uint,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	bookings, err := uc.bookings.ListForPeriodDetailed(ctx, coachID, from, to)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}

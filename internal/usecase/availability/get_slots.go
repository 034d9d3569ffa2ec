package availability

import (
	"context"
	"sort"
	"time"

	bookingdomain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	scheduledomain "github.com/CoachLinkServices/coach-scheduler/internal/domain/schedule"
	"github.com/CoachLinkServices/coach-scheduler/internal/dto"
	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
	"github.com/CoachLinkServices/coach-scheduler/internal/timeutil"
)

const defaultPageSize = 20

type GetSlotsInput struct {
	CoachID   uint
	StartDate time.Time
	EndDate   time.Time
	Page      int
	PageSize  int
}

type GetSlotsOutput struct {
	Slots        []dto.Slot
	TotalRecords int
	TotalPages   int
}

// GetSlots projects a coach's weekly availability template onto concrete
// calendar dates and marks each slot booked or available. Read-only.
type GetSlots struct {
	schedules scheduledomain.Repository
	bookings  bookingdomain.Repository
}

func NewGetSlots(
	schedules scheduledomain.Repository,
	bookings bookingdomain.Repository,
) *GetSlots {
	return &GetSlots{
		schedules: schedules,
		bookings:  bookings,
	}
}

func (uc *GetSlots) Execute(
	ctx context.Context,
	in GetSlotsInput,
) (*GetSlotsOutput, error) {

	if in.EndDate.Before(in.StartDate) {
		return nil, httperr.ErrBadRequest("invalid_date_range", "End date is before start date")
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	windows, err := uc.schedules.GetByCoach(ctx, in.CoachID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int][]models.WeeklySchedule)
	for _, w := range windows {
		byDay[w.DayOfWeek] = append(byDay[w.DayOfWeek], w)
	}
	for dow := range byDay {
		rows := byDay[dow]
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].StartTime < rows[j].StartTime
		})
	}

	bookings, err := uc.bookings.ListForPeriod(ctx, in.CoachID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]models.Booking)
	for _, b := range bookings {
		key := b.BookingDate.Format(timeutil.LayoutDate)
		byDate[key] = append(byDate[key], b)
	}

	// Non-nil so empty results serialize as [] rather than null.
	slots := []dto.Slot{}
	for d := in.StartDate; !d.After(in.EndDate); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(timeutil.LayoutDate)
		dayBookings := byDate[dateStr]

		for _, w := range byDay[timeutil.DayOfWeekOf(d)] {
			status := dto.SlotAvailable
			for _, b := range dayBookings {
				if timeutil.Overlaps(b.StartTime, b.EndTime, w.StartTime, w.EndTime) {
					status = dto.SlotBooked
					break
				}
			}

			slots = append(slots, dto.Slot{
				Date:   dateStr,
				Start:  w.StartTime,
				End:    w.EndTime,
				Status: status,
			})
		}
	}

	total := len(slots)
	totalPages := (total + pageSize - 1) / pageSize

	offset := (page - 1) * pageSize
	if offset > total {
		offset = total
	}
	limit := offset + pageSize
	if limit > total {
		limit = total
	}

	return &GetSlotsOutput{
		Slots:        slots[offset:limit],
		TotalRecords: total,
		TotalPages:   totalPages,
	}, nil
}

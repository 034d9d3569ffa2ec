package handlers

import (
	"time"

	"github.com/CoachLinkServices/coach-scheduler/internal/timeutil"
)

// All times in this API are naive wall-clock values: dates are
// "2006-01-02", times are zero-padded "15:04". Parsing happens here at
// the boundary; the usecases only ever see parsed dates and HH:MM strings.

func parseDate(dateStr string) (time.Time, error) {
	return timeutil.ParseDate(dateStr)
}

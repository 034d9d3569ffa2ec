package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayOfWeekOf(t *testing.T) {
	// 2026-08-24 is a Monday.
	assert.Equal(t, 1, DayOfWeekOf(date(2026, time.August, 24)))
	assert.Equal(t, 2, DayOfWeekOf(date(2026, time.August, 25)))
	assert.Equal(t, 6, DayOfWeekOf(date(2026, time.August, 29)))

	// Go encodes Sunday as 0; here it must be 7.
	sunday := date(2026, time.August, 30)
	assert.Equal(t, time.Sunday, sunday.Weekday())
	assert.Equal(t, 7, DayOfWeekOf(sunday))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"disjoint", "09:00", "10:00", "11:00", "12:00", false},
		{"touching edges do not overlap", "09:00", "10:00", "10:00", "11:00", false},
		{"partial", "09:00", "10:30", "10:00", "11:00", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// symmetry
			assert.Equal(t, got, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("09:00", "17:00", "10:00", "11:00"))
	assert.True(t, Contains("09:00", "17:00", "09:00", "17:00"))
	assert.False(t, Contains("09:00", "17:00", "08:30", "09:30"))
	assert.False(t, Contains("09:00", "17:00", "16:30", "17:30"))
}

func TestDurationHours(t *testing.T) {
	assert.Equal(t, 1.0, DurationHours("10:00", "11:00"))
	assert.Equal(t, 1.5, DurationHours("10:00", "11:30"))
	assert.Equal(t, 0.25, DurationHours("10:00", "10:15"))
}

func TestValidHM(t *testing.T) {
	assert.True(t, ValidHM("09:00"))
	assert.True(t, ValidHM("23:59"))
	assert.False(t, ValidHM("24:00"))
	assert.False(t, ValidHM("9am"))
	assert.False(t, ValidHM(""))
}

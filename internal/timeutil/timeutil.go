package timeutil

import "time"

const (
	LayoutDate = "2006-01-02"
	LayoutHM   = "15:04"
)

// DayOfWeekOf maps a calendar date to the ISO weekday convention used by
// weekly schedules: Monday=1 .. Saturday=6, Sunday=7. Go's time package
// encodes Sunday as 0; this is the single place that difference is resolved.
func DayOfWeekOf(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func ValidHM(hm string) bool {
	_, err := time.Parse(LayoutHM, hm)
	return err == nil
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(LayoutDate, s)
}

// MinutesOf converts a zero-padded "15:04" value to minutes since midnight.
// Callers validate with ValidHM first; invalid input maps to 0.
func MinutesOf(hm string) int {
	t, err := time.Parse(LayoutHM, hm)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// DurationHours returns end-start as fractional hours.
func DurationHours(start, end string) float64 {
	return float64(MinutesOf(end)-MinutesOf(start)) / 60.0
}

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Zero-padded "15:04" strings compare
// lexicographically the same as temporally, so plain string comparison
// is the whole test.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// Contains reports whether [innerStart,innerEnd) lies within [outerStart,outerEnd).
func Contains(outerStart, outerEnd, innerStart, innerEnd string) bool {
	return innerStart >= outerStart && innerEnd <= outerEnd
}

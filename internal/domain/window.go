package domain

import "time"

// StartOfWeek returns the most recent Monday 00:00:00 in loc.
func StartOfWeek(now time.Time, loc *time.Location) time.Time {
	t := now.In(loc)
	back := (int(t.Weekday()) + 6) % 7 // Monday=0
	return time.Date(t.Year(), t.Month(), t.Day()-back, 0, 0, 0, 0, loc)
}

// StartOfMonth returns the 1st of the current month 00:00:00 in loc.
func StartOfMonth(now time.Time, loc *time.Location) time.Time {
	t := now.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

// DayBounds returns the inclusive bounds of the calendar day containing now
// in loc.
func DayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	t := now.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

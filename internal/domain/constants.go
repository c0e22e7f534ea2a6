package domain

import "time"

// Time format constants
const (
	TimeFormat      = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	MonthYearFormat = "01-2006"    // MM-YYYY, месяц в URL ростера и бронирований
)

// Activity validation constants
const (
	MinActivityDurationMinutes = 1
	MaxActivityDurationMinutes = 23*60 + 59
	MaxActivityNameLength      = 255
	MaxActivityDescription     = 2000
)

// Scheduling defaults
const (
	DefaultTimezone  = "Australia/Melbourne"
	DefaultWeekStart = time.Monday
)

// DateOnly drops the time-of-day part of t, keeping its location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar date
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ParseMonthYear parses "MM-YYYY" and returns the first day of that month in loc
func ParseMonthYear(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(MonthYearFormat, s, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc), nil
}

// MonthBounds returns the first and the last day of the month containing t
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Window is the range of dates on which working times may be created or edited:
// the full calendar weeks covering next month. Today and earlier dates are never
// inside the window, even when the first week of next month has already begun.
type Window struct {
	Start time.Time // first day of the week containing the 1st of next month
	End   time.Time // last day of the week containing the last day of next month
	Today time.Time
}

// NextMonthWindow computes the scheduling window for the date of now
func NextMonthWindow(now time.Time, weekStart time.Weekday) Window {
	today := domain.DateOnly(now)
	firstOfNext := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, today.Location())
	lastOfNext := firstOfNext.AddDate(0, 1, -1)

	return Window{
		Start: StartOfWeek(firstOfNext, weekStart),
		End:   EndOfWeek(lastOfNext, weekStart),
		Today: today,
	}
}

// Contains reports whether date lies in the window and is strictly after today
func (w Window) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, w.Today.Location())
	if !d.After(w.Today) {
		return false
	}
	return !d.Before(w.Start) && !d.After(w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("%s..%s", w.Start.Format(domain.DateFormat), w.End.Format(domain.DateFormat))
}

// Calendar holds the location and week start used to compute scheduling windows
type Calendar struct {
	Location  *time.Location
	WeekStart time.Weekday
}

// Window returns the scheduling window for the calendar date of now in c.Location
func (c Calendar) Window(now time.Time) Window {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return NextMonthWindow(now.In(loc), c.WeekStart)
}

// StartOfWeek returns the weekStart day on or before date
func StartOfWeek(date time.Time, weekStart time.Weekday) time.Time {
	d := domain.DateOnly(date)
	offset := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// EndOfWeek returns the last day of the week (the day before the next weekStart)
// on or after date
func EndOfWeek(date time.Time, weekStart time.Weekday) time.Time {
	return StartOfWeek(date, weekStart).AddDate(0, 0, 6)
}

// ParseWeekday parses a weekday name such as "monday" or "Sun"
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

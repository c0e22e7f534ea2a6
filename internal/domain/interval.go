package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ErrInvalidInterval is returned when an interval is empty or inverted
var ErrInvalidInterval = errors.New("domain: interval start must be before end")

// TimeInterval is a half-open time-of-day range [Start, End).
// Valid intervals satisfy Start < End; both ends lie within 00:00-23:59.
type TimeInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeInterval builds an interval and checks Start < End
func NewTimeInterval(start, end types.TimeString) (TimeInterval, error) {
	i := TimeInterval{Start: start, End: end}
	if err := i.Validate(); err != nil {
		return TimeInterval{}, err
	}
	return i, nil
}

// Validate checks that both ends are well-formed and Start < End
func (i TimeInterval) Validate() error {
	if err := i.Start.Validate(); err != nil {
		return err
	}
	if err := i.End.Validate(); err != nil {
		return err
	}
	if !i.Start.IsBefore(i.End) {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, i)
	}
	return nil
}

// Overlaps reports whether the intervals share at least one minute.
// Touching endpoints do not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// Contains reports whether inner lies entirely within i
func (i TimeInterval) Contains(inner TimeInterval) bool {
	return !inner.Start.IsBefore(i.Start) && !inner.End.IsAfter(i.End)
}

// DurationMinutes returns the interval length in minutes
func (i TimeInterval) DurationMinutes() int {
	return i.End.Minutes() - i.Start.Minutes()
}

func (i TimeInterval) String() string {
	return fmt.Sprintf("%s-%s", i.Start, i.End)
}

// GapBetween returns the interval strictly between two time-ordered,
// non-overlapping intervals. ok is false when they touch or overlap.
func GapBetween(a, b TimeInterval) (gap TimeInterval, ok bool) {
	if !a.End.IsBefore(b.Start) {
		return TimeInterval{}, false
	}
	return TimeInterval{Start: a.End, End: b.Start}, true
}

package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// History is the bookings split around a reference instant
type History struct {
	Past   []*domain.Booking
	Future []*domain.Booking
}

// PartitionHistory splits bookings into past and future relative to now.
// A booking starting exactly at now counts as past. Both parts are ordered by
// date and start time; equal starts keep their input order.
// Dates are interpreted in now's location.
func PartitionHistory(bookings []*domain.Booking, now time.Time) History {
	sorted := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil {
			sorted = append(sorted, b)
		}
	}

	loc := now.Location()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartsAt(loc).Before(sorted[j].StartsAt(loc))
	})

	history := History{
		Past:   make([]*domain.Booking, 0, len(sorted)),
		Future: make([]*domain.Booking, 0),
	}

	for _, b := range sorted {
		if b.StartsAt(loc).After(now) {
			history.Future = append(history.Future, b)
		} else {
			history.Past = append(history.Past, b)
		}
	}

	return history
}

package scheduling

import (
	"sort"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// FreeSlots returns the parts of workingTime not covered by bookings.
//
// Bookings are walked in start order with a cursor starting at workingTime.Start;
// every positive gap before a booking is emitted, the cursor then moves past the
// booking. Bookings not fully inside workingTime are ignored. The result is
// chronological, non-overlapping, and empty iff the working time is fully booked.
func FreeSlots(workingTime domain.TimeInterval, bookings []domain.TimeInterval) []domain.TimeInterval {
	sorted := make([]domain.TimeInterval, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.IsBefore(sorted[j].Start)
	})

	slots := make([]domain.TimeInterval, 0, len(sorted)+1)
	cursor := workingTime.Start

	for _, booking := range sorted {
		if !workingTime.Contains(booking) {
			continue
		}

		if booking.Start.IsAfter(cursor) {
			slots = append(slots, domain.TimeInterval{Start: cursor, End: booking.Start})
		}

		if booking.End.IsAfter(cursor) {
			cursor = booking.End
		}
	}

	if cursor.IsBefore(workingTime.End) {
		slots = append(slots, domain.TimeInterval{Start: cursor, End: workingTime.End})
	}

	return slots
}

// ComputeFreeSlots computes free slots of an employee's working time.
// Bookings of other employees or other dates are skipped.
func ComputeFreeSlots(workingTime *domain.WorkingTime, bookings []*domain.Booking) []domain.TimeInterval {
	if workingTime == nil {
		return []domain.TimeInterval{}
	}

	intervals := make([]domain.TimeInterval, 0, len(bookings))
	for _, b := range employeeBookingsOn(bookings, workingTime.EmployeeID, workingTime.Date) {
		intervals = append(intervals, b.Interval())
	}

	return FreeSlots(workingTime.Interval(), intervals)
}

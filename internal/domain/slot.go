package domain

import "time"

// EmployeeDay is the availability picture of one employee on one date
type EmployeeDay struct {
	EmployeeID  int64
	Date        time.Time
	WorkingTime *WorkingTime   // nil if the employee does not work that day
	FreeSlots   []TimeInterval // chronological, non-overlapping
}

// IsWorking returns true if the employee has a working time that day
func (d *EmployeeDay) IsWorking() bool {
	return d.WorkingTime != nil
}

// IsFullyBooked returns true if the employee works but has no free slots left
func (d *EmployeeDay) IsFullyBooked() bool {
	return d.IsWorking() && len(d.FreeSlots) == 0
}

// FreeMinutes returns the total length of all free slots
func (d *EmployeeDay) FreeMinutes() int {
	total := 0
	for _, slot := range d.FreeSlots {
		total += slot.DurationMinutes()
	}
	return total
}

// Fits reports whether an activity of the given length fits into some free slot
func (d *EmployeeDay) Fits(durationMinutes int) bool {
	for _, slot := range d.FreeSlots {
		if slot.DurationMinutes() >= durationMinutes {
			return true
		}
	}
	return false
}

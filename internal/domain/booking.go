package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Booking represents a scheduled activity of a customer.
// EmployeeID is nil until an administrator assigns an employee.
type Booking struct {
	ID         int64
	CustomerID int64
	EmployeeID *int64
	ActivityID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString // always StartTime + activity duration

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the time-of-day range occupied by the booking
func (b *Booking) Interval() TimeInterval {
	return TimeInterval{Start: b.StartTime, End: b.EndTime}
}

// IsAssigned returns true if an employee is assigned to the booking
func (b *Booking) IsAssigned() bool {
	return b.EmployeeID != nil
}

// IsAssignedTo returns true if the booking is assigned to the given employee
func (b *Booking) IsAssignedTo(employeeID int64) bool {
	return b.EmployeeID != nil && *b.EmployeeID == employeeID
}

// StartsAt returns the absolute start instant of the booking in loc
func (b *Booking) StartsAt(loc *time.Location) time.Time {
	return b.StartTime.On(b.Date, loc)
}

// DurationMinutes returns the booking length in minutes
func (b *Booking) DurationMinutes() int {
	return b.Interval().DurationMinutes()
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	CustomerID *int64
	EmployeeID *int64
	StartDate  *time.Time // включительно
	EndDate    *time.Time // включительно
}

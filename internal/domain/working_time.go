package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// WorkingTime is an employee's single availability window on one calendar date
type WorkingTime struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the working window as a time-of-day range
func (w *WorkingTime) Interval() TimeInterval {
	return TimeInterval{Start: w.StartTime, End: w.EndTime}
}

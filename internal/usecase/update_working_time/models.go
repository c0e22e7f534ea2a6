package update_working_time

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на изменение рабочего времени
type Request struct {
	WorkingTimeID int64
	EmployeeID    int64
	Date          string // YYYY-MM-DD
	StartTime     string // HH:MM
	EndTime       string // HH:MM
}

// Response модель изменённого рабочего времени
type Response struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Бронирования, с которых снят сотрудник: они больше не помещаются в рабочее время
	// и требуют повторного назначения
	Unassigned []UnassignedBooking
}

// UnassignedBooking бронирование, потерявшее сотрудника
type UnassignedBooking struct {
	ID         int64
	CustomerID int64
	ActivityID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
}

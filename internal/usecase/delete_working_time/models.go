package delete_working_time

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на удаление рабочего времени
type Request struct {
	WorkingTimeID int64
}

// Response удалённое рабочее время и бронирования, с которых снят сотрудник
type Response struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
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

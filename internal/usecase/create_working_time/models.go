package create_working_time

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание рабочего времени
type Request struct {
	EmployeeID int64
	Date       string // YYYY-MM-DD
	StartTime  string // HH:MM
	EndTime    string // HH:MM
}

// Response модель созданного рабочего времени
type Response struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

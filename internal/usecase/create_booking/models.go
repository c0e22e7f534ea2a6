package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Дата и время передаются строками: их разбор входит в проверку бронирования.
type Request struct {
	CustomerID int64  // ID клиента
	EmployeeID *int64 // ID сотрудника (nil для бронирования клиентом)
	ActivityID int64  // ID услуги
	Date       string // YYYY-MM-DD
	StartTime  string // HH:MM
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	CustomerID int64
	EmployeeID *int64
	ActivityID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString // StartTime + длительность услуги

	CreatedAt time.Time
	UpdatedAt time.Time
}

package get_free_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса свободных слотов сотрудника
type Request struct {
	EmployeeID int64
	Date       string // YYYY-MM-DD
	ActivityID *int64 // если указан, остаются только слоты, в которые помещается услуга
}

// Response модель ответа со свободными слотами
type Response struct {
	EmployeeID  int64
	Date        time.Time
	WorkingTime *domain.TimeInterval  // nil, если сотрудник в этот день не работает
	FreeSlots   []domain.TimeInterval // в хронологическом порядке
	FreeMinutes int
}

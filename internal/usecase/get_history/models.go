package get_history

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса истории бронирований
type Request struct {
	CustomerID *int64 // nil - все бронирования
}

// Response бронирования до и после текущего момента.
// Бронирование, начинающееся ровно сейчас, относится к прошедшим.
type Response struct {
	Now    time.Time
	Past   []*domain.Booking // по возрастанию даты и времени начала
	Future []*domain.Booking // по возрастанию даты и времени начала
}

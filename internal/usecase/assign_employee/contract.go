package assign_employee

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]*domain.Booking, error)
	AssignEmployee(ctx context.Context, bookingID, employeeID int64) error
}

// WorkingTimeRepository интерфейс репозитория рабочего времени
type WorkingTimeRepository interface {
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]*domain.WorkingTime, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder доменные метрики
type MetricsRecorder interface {
	RecordRejection(operation, kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

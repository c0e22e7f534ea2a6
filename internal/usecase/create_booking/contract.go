package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]*domain.Booking, error)
	GetByCustomerAndDate(ctx context.Context, customerID int64, date time.Time) ([]*domain.Booking, error)
}

// WorkingTimeRepository интерфейс репозитория рабочего времени
type WorkingTimeRepository interface {
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]*domain.WorkingTime, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
}

// ActivityRepository интерфейс репозитория услуг
type ActivityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder доменные метрики
type MetricsRecorder interface {
	RecordRejection(operation, kind string)
	RecordBookingCreated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

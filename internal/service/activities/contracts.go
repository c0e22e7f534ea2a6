package activities

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ActivityRepository интерфейс репозитория услуг
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

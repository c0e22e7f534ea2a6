package activities

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/activities/models"
)

type ActivityService interface {
	List(ctx context.Context) (*models.ActivityListResponse, error)
	Create(ctx context.Context, req *models.ActivityRequest) (*models.ActivityResponse, error)
	Update(ctx context.Context, id int64, req *models.ActivityRequest) (*models.ActivityResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

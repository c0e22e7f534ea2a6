package employees

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/employees/models"
)

type EmployeeService interface {
	List(ctx context.Context) (*models.EmployeeListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.EmployeeResponse, error)
	Create(ctx context.Context, req *models.EmployeeRequest) (*models.EmployeeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

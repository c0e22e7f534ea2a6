package create_working_time

import (
	"context"

	createWorkingTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_working_time"
)

type CreateWorkingTimeUseCase interface {
	Execute(ctx context.Context, req *createWorkingTime.Request) (*createWorkingTime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

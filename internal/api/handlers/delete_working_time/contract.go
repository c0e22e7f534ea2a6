package delete_working_time

import (
	"context"

	deleteWorkingTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/delete_working_time"
)

type DeleteWorkingTimeUseCase interface {
	Execute(ctx context.Context, req *deleteWorkingTime.Request) (*deleteWorkingTime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_working_time

import (
	"context"

	updateWorkingTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_working_time"
)

type UpdateWorkingTimeUseCase interface {
	Execute(ctx context.Context, req *updateWorkingTime.Request) (*updateWorkingTime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_history

import (
	"context"

	getHistory "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_history"
)

type GetHistoryUseCase interface {
	Execute(ctx context.Context, req *getHistory.Request) (*getHistory.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_roster

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/roster/models"
)

type RosterService interface {
	ListByMonth(ctx context.Context, monthYear string) (*models.RosterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

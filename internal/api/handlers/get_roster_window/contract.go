package get_roster_window

import "github.com/m04kA/SMC-AppointmentService/internal/service/roster/models"

type RosterService interface {
	Window() *models.WindowResponse
}

package get_roster_window

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

type Handler struct {
	service RosterService
}

func NewHandler(service RosterService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/admin/roster-window
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Window())
}

package get_roster

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/roster"
)

const (
	msgInvalidMonth = "некорректный месяц, ожидается MM-YYYY"
)

type Handler struct {
	service RosterService
	logger  Logger
}

func NewHandler(service RosterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/roster/{monthYear}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	monthYear := mux.Vars(r)["monthYear"]

	result, err := h.service.ListByMonth(r.Context(), monthYear)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrInvalidInput):
			h.logger.Warn("GET /admin/roster/{monthYear} - Invalid month: %s", monthYear)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /admin/roster/{monthYear} - Failed to get roster: month=%s, error=%v", monthYear, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/roster/{monthYear} - Roster retrieved successfully: month=%s, count=%d",
		monthYear, len(result.WorkingTimes))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_month_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
)

const (
	msgInvalidMonth = "некорректный месяц, ожидается MM-YYYY"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/{monthYear}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	monthYear := mux.Vars(r)["monthYear"]

	result, err := h.service.ListByMonth(r.Context(), monthYear)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings/{monthYear} - Invalid month: %s", monthYear)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /admin/bookings/{monthYear} - Failed to get bookings: month=%s, error=%v",
				monthYear, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/{monthYear} - Bookings retrieved successfully: month=%s, count=%d",
		monthYear, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
	getHistory "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_history"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
)

type Handler struct {
	useCase GetHistoryUseCase
	logger  Logger
}

func NewHandler(useCase GetHistoryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/history
// Query params: customerId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getHistory.Request{}

	if raw := r.URL.Query().Get("customerId"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/history - Invalid customer ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidCustomerID)
			return
		}
		req.CustomerID = &customerID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getHistory.ErrInvalidInput):
			h.logger.Warn("GET /admin/history - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomerID)

		default:
			h.logger.Error("GET /admin/history - Failed to get history: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/history - History retrieved successfully: past=%d, future=%d",
		len(result.Past), len(result.Future))
	handlers.RespondJSON(w, http.StatusOK, &models.HistoryResponse{
		Now:    result.Now,
		Past:   models.FromDomainBookings(result.Past),
		Future: models.FromDomainBookings(result.Future),
	})
}

package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getFreeSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_free_slots"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgInvalidActivityID = "некорректный ID услуги"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgEmployeeNotFound  = "сотрудник не найден"
	msgActivityNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/free-slots
// Query params: date (required, YYYY-MM-DD), activityId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, err := handlers.ParseIDVar(r, "employeeId")
	if err != nil {
		h.logger.Warn("GET /employees/{id}/free-slots - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /employees/{id}/free-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq := &getFreeSlots.Request{
		EmployeeID: employeeID,
		Date:       date,
	}

	// Извлекаем activityId из query параметров (опционально)
	if raw := r.URL.Query().Get("activityId"); raw != "" {
		activityID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || activityID <= 0 {
			h.logger.Warn("GET /employees/{id}/free-slots - Invalid activity ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidActivityID)
			return
		}
		useCaseReq.ActivityID = &activityID
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrInvalidDate):
			h.logger.Warn("GET /employees/{id}/free-slots - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /employees/{id}/free-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmployeeID)

		case errors.Is(err, getFreeSlots.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/{id}/free-slots - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, getFreeSlots.ErrActivityNotFound):
			h.logger.Warn("GET /employees/{id}/free-slots - Activity not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		default:
			h.logger.Error("GET /employees/{id}/free-slots - Failed to get slots: employee_id=%d, error=%v",
				employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/{id}/free-slots - Slots retrieved successfully: employee_id=%d, date=%s, slots_count=%d",
		employeeID, date, len(result.FreeSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package assign_employee

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	assignEmployee "github.com/m04kA/SMC-AppointmentService/internal/usecase/assign_employee"
)

const (
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingIDs  = "список бронирований пуст или содержит некорректные ID"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgBookingNotFound    = "бронирование не найдено"
	msgSlotNotAvailable   = "сотрудник уже занят в это время"
)

type Handler struct {
	useCase AssignEmployeeUseCase
	logger  Logger
}

func NewHandler(useCase AssignEmployeeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/employees/{employeeId}/assign
// Назначает сотрудника на все бронирования из списка или ни на одно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, err := handlers.ParseIDVar(r, "employeeId")
	if err != nil {
		h.logger.Warn("POST /admin/employees/{id}/assign - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	var req AssignRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/employees/{id}/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignEmployee.Request{
		EmployeeID: employeeID,
		BookingIDs: req.BookingIDs,
	})
	if err != nil {
		if rejection, ok := scheduling.AsRejection(err); ok {
			h.logger.Warn("POST /admin/employees/{id}/assign - Rejected: employee_id=%d, %v", employeeID, rejection)
			handlers.RespondRejection(w, rejection)
			return
		}

		switch {
		case errors.Is(err, assignEmployee.ErrInvalidInput):
			h.logger.Warn("POST /admin/employees/{id}/assign - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingIDs)

		case errors.Is(err, assignEmployee.ErrEmployeeNotFound):
			h.logger.Warn("POST /admin/employees/{id}/assign - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, assignEmployee.ErrBookingNotFound):
			h.logger.Warn("POST /admin/employees/{id}/assign - Booking not found: %v", err)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, assignEmployee.ErrSlotNotAvailable):
			h.logger.Warn("POST /admin/employees/{id}/assign - Slot not available: employee_id=%d", employeeID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /admin/employees/{id}/assign - Failed to assign: employee_id=%d, error=%v",
				employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/employees/{id}/assign - Employee assigned successfully: employee_id=%d, count=%d",
		employeeID, len(result.BookingIDs))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

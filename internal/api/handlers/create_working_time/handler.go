package create_working_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	createWorkingTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_working_time"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "не заполнены обязательные поля рабочего времени"
	msgDuplicateWorkingTime = "у сотрудника уже есть рабочее время на эту дату"
)

type Handler struct {
	useCase CreateWorkingTimeUseCase
	logger  Logger
}

func NewHandler(useCase CreateWorkingTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/roster
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req WorkingTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/roster - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if rejection, ok := scheduling.AsRejection(err); ok {
			h.logger.Warn("POST /admin/roster - Working time rejected: employee_id=%d, %v", req.EmployeeID, rejection)
			handlers.RespondRejection(w, rejection)
			return
		}

		switch {
		case errors.Is(err, createWorkingTime.ErrInvalidInput):
			h.logger.Warn("POST /admin/roster - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createWorkingTime.ErrDuplicateWorkingTime):
			h.logger.Warn("POST /admin/roster - Duplicate working time: employee_id=%d, date=%s", req.EmployeeID, req.Date)
			handlers.RespondConflict(w, msgDuplicateWorkingTime)

		default:
			h.logger.Error("POST /admin/roster - Failed to create working time: employee_id=%d, error=%v",
				req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/roster - Working time created successfully: id=%d, employee_id=%d, date=%s",
		result.ID, result.EmployeeID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package update_working_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	updateWorkingTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_working_time"
)

const (
	msgInvalidWorkingTimeID = "некорректный ID рабочего времени"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "не заполнены обязательные поля рабочего времени"
	msgNotFound             = "рабочее время не найдено"
	msgDuplicateWorkingTime = "у сотрудника уже есть рабочее время на эту дату"
)

type Handler struct {
	useCase UpdateWorkingTimeUseCase
	logger  Logger
}

func NewHandler(useCase UpdateWorkingTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/roster/{workingTimeId}
// В ответе перечислены бронирования, с которых снят сотрудник
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workingTimeID, err := handlers.ParseIDVar(r, "workingTimeId")
	if err != nil {
		h.logger.Warn("PUT /admin/roster/{id} - Invalid working time ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkingTimeID)
		return
	}

	var req WorkingTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/roster/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(workingTimeID))
	if err != nil {
		if rejection, ok := scheduling.AsRejection(err); ok {
			h.logger.Warn("PUT /admin/roster/{id} - Working time rejected: id=%d, %v", workingTimeID, rejection)
			handlers.RespondRejection(w, rejection)
			return
		}

		switch {
		case errors.Is(err, updateWorkingTime.ErrInvalidInput):
			h.logger.Warn("PUT /admin/roster/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateWorkingTime.ErrWorkingTimeNotFound):
			h.logger.Warn("PUT /admin/roster/{id} - Working time not found: id=%d", workingTimeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateWorkingTime.ErrDuplicateWorkingTime):
			h.logger.Warn("PUT /admin/roster/{id} - Duplicate working time: id=%d", workingTimeID)
			handlers.RespondConflict(w, msgDuplicateWorkingTime)

		default:
			h.logger.Error("PUT /admin/roster/{id} - Failed to update working time: id=%d, error=%v",
				workingTimeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/roster/{id} - Working time updated successfully: id=%d, unassigned=%d",
		workingTimeID, len(result.Unassigned))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

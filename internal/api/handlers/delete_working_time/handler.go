package delete_working_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	deleteWorkingTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/delete_working_time"
)

const (
	msgInvalidWorkingTimeID = "некорректный ID рабочего времени"
	msgNotFound             = "рабочее время не найдено"
)

type Handler struct {
	useCase DeleteWorkingTimeUseCase
	logger  Logger
}

func NewHandler(useCase DeleteWorkingTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/roster/{workingTimeId}
// В ответе перечислены бронирования, с которых снят сотрудник
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workingTimeID, err := handlers.ParseIDVar(r, "workingTimeId")
	if err != nil {
		h.logger.Warn("DELETE /admin/roster/{id} - Invalid working time ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkingTimeID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &deleteWorkingTime.Request{WorkingTimeID: workingTimeID})
	if err != nil {
		if rejection, ok := scheduling.AsRejection(err); ok {
			h.logger.Warn("DELETE /admin/roster/{id} - Deletion rejected: id=%d, %v", workingTimeID, rejection)
			handlers.RespondRejection(w, rejection)
			return
		}

		switch {
		case errors.Is(err, deleteWorkingTime.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/roster/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWorkingTimeID)

		case errors.Is(err, deleteWorkingTime.ErrWorkingTimeNotFound):
			h.logger.Warn("DELETE /admin/roster/{id} - Working time not found: id=%d", workingTimeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/roster/{id} - Failed to delete working time: id=%d, error=%v",
				workingTimeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/roster/{id} - Working time deleted successfully: id=%d, unassigned=%d",
		workingTimeID, len(result.Unassigned))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

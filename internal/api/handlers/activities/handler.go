package activities

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/activities"
	"github.com/m04kA/SMC-AppointmentService/internal/service/activities/models"
)

const (
	msgInvalidActivityID  = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidActivity    = "название обязательно, длительность от 00:01 до 23:59"
	msgNotFound           = "услуга не найдена"
	msgDuplicateName      = "услуга с таким названием уже существует"
	msgActivityInUse      = "на услугу есть бронирования"
)

// Handler обслуживает справочник услуг: список публичный, изменения - для администратора
type Handler struct {
	service ActivityService
	logger  Logger
}

func NewHandler(service ActivityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/activities
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /activities - Failed to list activities: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/admin/activities
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/activities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/activities", err)
		return
	}

	h.logger.Info("POST /admin/activities - Activity created successfully: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/admin/activities/{activityId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	activityID, err := handlers.ParseIDVar(r, "activityId")
	if err != nil {
		h.logger.Warn("PUT /admin/activities/{id} - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	var req models.ActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/activities/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), activityID, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/activities/{id}", err)
		return
	}

	h.logger.Info("PUT /admin/activities/{id} - Activity updated successfully: id=%d", activityID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/admin/activities/{activityId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	activityID, err := handlers.ParseIDVar(r, "activityId")
	if err != nil {
		h.logger.Warn("DELETE /admin/activities/{id} - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	if err := h.service.Delete(r.Context(), activityID); err != nil {
		h.respondError(w, "DELETE /admin/activities/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/activities/{id} - Activity deleted successfully: id=%d", activityID)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, activities.ErrInvalidInput):
		h.logger.Warn("%s - Invalid activity: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidActivity)

	case errors.Is(err, activities.ErrActivityNotFound):
		h.logger.Warn("%s - Activity not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, activities.ErrDuplicateName):
		h.logger.Warn("%s - Duplicate activity name", route)
		handlers.RespondConflict(w, msgDuplicateName)

	case errors.Is(err, activities.ErrActivityInUse):
		h.logger.Warn("%s - Activity in use", route)
		handlers.RespondConflict(w, msgActivityInUse)

	default:
		h.logger.Error("%s - Failed: error=%v", route, err)
		handlers.RespondInternalError(w)
	}
}

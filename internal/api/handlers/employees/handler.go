package employees

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/employees"
	"github.com/m04kA/SMC-AppointmentService/internal/service/employees/models"
)

const (
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEmployee    = "имя сотрудника обязательно, не длиннее 255 символов"
	msgNotFound           = "сотрудник не найден"
)

// Handler обслуживает список сотрудников администратора
type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/employees
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/employees - Failed to list employees: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/admin/employees/{employeeId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, err := handlers.ParseIDVar(r, "employeeId")
	if err != nil {
		h.logger.Warn("GET /admin/employees/{id} - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	result, err := h.service.GetByID(r.Context(), employeeID)
	if err != nil {
		h.respondError(w, "GET /admin/employees/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/admin/employees
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.EmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/employees", err)
		return
	}

	h.logger.Info("POST /admin/employees - Employee created successfully: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, employees.ErrInvalidInput):
		h.logger.Warn("%s - Invalid employee: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidEmployee)

	case errors.Is(err, employees.ErrEmployeeNotFound):
		h.logger.Warn("%s - Employee not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: error=%v", route, err)
		handlers.RespondInternalError(w)
	}
}

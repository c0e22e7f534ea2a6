package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не заполнены обязательные поля бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotNotAvailable   = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleCustomer POST /api/v1/bookings
// Клиент бронирует для себя, сотрудник назначается администратором позже
func (h *Handler) HandleCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CustomerBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.create(w, r, "POST /bookings", req.ToUseCaseRequest(customerID))
}

// HandleAdmin POST /api/v1/admin/bookings
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	var req AdminBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.create(w, r, "POST /admin/bookings", req.ToUseCaseRequest())
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, route string, req *createBooking.Request) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if rejection, ok := scheduling.AsRejection(err); ok {
			h.logger.Warn("%s - Booking rejected: customer_id=%d, %v", route, req.CustomerID, rejection)
			handlers.RespondRejection(w, rejection)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("%s - Slot not available: customer_id=%d", route, req.CustomerID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("%s - Failed to create booking: customer_id=%d, error=%v", route, req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Booking created successfully: booking_id=%d, customer_id=%d",
		route, result.ID, result.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

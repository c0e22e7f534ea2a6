package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

// CustomerBookingRequest HTTP request model (клиент бронирует для себя)
type CustomerBookingRequest struct {
	ActivityID int64  `json:"activityId"`
	Date       string `json:"date"`      // "2026-11-10"
	StartTime  string `json:"startTime"` // "10:00"
}

// AdminBookingRequest HTTP request model (администратор бронирует для клиента)
type AdminBookingRequest struct {
	CustomerID int64  `json:"customerId"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
	ActivityID int64  `json:"activityId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customerId"`
	EmployeeID *int64 `json:"employeeId"`
	ActivityID int64  `json:"activityId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос клиента в модель use case
func (r *CustomerBookingRequest) ToUseCaseRequest(customerID int64) *createBooking.Request {
	return &createBooking.Request{
		CustomerID: customerID,
		ActivityID: r.ActivityID,
		Date:       r.Date,
		StartTime:  r.StartTime,
	}
}

// ToUseCaseRequest конвертирует HTTP запрос администратора в модель use case
func (r *AdminBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CustomerID: r.CustomerID,
		EmployeeID: r.EmployeeID,
		ActivityID: r.ActivityID,
		Date:       r.Date,
		StartTime:  r.StartTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		EmployeeID: resp.EmployeeID,
		ActivityID: resp.ActivityID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}

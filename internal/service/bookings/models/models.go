package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64     `json:"id"`
	CustomerID      int64     `json:"customerId"`
	EmployeeID      *int64    `json:"employeeId"` // null, пока сотрудник не назначен
	ActivityID      int64     `json:"activityId"`
	Date            string    `json:"date"`      // "2026-11-10"
	StartTime       string    `json:"startTime"` // "10:00"
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// HistoryResponse прошедшие и будущие бронирования
type HistoryResponse struct {
	Now    time.Time         `json:"now"`
	Past   []BookingResponse `json:"past"`
	Future []BookingResponse `json:"future"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		EmployeeID:      b.EmployeeID,
		ActivityID:      b.ActivityID,
		Date:            b.Date.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookings конвертирует список domain моделей в DTO, пропуская nil
func FromDomainBookings(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if resp := FromDomainBooking(booking); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	return &BookingListResponse{
		Bookings: FromDomainBookings(bookings),
	}
}

package create_working_time

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createWorkingTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_working_time"
)

// WorkingTimeRequest HTTP request model
type WorkingTimeRequest struct {
	EmployeeID int64  `json:"employeeId"`
	Date       string `json:"date"`      // "2026-11-10"
	StartTime  string `json:"startTime"` // "09:00"
	EndTime    string `json:"endTime"`   // "17:00"
}

// WorkingTimeResponse HTTP response model
type WorkingTimeResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employeeId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *WorkingTimeRequest) ToUseCaseRequest() *createWorkingTime.Request {
	return &createWorkingTime.Request{
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createWorkingTime.Response) *WorkingTimeResponse {
	return &WorkingTimeResponse{
		ID:         resp.ID,
		EmployeeID: resp.EmployeeID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}

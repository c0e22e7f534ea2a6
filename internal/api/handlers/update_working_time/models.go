package update_working_time

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	updateWorkingTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_working_time"
)

// WorkingTimeRequest HTTP request model
type WorkingTimeRequest struct {
	EmployeeID int64  `json:"employeeId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// WorkingTimeResponse HTTP response model
type WorkingTimeResponse struct {
	ID         int64               `json:"id"`
	EmployeeID int64               `json:"employeeId"`
	Date       string              `json:"date"`
	StartTime  string              `json:"startTime"`
	EndTime    string              `json:"endTime"`
	CreatedAt  string              `json:"createdAt"`
	UpdatedAt  string              `json:"updatedAt"`
	Unassigned []UnassignedBooking `json:"unassignedBookings"`
}

// UnassignedBooking бронирование, с которого снят сотрудник
type UnassignedBooking struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customerId"`
	ActivityID int64  `json:"activityId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *WorkingTimeRequest) ToUseCaseRequest(workingTimeID int64) *updateWorkingTime.Request {
	return &updateWorkingTime.Request{
		WorkingTimeID: workingTimeID,
		EmployeeID:    r.EmployeeID,
		Date:          r.Date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateWorkingTime.Response) *WorkingTimeResponse {
	unassigned := make([]UnassignedBooking, len(resp.Unassigned))
	for i, b := range resp.Unassigned {
		unassigned[i] = UnassignedBooking{
			ID:         b.ID,
			CustomerID: b.CustomerID,
			ActivityID: b.ActivityID,
			Date:       b.Date.Format(domain.DateFormat),
			StartTime:  b.StartTime.String(),
			EndTime:    b.EndTime.String(),
		}
	}

	return &WorkingTimeResponse{
		ID:         resp.ID,
		EmployeeID: resp.EmployeeID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
		Unassigned: unassigned,
	}
}

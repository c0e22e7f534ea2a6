package delete_working_time

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	deleteWorkingTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/delete_working_time"
)

// DeletedWorkingTimeResponse HTTP response model
type DeletedWorkingTimeResponse struct {
	ID         int64               `json:"id"`
	EmployeeID int64               `json:"employeeId"`
	Date       string              `json:"date"`
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *deleteWorkingTime.Response) *DeletedWorkingTimeResponse {
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

	return &DeletedWorkingTimeResponse{
		ID:         resp.ID,
		EmployeeID: resp.EmployeeID,
		Date:       resp.Date.Format(domain.DateFormat),
		Unassigned: unassigned,
	}
}

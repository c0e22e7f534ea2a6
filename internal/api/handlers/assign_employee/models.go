package assign_employee

import assignEmployee "github.com/m04kA/SMC-AppointmentService/internal/usecase/assign_employee"

// AssignRequest HTTP request model
type AssignRequest struct {
	BookingIDs []int64 `json:"bookingIds"`
}

// AssignResponse HTTP response model
type AssignResponse struct {
	EmployeeID int64   `json:"employeeId"`
	BookingIDs []int64 `json:"bookingIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignEmployee.Response) *AssignResponse {
	return &AssignResponse{
		EmployeeID: resp.EmployeeID,
		BookingIDs: resp.BookingIDs,
	}
}

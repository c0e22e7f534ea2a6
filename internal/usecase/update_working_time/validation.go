package update_working_time

import "fmt"

// validateRequest проверяет наличие обязательных полей
func validateRequest(req *Request) error {
	if req.WorkingTimeID <= 0 {
		return fmt.Errorf("%w: workingTimeID must be positive", ErrInvalidInput)
	}

	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime == "" || req.EndTime == "" {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	return nil
}

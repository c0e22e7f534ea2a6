package assign_employee

import "fmt"

// validateRequest проверяет входные данные: непустой список без повторов
func validateRequest(req *Request) error {
	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if len(req.BookingIDs) == 0 {
		return fmt.Errorf("%w: bookingIDs must not be empty", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.BookingIDs))
	for _, id := range req.BookingIDs {
		if id <= 0 {
			return fmt.Errorf("%w: bookingID must be positive, got %d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate bookingID %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

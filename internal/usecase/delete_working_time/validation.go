package delete_working_time

import "fmt"

func validateRequest(req *Request) error {
	if req.WorkingTimeID <= 0 {
		return fmt.Errorf("%w: workingTimeID must be positive", ErrInvalidInput)
	}
	return nil
}

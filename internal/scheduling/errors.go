package scheduling

import (
	"errors"
	"fmt"
)

// Rejection kinds. All of them are user-correctable input errors.
var (
	// ErrReferenceNotFound referenced customer, employee or activity does not exist
	ErrReferenceNotFound = errors.New("scheduling: reference not found")

	// ErrMalformedInput a date or time field cannot be parsed
	ErrMalformedInput = errors.New("scheduling: malformed input")

	// ErrInvalidRange working time start is not before its end
	ErrInvalidRange = errors.New("scheduling: start must be before end")

	// ErrInvalidDuration start + activity duration crosses into the next day
	ErrInvalidDuration = errors.New("scheduling: duration does not fit into the day")

	// ErrEmployeeUnavailable employee is not working then or is already booked
	ErrEmployeeUnavailable = errors.New("scheduling: employee is unavailable")

	// ErrCustomerDoubleBooked customer already has an overlapping booking
	ErrCustomerDoubleBooked = errors.New("scheduling: customer already has a booking at that time")

	// ErrOutOfSchedulingWindow roster date is outside of the permitted window
	ErrOutOfSchedulingWindow = errors.New("scheduling: date is outside of the scheduling window")

	// ErrDuplicateWorkingTime employee already has a working time on that date
	ErrDuplicateWorkingTime = errors.New("scheduling: employee already has a working time on that date")
)

// Request fields a rejection can point to
const (
	FieldCustomer  = "customer_id"
	FieldEmployee  = "employee_id"
	FieldActivity  = "activity_id"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldDate      = "date"
	FieldBookings  = "bookings"
)

// kindNames метки видов отказа для логов и метрик
var kindNames = map[error]string{
	ErrReferenceNotFound:     "reference_not_found",
	ErrMalformedInput:        "malformed_input",
	ErrInvalidRange:          "invalid_range",
	ErrInvalidDuration:       "invalid_duration",
	ErrEmployeeUnavailable:   "employee_unavailable",
	ErrCustomerDoubleBooked:  "customer_double_booked",
	ErrOutOfSchedulingWindow: "out_of_scheduling_window",
	ErrDuplicateWorkingTime:  "duplicate_working_time",
}

// RejectionError is a validation failure bound to a request field.
// errors.Is(err, ErrXxx) matches its Kind.
type RejectionError struct {
	Kind   error
	Field  string
	Detail string
}

func (e *RejectionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v [%s]", e.Kind, e.Field)
	}
	return fmt.Sprintf("%v [%s]: %s", e.Kind, e.Field, e.Detail)
}

func (e *RejectionError) Unwrap() error {
	return e.Kind
}

// KindName returns a stable snake_case label of the rejection kind
func (e *RejectionError) KindName() string {
	if name, ok := kindNames[e.Kind]; ok {
		return name
	}
	return "unknown"
}

func reject(kind error, field string, format string, args ...interface{}) *RejectionError {
	return &RejectionError{
		Kind:   kind,
		Field:  field,
		Detail: fmt.Sprintf(format, args...),
	}
}

// AsRejection extracts a RejectionError from an error chain
func AsRejection(err error) (*RejectionError, bool) {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}

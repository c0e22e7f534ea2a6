package scheduling

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BookingInput is a booking request as received from the web layer
type BookingInput struct {
	CustomerID int64
	EmployeeID *int64 // nil for customer-made bookings
	ActivityID int64
	Date       string // YYYY-MM-DD
	StartTime  string // HH:MM
}

// BookingSnapshot is the data the persistence layer fetched for one booking request.
// Nil references mean "not found".
type BookingSnapshot struct {
	Customer *domain.Customer
	Employee *domain.Employee
	Activity *domain.Activity

	// WorkingTime of the requested employee on the requested date, if any
	WorkingTime *domain.WorkingTime

	// EmployeeBookings existing bookings of the requested employee on the date
	EmployeeBookings []*domain.Booking

	// CustomerBookings existing bookings of the customer on the date
	CustomerBookings []*domain.Booking
}

// ValidateBooking checks a booking request against the snapshot and returns the
// resolved booking (with derived end time) ready for persistence.
//
// Checks run in a fixed order and stop at the first failure:
// references, input format, duration, employee availability, customer overlap.
// The snapshot is not modified.
func ValidateBooking(in BookingInput, snap BookingSnapshot) (*domain.Booking, error) {
	// 1. Ссылки
	if snap.Customer == nil {
		return nil, reject(ErrReferenceNotFound, FieldCustomer, "customer id=%d", in.CustomerID)
	}
	if snap.Activity == nil {
		return nil, reject(ErrReferenceNotFound, FieldActivity, "activity id=%d", in.ActivityID)
	}
	if in.EmployeeID != nil && snap.Employee == nil {
		return nil, reject(ErrReferenceNotFound, FieldEmployee, "employee id=%d", *in.EmployeeID)
	}

	// 2. Формат времени и даты
	start, err := types.NewTimeStringFromString(in.StartTime)
	if err != nil {
		return nil, reject(ErrMalformedInput, FieldStartTime, "%v", err)
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, reject(ErrMalformedInput, FieldDate, "%v", err)
	}

	// 3. Время окончания не должно переходить на следующий день
	if snap.Activity.DurationMinutes <= 0 {
		return nil, reject(ErrInvalidDuration, FieldActivity, "activity duration is %d minutes", snap.Activity.DurationMinutes)
	}
	end, err := start.AddMinutes(snap.Activity.DurationMinutes)
	if err != nil {
		return nil, reject(ErrInvalidDuration, FieldActivity, "%s + %d minutes", start, snap.Activity.DurationMinutes)
	}
	interval := domain.TimeInterval{Start: start, End: end}

	// 4. Сотрудник работает и свободен
	if in.EmployeeID != nil {
		if err := CheckEmployeeAvailable(*in.EmployeeID, date, interval, snap.WorkingTime, snap.EmployeeBookings, 0); err != nil {
			return nil, err
		}
	}

	// 5. У клиента нет пересекающегося бронирования
	for _, existing := range bookingsOn(snap.CustomerBookings, date) {
		if existing.CustomerID != in.CustomerID {
			continue
		}
		if existing.Interval().Overlaps(interval) {
			return nil, reject(ErrCustomerDoubleBooked, FieldCustomer,
				"overlaps booking id=%d %s", existing.ID, existing.Interval())
		}
	}

	var employeeID *int64
	if in.EmployeeID != nil {
		id := *in.EmployeeID
		employeeID = &id
	}

	return &domain.Booking{
		CustomerID: in.CustomerID,
		EmployeeID: employeeID,
		ActivityID: in.ActivityID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
	}, nil
}

// CheckEmployeeAvailable checks that interval on date lies inside the employee's
// working time and does not overlap any of the employee's bookings.
// A booking with id excludeBookingID (if non-zero) is skipped.
func CheckEmployeeAvailable(
	employeeID int64,
	date time.Time,
	interval domain.TimeInterval,
	workingTime *domain.WorkingTime,
	bookings []*domain.Booking,
	excludeBookingID int64,
) error {
	if workingTime == nil || workingTime.EmployeeID != employeeID || !domain.SameDate(workingTime.Date, date) {
		return reject(ErrEmployeeUnavailable, FieldEmployee, "employee id=%d is not working on %s",
			employeeID, date.Format(domain.DateFormat))
	}

	if !workingTime.Interval().Contains(interval) {
		return reject(ErrEmployeeUnavailable, FieldEmployee, "%s is outside of working time %s",
			interval, workingTime.Interval())
	}

	for _, existing := range employeeBookingsOn(bookings, employeeID, date) {
		if excludeBookingID != 0 && existing.ID == excludeBookingID {
			continue
		}
		if existing.Interval().Overlaps(interval) {
			return reject(ErrEmployeeUnavailable, FieldEmployee, "%s overlaps booking id=%d %s",
				interval, existing.ID, existing.Interval())
		}
	}

	return nil
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}

func bookingsOn(bookings []*domain.Booking, date time.Time) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil && domain.SameDate(b.Date, date) {
			result = append(result, b)
		}
	}
	return result
}

func employeeBookingsOn(bookings []*domain.Booking, employeeID int64, date time.Time) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookingsOn(bookings, date) {
		if b.IsAssignedTo(employeeID) {
			result = append(result, b)
		}
	}
	return result
}

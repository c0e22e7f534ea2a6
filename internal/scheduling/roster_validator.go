package scheduling

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// RosterInput is a working time create/edit request as received from the web layer
type RosterInput struct {
	EmployeeID int64
	Date       string // YYYY-MM-DD
	StartTime  string // HH:MM
	EndTime    string // HH:MM
}

// RosterSnapshot is the data fetched for one roster request
type RosterSnapshot struct {
	Employee *domain.Employee

	// Existing working times of the employee on the requested date
	Existing []*domain.WorkingTime

	// Previous is the working time being edited; nil when creating
	Previous *domain.WorkingTime

	// PreviousBookings are the bookings assigned to Previous.EmployeeID on Previous.Date
	PreviousBookings []*domain.Booking
}

// RosterDecision is an accepted roster request
type RosterDecision struct {
	WorkingTime *domain.WorkingTime

	// Unassigned bookings no longer covered by the edited working time.
	// They are copies with EmployeeID cleared; the caller must persist the change.
	Unassigned []*domain.Booking
}

// ValidateRoster checks a working time request.
//
// Checks run in order and stop at the first failure: employee exists, times
// parse and start < end, date lies in the scheduling window, no other working
// time of the employee on that date. An edit also requires the date of the
// edited working time to lie in the window. For an edit, every booking of the previous
// employee/date that the new working time no longer contains is reported in
// RosterDecision.Unassigned.
func ValidateRoster(in RosterInput, snap RosterSnapshot, window Window) (*RosterDecision, error) {
	// 1. Сотрудник существует
	if snap.Employee == nil {
		return nil, reject(ErrReferenceNotFound, FieldEmployee, "employee id=%d", in.EmployeeID)
	}

	// 2. Формат и порядок времени
	start, err := types.NewTimeStringFromString(in.StartTime)
	if err != nil {
		return nil, reject(ErrMalformedInput, FieldStartTime, "%v", err)
	}
	end, err := types.NewTimeStringFromString(in.EndTime)
	if err != nil {
		return nil, reject(ErrMalformedInput, FieldEndTime, "%v", err)
	}
	if !start.IsBefore(end) {
		return nil, reject(ErrInvalidRange, FieldStartTime, "%s is not before %s", start, end)
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, reject(ErrMalformedInput, FieldDate, "%v", err)
	}

	// 3. Окно планирования: и новая дата, и дата редактируемой записи
	if !window.Contains(date) {
		return nil, reject(ErrOutOfSchedulingWindow, FieldDate, "%s is outside of %s",
			date.Format(domain.DateFormat), window)
	}
	if snap.Previous != nil && !window.Contains(snap.Previous.Date) {
		return nil, reject(ErrOutOfSchedulingWindow, FieldDate, "working time id=%d on %s is outside of %s",
			snap.Previous.ID, snap.Previous.Date.Format(domain.DateFormat), window)
	}

	// 4. Одно рабочее время на сотрудника в день
	var editingID int64
	if snap.Previous != nil {
		editingID = snap.Previous.ID
	}
	for _, existing := range snap.Existing {
		if existing == nil || existing.ID == editingID {
			continue
		}
		if existing.EmployeeID == in.EmployeeID && domain.SameDate(existing.Date, date) {
			return nil, reject(ErrDuplicateWorkingTime, FieldEmployee, "working time id=%d on %s",
				existing.ID, date.Format(domain.DateFormat))
		}
	}

	workingTime := &domain.WorkingTime{
		ID:         editingID,
		EmployeeID: in.EmployeeID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
	}

	return &RosterDecision{
		WorkingTime: workingTime,
		Unassigned:  uncoveredBookings(snap.Previous, workingTime, snap.PreviousBookings),
	}, nil
}

// ValidateRosterRemoval checks that workingTime may be deleted. Its date must lie
// in the scheduling window. Every booking of the employee on that date loses its
// employee; the returned copies have EmployeeID cleared and the caller must
// persist the change.
func ValidateRosterRemoval(workingTime *domain.WorkingTime, bookings []*domain.Booking, window Window) ([]*domain.Booking, error) {
	if !window.Contains(workingTime.Date) {
		return nil, reject(ErrOutOfSchedulingWindow, FieldDate, "working time id=%d on %s is outside of %s",
			workingTime.ID, workingTime.Date.Format(domain.DateFormat), window)
	}

	unassigned := make([]*domain.Booking, 0)
	for _, b := range employeeBookingsOn(bookings, workingTime.EmployeeID, workingTime.Date) {
		cleared := *b
		cleared.EmployeeID = nil
		unassigned = append(unassigned, &cleared)
	}
	return unassigned, nil
}

// uncoveredBookings returns copies (with EmployeeID cleared) of the previous
// working time's bookings that the new working time does not contain
func uncoveredBookings(previous, next *domain.WorkingTime, bookings []*domain.Booking) []*domain.Booking {
	unassigned := make([]*domain.Booking, 0)
	if previous == nil {
		return unassigned
	}

	moved := previous.EmployeeID != next.EmployeeID || !domain.SameDate(previous.Date, next.Date)

	for _, b := range employeeBookingsOn(bookings, previous.EmployeeID, previous.Date) {
		if !moved && next.Interval().Contains(b.Interval()) {
			continue
		}
		cleared := *b
		cleared.EmployeeID = nil
		unassigned = append(unassigned, &cleared)
	}

	return unassigned
}

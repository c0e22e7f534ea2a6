package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	testCustomerID = int64(100)
	testEmployeeID = int64(7)
	testActivityID = int64(3)
	testDate       = "2026-11-10"
)

func validSnapshot() BookingSnapshot {
	return BookingSnapshot{
		Customer: &domain.Customer{ID: testCustomerID, Name: "Jane Doe"},
		Employee: &domain.Employee{ID: testEmployeeID, Name: "John Smith"},
		Activity: &domain.Activity{ID: testActivityID, Name: "Massage", DurationMinutes: 90},
		WorkingTime: &domain.WorkingTime{
			ID:         1,
			EmployeeID: testEmployeeID,
			Date:       day(testDate),
			StartTime:  "09:00",
			EndTime:    "17:00",
		},
	}
}

func validInput() BookingInput {
	return BookingInput{
		CustomerID: testCustomerID,
		EmployeeID: ptr.Ptr(testEmployeeID),
		ActivityID: testActivityID,
		Date:       testDate,
		StartTime:  "10:00",
	}
}

func assertRejected(t *testing.T, err error, kind error, field string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)

	rejection, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, field, rejection.Field)
}

func TestValidateBooking_Accepted(t *testing.T) {
	got, err := ValidateBooking(validInput(), validSnapshot())
	require.NoError(t, err)

	assert.Equal(t, testCustomerID, got.CustomerID)
	require.NotNil(t, got.EmployeeID)
	assert.Equal(t, testEmployeeID, *got.EmployeeID)
	assert.Equal(t, testActivityID, got.ActivityID)
	assert.True(t, domain.SameDate(day(testDate), got.Date))
	assert.Equal(t, types.TimeString("10:00"), got.StartTime)
	assert.Equal(t, types.TimeString("11:30"), got.EndTime)
}

func TestValidateBooking_WithoutEmployee(t *testing.T) {
	in := validInput()
	in.EmployeeID = nil
	snap := validSnapshot()
	snap.Employee = nil
	snap.WorkingTime = nil

	got, err := ValidateBooking(in, snap)
	require.NoError(t, err)

	assert.Nil(t, got.EmployeeID)
	assert.Equal(t, types.TimeString("11:30"), got.EndTime)
}

func TestValidateBooking_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *BookingInput, snap *BookingSnapshot)
		kind   error
		field  string
	}{
		{
			name:   "customer not found",
			modify: func(in *BookingInput, snap *BookingSnapshot) { snap.Customer = nil },
			kind:   ErrReferenceNotFound,
			field:  FieldCustomer,
		},
		{
			name:   "activity not found",
			modify: func(in *BookingInput, snap *BookingSnapshot) { snap.Activity = nil },
			kind:   ErrReferenceNotFound,
			field:  FieldActivity,
		},
		{
			name:   "employee not found",
			modify: func(in *BookingInput, snap *BookingSnapshot) { snap.Employee = nil },
			kind:   ErrReferenceNotFound,
			field:  FieldEmployee,
		},
		{
			name: "reference checked before format",
			modify: func(in *BookingInput, snap *BookingSnapshot) {
				snap.Customer = nil
				in.StartTime = "johndoe"
			},
			kind:  ErrReferenceNotFound,
			field: FieldCustomer,
		},
		{
			name:   "malformed start time",
			modify: func(in *BookingInput, snap *BookingSnapshot) { in.StartTime = "johndoe" },
			kind:   ErrMalformedInput,
			field:  FieldStartTime,
		},
		{
			name:   "malformed date",
			modify: func(in *BookingInput, snap *BookingSnapshot) { in.Date = "10/11/2026" },
			kind:   ErrMalformedInput,
			field:  FieldDate,
		},
		{
			name: "ends after the last minute of the day",
			modify: func(in *BookingInput, snap *BookingSnapshot) {
				in.StartTime = "23:00"
				snap.Activity.DurationMinutes = 60
			},
			kind:  ErrInvalidDuration,
			field: FieldActivity,
		},
		{
			name: "overflow wins over unavailable employee",
			modify: func(in *BookingInput, snap *BookingSnapshot) {
				in.StartTime = "22:30"
				snap.WorkingTime = nil
			},
			kind:  ErrInvalidDuration,
			field: FieldActivity,
		},
		{
			name:   "employee not working that day",
			modify: func(in *BookingInput, snap *BookingSnapshot) { snap.WorkingTime = nil },
			kind:   ErrEmployeeUnavailable,
			field:  FieldEmployee,
		},
		{
			name: "working time on another date",
			modify: func(in *BookingInput, snap *BookingSnapshot) {
				snap.WorkingTime.Date = day("2026-11-11")
			},
			kind:  ErrEmployeeUnavailable,
			field: FieldEmployee,
		},
		{
			name:   "starts before working time",
			modify: func(in *BookingInput, snap *BookingSnapshot) { in.StartTime = "08:30" },
			kind:   ErrEmployeeUnavailable,
			field:  FieldEmployee,
		},
		{
			name:   "ends after working time",
			modify: func(in *BookingInput, snap *BookingSnapshot) { in.StartTime = "16:00" },
			kind:   ErrEmployeeUnavailable,
			field:  FieldEmployee,
		},
		{
			name: "employee already booked",
			modify: func(in *BookingInput, snap *BookingSnapshot) {
				snap.EmployeeBookings = []*domain.Booking{
					booking(10, ptr.Ptr(testEmployeeID), 200, testDate, "11:00", "12:00"),
				}
			},
			kind:  ErrEmployeeUnavailable,
			field: FieldEmployee,
		},
		{
			name: "customer already booked with another employee",
			modify: func(in *BookingInput, snap *BookingSnapshot) {
				snap.CustomerBookings = []*domain.Booking{
					booking(11, ptr.Ptr(int64(8)), testCustomerID, testDate, "09:30", "10:30"),
				}
			},
			kind:  ErrCustomerDoubleBooked,
			field: FieldCustomer,
		},
		{
			name: "customer already booked without employee",
			modify: func(in *BookingInput, snap *BookingSnapshot) {
				snap.CustomerBookings = []*domain.Booking{
					booking(12, nil, testCustomerID, testDate, "11:00", "11:15"),
				}
			},
			kind:  ErrCustomerDoubleBooked,
			field: FieldCustomer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			snap := validSnapshot()
			tt.modify(&in, &snap)

			got, err := ValidateBooking(in, snap)

			assert.Nil(t, got)
			assertRejected(t, err, tt.kind, tt.field)
		})
	}
}

func TestValidateBooking_TouchingBookingsAccepted(t *testing.T) {
	snap := validSnapshot()
	snap.EmployeeBookings = []*domain.Booking{
		booking(10, ptr.Ptr(testEmployeeID), 200, testDate, "09:00", "10:00"),
		booking(11, ptr.Ptr(testEmployeeID), 201, testDate, "11:30", "12:00"),
	}
	snap.CustomerBookings = []*domain.Booking{
		booking(12, nil, testCustomerID, testDate, "11:30", "12:30"),
	}

	_, err := ValidateBooking(validInput(), snap)
	assert.NoError(t, err)
}

func TestValidateBooking_BookingsOnOtherDatesIgnored(t *testing.T) {
	snap := validSnapshot()
	snap.EmployeeBookings = []*domain.Booking{
		booking(10, ptr.Ptr(testEmployeeID), 200, "2026-11-11", "10:00", "11:00"),
	}
	snap.CustomerBookings = []*domain.Booking{
		booking(11, nil, testCustomerID, "2026-11-09", "10:00", "11:00"),
	}

	_, err := ValidateBooking(validInput(), snap)
	assert.NoError(t, err)
}

func TestValidateBooking_SecondOfTwoConcurrentRequests(t *testing.T) {
	snap := validSnapshot()

	first, err := ValidateBooking(validInput(), snap)
	require.NoError(t, err)

	// Первый запрос ещё не сохранён, но уже попал в снимок
	snap.EmployeeBookings = append(snap.EmployeeBookings, first)

	second := validInput()
	second.CustomerID = 101
	second.StartTime = "11:00"
	snap.Customer = &domain.Customer{ID: 101}

	_, err = ValidateBooking(second, snap)
	assertRejected(t, err, ErrEmployeeUnavailable, FieldEmployee)
}

func TestValidateBooking_DoesNotModifySnapshot(t *testing.T) {
	snap := validSnapshot()
	snap.EmployeeBookings = []*domain.Booking{
		booking(10, ptr.Ptr(testEmployeeID), 200, testDate, "14:00", "15:00"),
	}

	_, err := ValidateBooking(validInput(), snap)
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("14:00"), snap.EmployeeBookings[0].StartTime)
	assert.Equal(t, testEmployeeID, *snap.EmployeeBookings[0].EmployeeID)
	assert.Equal(t, 90, snap.Activity.DurationMinutes)
}

func TestCheckEmployeeAvailable_ExcludesBooking(t *testing.T) {
	wt := validSnapshot().WorkingTime
	bookings := []*domain.Booking{
		booking(10, ptr.Ptr(testEmployeeID), 200, testDate, "10:00", "11:00"),
	}

	err := CheckEmployeeAvailable(testEmployeeID, day(testDate), interval("10:00", "11:00"), wt, bookings, 10)
	assert.NoError(t, err)

	err = CheckEmployeeAvailable(testEmployeeID, day(testDate), interval("10:00", "11:00"), wt, bookings, 0)
	assertRejected(t, err, ErrEmployeeUnavailable, FieldEmployee)
}

func TestRejectionError(t *testing.T) {
	err := reject(ErrCustomerDoubleBooked, FieldCustomer, "overlaps booking id=%d", 5)

	assert.Equal(t, "customer_double_booked", err.KindName())
	assert.Contains(t, err.Error(), "[customer_id]")
	assert.Contains(t, err.Error(), "overlaps booking id=5")

	unknown := &RejectionError{Kind: assert.AnError}
	assert.Equal(t, "unknown", unknown.KindName())
}

package get_free_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	activityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/activity"
	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeBookings struct {
	items []*domain.Booking
	err   error
}

func (f *fakeBookings) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.items {
		if b.IsAssignedTo(employeeID) && domain.SameDate(b.Date, date) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeWorkingTimes []*domain.WorkingTime

func (f fakeWorkingTimes) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) ([]*domain.WorkingTime, error) {
	result := make([]*domain.WorkingTime, 0)
	for _, wt := range f {
		if wt.EmployeeID == employeeID && domain.SameDate(wt.Date, date) {
			result = append(result, wt)
		}
	}
	return result, nil
}

type fakeEmployees map[int64]*domain.Employee

func (f fakeEmployees) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	if e, ok := f[id]; ok {
		return e, nil
	}
	return nil, employeeRepo.ErrEmployeeNotFound
}

type fakeActivities map[int64]*domain.Activity

func (f fakeActivities) GetByID(_ context.Context, id int64) (*domain.Activity, error) {
	if a, ok := f[id]; ok {
		return a, nil
	}
	return nil, activityRepo.ErrActivityNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func interval(start, end string) domain.TimeInterval {
	return domain.TimeInterval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func newUseCase(bookings *fakeBookings) *UseCase {
	date, _ := time.Parse(domain.DateFormat, "2026-11-10")
	workingTimes := fakeWorkingTimes{
		{ID: 1, EmployeeID: 7, Date: date, StartTime: "09:00", EndTime: "22:00"},
	}

	return NewUseCase(
		bookings,
		workingTimes,
		fakeEmployees{7: {ID: 7, Name: "John"}},
		fakeActivities{3: {ID: 3, Name: "Massage", DurationMinutes: 90}},
		nopLogger{},
	)
}

func dayBookings() *fakeBookings {
	date, _ := time.Parse(domain.DateFormat, "2026-11-10")
	employee := ptr.Ptr(int64(7))
	return &fakeBookings{items: []*domain.Booking{
		{ID: 1, EmployeeID: employee, Date: date, StartTime: "09:00", EndTime: "12:00"},
		{ID: 2, EmployeeID: employee, Date: date, StartTime: "13:30", EndTime: "15:00"},
		{ID: 3, EmployeeID: employee, Date: date, StartTime: "16:00", EndTime: "17:00"},
		{ID: 4, EmployeeID: employee, Date: date, StartTime: "19:21", EndTime: "21:00"},
	}}
}

func TestExecute(t *testing.T) {
	uc := newUseCase(dayBookings())

	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: 7, Date: "2026-11-10"})
	require.NoError(t, err)

	require.NotNil(t, resp.WorkingTime)
	assert.Equal(t, interval("09:00", "22:00"), *resp.WorkingTime)
	assert.Equal(t, []domain.TimeInterval{
		interval("12:00", "13:30"),
		interval("15:00", "16:00"),
		interval("17:00", "19:21"),
		interval("21:00", "22:00"),
	}, resp.FreeSlots)
	assert.Equal(t, 90+60+141+60, resp.FreeMinutes)
}

func TestExecute_FilterByActivity(t *testing.T) {
	uc := newUseCase(dayBookings())

	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: 7, Date: "2026-11-10", ActivityID: ptr.Ptr(int64(3))})
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeInterval{
		interval("12:00", "13:30"),
		interval("17:00", "19:21"),
	}, resp.FreeSlots)
}

func TestExecute_NotWorking(t *testing.T) {
	uc := newUseCase(&fakeBookings{})

	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: 7, Date: "2026-11-11"})
	require.NoError(t, err)

	assert.Nil(t, resp.WorkingTime)
	assert.NotNil(t, resp.FreeSlots)
	assert.Empty(t, resp.FreeSlots)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		req      *Request
		bookings *fakeBookings
		wantErr  error
	}{
		{name: "bad employee id", req: &Request{EmployeeID: 0, Date: "2026-11-10"}, wantErr: ErrInvalidInput},
		{name: "bad date", req: &Request{EmployeeID: 7, Date: "tomorrow"}, wantErr: ErrInvalidDate},
		{name: "unknown employee", req: &Request{EmployeeID: 8, Date: "2026-11-10"}, wantErr: ErrEmployeeNotFound},
		{
			name:    "unknown activity",
			req:     &Request{EmployeeID: 7, Date: "2026-11-10", ActivityID: ptr.Ptr(int64(99))},
			wantErr: ErrActivityNotFound,
		},
		{
			name:     "repository failure",
			req:      &Request{EmployeeID: 7, Date: "2026-11-10"},
			bookings: &fakeBookings{err: errors.New("timeout")},
			wantErr:  ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := tt.bookings
			if bookings == nil {
				bookings = &fakeBookings{}
			}

			_, err := newUseCase(bookings).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	activityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/activity"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/customer"
	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fakeBookings struct {
	bookings  []*domain.Booking
	createErr error
	created   []*domain.Booking
}

func (f *fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = int64(len(f.bookings) + 1)
	f.bookings = append(f.bookings, b)
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBookings) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.IsAssignedTo(employeeID) && domain.SameDate(b.Date, date) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookings) GetByCustomerAndDate(_ context.Context, customerID int64, date time.Time) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.CustomerID == customerID && domain.SameDate(b.Date, date) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeWorkingTimes struct {
	items []*domain.WorkingTime
	err   error
}

func (f *fakeWorkingTimes) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) ([]*domain.WorkingTime, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.WorkingTime, 0)
	for _, wt := range f.items {
		if wt.EmployeeID == employeeID && domain.SameDate(wt.Date, date) {
			result = append(result, wt)
		}
	}
	return result, nil
}

type fakeCustomers map[int64]*domain.Customer

func (f fakeCustomers) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if c, ok := f[id]; ok {
		return c, nil
	}
	return nil, customerRepo.ErrCustomerNotFound
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

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMetrics struct {
	rejections []string
	created    int
}

func (f *fakeMetrics) RecordRejection(_, kind string) { f.rejections = append(f.rejections, kind) }
func (f *fakeMetrics) RecordBookingCreated()          { f.created++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	bookings     *fakeBookings
	workingTimes *fakeWorkingTimes
	tx           *fakeTxManager
	metrics      *fakeMetrics
	uc           *UseCase
}

func newFixture() *fixture {
	date, _ := time.Parse(domain.DateFormat, "2026-11-10")

	f := &fixture{
		bookings: &fakeBookings{},
		workingTimes: &fakeWorkingTimes{items: []*domain.WorkingTime{
			{ID: 1, EmployeeID: 7, Date: date, StartTime: "09:00", EndTime: "17:00"},
		}},
		tx:      &fakeTxManager{},
		metrics: &fakeMetrics{},
	}

	f.uc = NewUseCase(
		f.bookings,
		f.workingTimes,
		fakeCustomers{100: {ID: 100, Name: "Jane"}, 101: {ID: 101, Name: "Jack"}},
		fakeEmployees{7: {ID: 7, Name: "John"}},
		fakeActivities{3: {ID: 3, Name: "Massage", DurationMinutes: 60}},
		f.tx,
		f.metrics,
		nopLogger{},
	)

	return f
}

func validRequest() *Request {
	return &Request{
		CustomerID: 100,
		EmployeeID: ptr.Ptr(int64(7)),
		ActivityID: 3,
		Date:       "2026-11-10",
		StartTime:  "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "11:00", resp.EndTime.String())
	require.NotNil(t, resp.EmployeeID)
	assert.Equal(t, int64(7), *resp.EmployeeID)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.metrics.created)
	assert.Empty(t, f.metrics.rejections)
}

func TestExecute_CustomerBookingWithoutEmployee(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.EmployeeID = nil
	req.StartTime = "20:00" // вне рабочего времени, но сотрудник не указан

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Nil(t, resp.EmployeeID)
	assert.Equal(t, "21:00", resp.EndTime.String())
}

func TestExecute_SecondOverlappingRequestRejected(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.CustomerID = 101
	second.StartTime = "10:30"

	_, err = f.uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, scheduling.ErrEmployeeUnavailable)
	assert.Equal(t, []string{"employee_unavailable"}, f.metrics.rejections)
	assert.Len(t, f.bookings.created, 1)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		req   func() *Request
		kind  error
		field string
	}{
		{
			name: "unknown customer",
			req: func() *Request {
				r := validRequest()
				r.CustomerID = 999
				return r
			},
			kind:  scheduling.ErrReferenceNotFound,
			field: scheduling.FieldCustomer,
		},
		{
			name: "unknown employee",
			req: func() *Request {
				r := validRequest()
				r.EmployeeID = ptr.Ptr(int64(999))
				return r
			},
			kind:  scheduling.ErrReferenceNotFound,
			field: scheduling.FieldEmployee,
		},
		{
			name: "malformed date",
			req: func() *Request {
				r := validRequest()
				r.Date = "10-11-2026"
				return r
			},
			kind:  scheduling.ErrMalformedInput,
			field: scheduling.FieldDate,
		},
		{
			name: "crosses midnight",
			req: func() *Request {
				r := validRequest()
				r.StartTime = "23:30"
				return r
			},
			kind:  scheduling.ErrInvalidDuration,
			field: scheduling.FieldActivity,
		},
		{
			name: "employee does not work that day",
			req: func() *Request {
				r := validRequest()
				r.Date = "2026-11-11"
				return r
			},
			kind:  scheduling.ErrEmployeeUnavailable,
			field: scheduling.FieldEmployee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			resp, err := f.uc.Execute(context.Background(), tt.req())

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.kind)
			rejection, ok := scheduling.AsRejection(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, rejection.Field)
			assert.Empty(t, f.bookings.created)
			assert.Len(t, f.metrics.rejections, 1)
		})
	}
}

func TestExecute_CustomerDoubleBooked(t *testing.T) {
	f := newFixture()

	first := validRequest()
	first.EmployeeID = nil
	_, err := f.uc.Execute(context.Background(), first)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, scheduling.ErrCustomerDoubleBooked)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = ""

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, f.tx.calls)
}

func TestExecute_ConcurrentInsertConflict(t *testing.T) {
	f := newFixture()
	f.bookings.createErr = bookingRepo.ErrSlotNotAvailable

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.metrics.created)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	f := newFixture()
	f.workingTimes.err = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

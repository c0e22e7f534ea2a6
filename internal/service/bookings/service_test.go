package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeBookings struct {
	items []*domain.Booking
	err   error

	periodStart, periodEnd time.Time
}

func (f *fakeBookings) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.items {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookings) GetByCustomer(_ context.Context, customerID int64) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.items {
		if b.CustomerID == customerID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookings) GetByPeriod(_ context.Context, startDate, endDate time.Time) ([]*domain.Booking, error) {
	f.periodStart, f.periodEnd = startDate, endDate
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeBookings) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	for i, b := range f.items {
		if b.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBookings() []*domain.Booking {
	date := time.Date(2026, time.November, 10, 0, 0, 0, 0, time.UTC)
	return []*domain.Booking{
		{ID: 1, CustomerID: 100, ActivityID: 3, Date: date, StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:30")},
		{ID: 2, CustomerID: 101, EmployeeID: ptr.Ptr(int64(7)), ActivityID: 3, Date: date, StartTime: types.TimeString("12:00"), EndTime: types.TimeString("13:30")},
	}
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(&fakeBookings{items: testBookings()}, nil, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 100, false)
	require.NoError(t, err)
	assert.Equal(t, "2026-11-10", resp.Date)
	assert.Equal(t, "11:30", resp.EndTime)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Nil(t, resp.EmployeeID)

	_, err = svc.GetByID(context.Background(), 2, 100, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err = svc.GetByID(context.Background(), 2, 1, true)
	require.NoError(t, err)
	assert.Equal(t, int64(7), *resp.EmployeeID)

	_, err = svc.GetByID(context.Background(), 5, 1, true)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_ListByCustomer(t *testing.T) {
	svc := NewService(&fakeBookings{items: testBookings()}, nil, nopLogger{})

	resp, err := svc.ListByCustomer(context.Background(), 101)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)

	resp, err = svc.ListByCustomer(context.Background(), 555)
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)

	_, err = svc.ListByCustomer(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListByMonth(t *testing.T) {
	repo := &fakeBookings{items: testBookings()}
	svc := NewService(repo, time.UTC, nopLogger{})

	resp, err := svc.ListByMonth(context.Background(), "02-2028")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
	assert.Equal(t, "2028-02-01", repo.periodStart.Format(domain.DateFormat))
	assert.Equal(t, "2028-02-29", repo.periodEnd.Format(domain.DateFormat))

	_, err = svc.ListByMonth(context.Background(), "2028-02")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	repo := &fakeBookings{items: testBookings()}
	svc := NewService(repo, nil, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Len(t, repo.items, 1)
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrBookingNotFound)

	repo.err = errors.New("connection refused")
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), ErrInternal)
}

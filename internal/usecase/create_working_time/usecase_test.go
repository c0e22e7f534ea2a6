package create_working_time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	workingTimeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/working_time"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

type fakeWorkingTimes struct {
	items     []*domain.WorkingTime
	createErr error
}

func (f *fakeWorkingTimes) Create(_ context.Context, wt *domain.WorkingTime) (*domain.WorkingTime, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	wt.ID = int64(len(f.items) + 1)
	f.items = append(f.items, wt)
	return wt, nil
}

func (f *fakeWorkingTimes) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) ([]*domain.WorkingTime, error) {
	result := make([]*domain.WorkingTime, 0)
	for _, wt := range f.items {
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	rejections []string
	saved      []string
}

func (f *fakeMetrics) RecordRejection(_, kind string)    { f.rejections = append(f.rejections, kind) }
func (f *fakeMetrics) RecordWorkingTimeSaved(act string) { f.saved = append(f.saved, act) }

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(repo *fakeWorkingTimes, m *fakeMetrics) *UseCase {
	uc := NewUseCase(
		repo,
		fakeEmployees{7: {ID: 7, Name: "John"}},
		fakeTxManager{},
		scheduling.Calendar{Location: time.UTC, WeekStart: time.Monday},
		m,
		nopLogger{},
	)
	// Окно: 2026-10-26 .. 2026-12-06
	uc.timeProvider = fixedTime{now: time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeWorkingTimes{}
	m := &fakeMetrics{}

	resp, err := newUseCase(repo, m).Execute(context.Background(), &Request{
		EmployeeID: 7,
		Date:       "2026-11-10",
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-11-10", resp.Date.Format(domain.DateFormat))
	assert.Equal(t, "17:00", resp.EndTime.String())
	assert.Equal(t, []string{"created"}, m.saved)
	assert.Len(t, repo.items, 1)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		kind error
	}{
		{
			name: "unknown employee",
			req:  Request{EmployeeID: 8, Date: "2026-11-10", StartTime: "09:00", EndTime: "17:00"},
			kind: scheduling.ErrReferenceNotFound,
		},
		{
			name: "inverted range",
			req:  Request{EmployeeID: 7, Date: "2026-11-10", StartTime: "17:00", EndTime: "09:00"},
			kind: scheduling.ErrInvalidRange,
		},
		{
			name: "today",
			req:  Request{EmployeeID: 7, Date: "2026-10-19", StartTime: "09:00", EndTime: "17:00"},
			kind: scheduling.ErrOutOfSchedulingWindow,
		},
		{
			name: "after the window",
			req:  Request{EmployeeID: 7, Date: "2026-12-07", StartTime: "09:00", EndTime: "17:00"},
			kind: scheduling.ErrOutOfSchedulingWindow,
		},
		{
			name: "already rostered",
			req:  Request{EmployeeID: 7, Date: "2026-11-12", StartTime: "18:00", EndTime: "20:00"},
			kind: scheduling.ErrDuplicateWorkingTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, _ := time.Parse(domain.DateFormat, "2026-11-12")
			repo := &fakeWorkingTimes{items: []*domain.WorkingTime{
				{ID: 1, EmployeeID: 7, Date: date, StartTime: "09:00", EndTime: "17:00"},
			}}
			m := &fakeMetrics{}

			_, err := newUseCase(repo, m).Execute(context.Background(), &tt.req)

			assert.ErrorIs(t, err, tt.kind)
			assert.Len(t, repo.items, 1)
			assert.Len(t, m.rejections, 1)
			assert.Empty(t, m.saved)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	_, err := newUseCase(&fakeWorkingTimes{}, &fakeMetrics{}).Execute(context.Background(), &Request{
		EmployeeID: 7,
		Date:       "2026-11-10",
		StartTime:  "09:00",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ConcurrentDuplicate(t *testing.T) {
	repo := &fakeWorkingTimes{createErr: workingTimeRepo.ErrDuplicateWorkingTime}

	_, err := newUseCase(repo, &fakeMetrics{}).Execute(context.Background(), &Request{
		EmployeeID: 7,
		Date:       "2026-11-10",
		StartTime:  "09:00",
		EndTime:    "17:00",
	})

	assert.ErrorIs(t, err, ErrDuplicateWorkingTime)
}

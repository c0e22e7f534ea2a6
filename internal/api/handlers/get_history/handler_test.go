package get_history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
	getHistory "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_history"
)

type fakeUseCase struct {
	got *getHistory.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getHistory.Request) (*getHistory.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	date := time.Date(2026, time.November, 10, 0, 0, 0, 0, time.UTC)
	return &getHistory.Response{
		Now:    date.Add(10 * time.Hour),
		Past:   []*domain.Booking{{ID: 1, CustomerID: 100, Date: date, StartTime: "09:00", EndTime: "10:00"}},
		Future: []*domain.Booking{},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/history?customerId=100", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got.CustomerID)
	assert.Equal(t, int64(100), *uc.got.CustomerID)

	var resp models.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Past, 1)
	assert.Equal(t, "09:00", resp.Past[0].StartTime)
	assert.NotNil(t, resp.Future)
	assert.Empty(t, resp.Future)
}

func TestHandle_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeUseCase{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/history?customerId=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeUseCase{err: getHistory.ErrInternal}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/history", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

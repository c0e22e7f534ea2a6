package activities

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/service/activities"
	"github.com/m04kA/SMC-AppointmentService/internal/service/activities/models"
)

type fakeService struct {
	err error
}

func (f *fakeService) List(context.Context) (*models.ActivityListResponse, error) {
	return &models.ActivityListResponse{Activities: []models.ActivityResponse{{ID: 1, Name: "Cut", Duration: "00:30"}}}, f.err
}

func (f *fakeService) Create(_ context.Context, req *models.ActivityRequest) (*models.ActivityResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ActivityResponse{ID: 2, Name: req.Name, Duration: req.Duration}, nil
}

func (f *fakeService) Update(_ context.Context, id int64, req *models.ActivityRequest) (*models.ActivityResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ActivityResponse{ID: id, Name: req.Name, Duration: req.Duration}, nil
}

func (f *fakeService) Delete(context.Context, int64) error {
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc ActivityService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/activities", h.List).Methods(http.MethodGet)
	r.HandleFunc("/admin/activities", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/admin/activities/{activityId}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/admin/activities/{activityId}", h.Delete).Methods(http.MethodDelete)
	return r
}

func serve(r http.Handler, method, url, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, url, strings.NewReader(body)))
	return rec
}

func TestHandler_Success(t *testing.T) {
	r := newRouter(&fakeService{})

	rec := serve(r, http.MethodGet, "/activities", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Cut"`)

	rec = serve(r, http.MethodPost, "/admin/activities", `{"name":"Massage","duration":"01:00"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(r, http.MethodPut, "/admin/activities/2", `{"name":"Massage","duration":"01:30"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, http.MethodDelete, "/admin/activities/2", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		method   string
		url      string
		body     string
		wantCode int
	}{
		{name: "invalid", err: activities.ErrInvalidInput, method: http.MethodPost, url: "/admin/activities", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "duplicate", err: activities.ErrDuplicateName, method: http.MethodPost, url: "/admin/activities", body: `{}`, wantCode: http.StatusConflict},
		{name: "not found", err: activities.ErrActivityNotFound, method: http.MethodPut, url: "/admin/activities/9", body: `{}`, wantCode: http.StatusNotFound},
		{name: "in use", err: activities.ErrActivityInUse, method: http.MethodDelete, url: "/admin/activities/9", wantCode: http.StatusConflict},
		{name: "bad id", method: http.MethodDelete, url: "/admin/activities/zero", wantCode: http.StatusBadRequest},
		{name: "bad body", method: http.MethodPost, url: "/admin/activities", body: `[`, wantCode: http.StatusBadRequest},
		{name: "internal", err: activities.ErrInternal, method: http.MethodGet, url: "/activities", wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newRouter(&fakeService{err: tt.err}), tt.method, tt.url, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

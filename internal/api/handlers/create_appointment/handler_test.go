package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/middleware"
	createAppointment "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/usecase/create_appointment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	gotReq *createAppointment.Request
	resp   *createAppointment.Response
	err    error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

func postAppointment(t *testing.T, h *Handler, body CreateAppointmentRequest, userIDHeader string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(raw))
	if userIDHeader != "" {
		req.Header.Set(middleware.HeaderUserID, userIDHeader)
	}
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandleDefaultsUserFromAuthenticatedRequest(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, loc)

	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:         1,
		CustomerID: 1,
		UserID:     5,
		ContactID:  1,
		Start:      start,
		End:        start.Add(time.Hour),
	}}
	h := NewHandler(uc, nopLogger{})

	body := CreateAppointmentRequest{
		CustomerID:  1,
		ContactID:   1,
		Title:       "Planning",
		Description: "Quarterly planning session",
		Location:    "Main office",
		Type:        "Planning Session",
		Start:       "2024-06-03T09:00",
		End:         "2024-06-03T10:00",
		TimeZone:    "America/Chicago",
	}

	rec := postAppointment(t, h, body, "5")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(5), uc.gotReq.UserID)
}

func TestHandleKeepsExplicitUser(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, loc)

	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:         1,
		CustomerID: 1,
		UserID:     3,
		ContactID:  1,
		Start:      start,
		End:        start.Add(time.Hour),
	}}
	h := NewHandler(uc, nopLogger{})

	body := CreateAppointmentRequest{
		CustomerID:  1,
		UserID:      3,
		ContactID:   1,
		Title:       "Planning",
		Description: "Quarterly planning session",
		Location:    "Main office",
		Type:        "Planning Session",
		Start:       "2024-06-03T09:00",
		End:         "2024-06-03T10:00",
		TimeZone:    "America/Chicago",
	}

	rec := postAppointment(t, h, body, "5")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(3), uc.gotReq.UserID)
}

func TestHandleRejectsUnauthenticatedRequest(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := postAppointment(t, h, CreateAppointmentRequest{}, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.gotReq)
}

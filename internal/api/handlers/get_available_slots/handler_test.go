package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/BarberBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.Date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) &&
			req.Service == "Corte Clássico" &&
			req.RefreshToken == "rt"
	})).Return(&getAvailableSlots.Response{
		Date:            time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Service:         "Corte Clássico",
		ServiceDuration: 50,
		Occupied:        []types.TimeString{"10:00"},
		Available:       []types.TimeString{"09:00", "11:00"},
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/availability?date=2025-03-10&service=Corte+Cl%C3%A1ssico", nil)
	r.AddCookie(&http.Cookie{Name: handlers.CookieRefreshToken, Value: "rt"})
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"date": "2025-03-10",
		"service": "Corte Clássico",
		"serviceDuration": 50,
		"occupiedTimes": ["10:00"],
		"availableTimes": ["09:00", "11:00"]
	}`, rec.Body.String())
}

func TestHandle_EmptyListsAreArrays(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Service:   "x",
		Occupied:  []types.TimeString{},
		Available: []types.TimeString{},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/availability?date=2025-03-10&service=x", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []interface{}{}, body["occupiedTimes"])
	assert.Equal(t, []interface{}{}, body["availableTimes"])
}

func TestHandle_BadRequest(t *testing.T) {
	for _, target := range []string{
		"/availability",
		"/availability?date=2025-03-10",
		"/availability?service=x",
		"/availability?date=10/03/2025&service=x",
	} {
		t.Run(target, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_CalendarErrorsStay200(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		authRequired bool
	}{
		{"not connected", fmt.Errorf("%w: no token", getAvailableSlots.ErrCalendarUnavailable), true},
		{"api failure", fmt.Errorf("%w: boom", getAvailableSlots.ErrInternal), false},
		{"unexpected", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/availability?date=2025-03-10&service=x", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			var body UnavailableResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.authRequired, body.AuthRequired)
			assert.Equal(t, "2025-03-10", body.Date)
			assert.Equal(t, "x", body.Service)
			assert.NotEmpty(t, body.Error)
		})
	}
}

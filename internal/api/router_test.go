package api

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	route  string
	method string
	status int
}

type fakeObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (f *fakeObserver) ObserveHTTPRequest(route, method string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, observation{route, method, status})
}

func (f *fakeObserver) last() observation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen[len(f.seen)-1]
}

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}

func named(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(name))
	}
}

func newTestRouter(obs *fakeObserver) http.Handler {
	return NewRouter(Handlers{
		GetAvailableSlots: named("slots"),
		CreateBooking:     named("booking"),
		OAuthAuthorize:    named("authorize"),
		OAuthCallback:     named("callback"),
		OAuthStatus:       named("status"),
		OAuthDisconnect:   named("disconnect"),
	}, Options{
		Observer:       obs,
		Logger:         nopLogger{},
		MetricsPath:    "/metrics",
		MetricsHandler: named("metrics"),
	})
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/availability", "slots"},
		{http.MethodGet, "/api/available-times", "slots"},
		{http.MethodPost, "/booking", "booking"},
		{http.MethodPost, "/api/book", "booking"},
		{http.MethodGet, "/api/oauth/authorize", "authorize"},
		{http.MethodGet, "/api/oauth/callback", "callback"},
		{http.MethodGet, "/api/oauth/status", "status"},
		{http.MethodPost, "/api/oauth/disconnect", "disconnect"},
		{http.MethodGet, "/metrics", "metrics"},
	}

	obs := &fakeObserver{}
	router := newTestRouter(obs)

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
			assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
			assert.Equal(t, observation{tt.path, tt.method, http.StatusOK}, obs.last())
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/availability"},
		{http.MethodPut, "/api/available-times"},
		{http.MethodGet, "/booking"},
		{http.MethodDelete, "/booking"},
		{http.MethodGet, "/api/book"},
		{http.MethodPost, "/api/oauth/status"},
		{http.MethodGet, "/api/oauth/disconnect"},
	}

	obs := &fakeObserver{}
	router := newTestRouter(obs)

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.JSONEq(t, `{"success":false,"message":"Method not allowed"}`, rec.Body.String())
			assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
			assert.Equal(t, observation{"unmatched", tt.method, http.StatusMethodNotAllowed}, obs.last())
		})
	}
}

func TestRouter_NotFound(t *testing.T) {
	obs := &fakeObserver{}
	rec := httptest.NewRecorder()

	newTestRouter(obs).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Not found"}`, rec.Body.String())
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	require.Len(t, obs.seen, 1)
	assert.Equal(t, observation{"unmatched", http.MethodGet, http.StatusNotFound}, obs.seen[0])
}

func TestRouter_RecoversPanic(t *testing.T) {
	obs := &fakeObserver{}
	router := NewRouter(Handlers{
		CreateBooking: func(http.ResponseWriter, *http.Request) { panic("boom") },
	}, Options{Observer: obs, Logger: nopLogger{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/booking", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Erro interno do servidor"}`, rec.Body.String())
}

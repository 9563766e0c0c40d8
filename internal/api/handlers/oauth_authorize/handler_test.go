package oauth_authorize

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	"github.com/m04kA/BarberBookingService/internal/integrations/gcalendar"
)

type fakeAuth struct {
	redirectURL string
	state       string
	err         error
}

func (f *fakeAuth) AuthCodeURL(redirectURL, state string) (string, error) {
	f.redirectURL = redirectURL
	f.state = state
	if f.err != nil {
		return "", f.err
	}
	return "https://accounts.google.com/o/oauth2/auth?state=" + state, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_Redirects(t *testing.T) {
	auth := &fakeAuth{}
	r := httptest.NewRequest(http.MethodGet, "http://barbearia.pt/api/oauth/authorize", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()

	NewHandler(auth, handlers.CookieSettings{Secure: true}, nopLogger{}).Handle(rec, r)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://barbearia.pt/api/oauth/callback", auth.redirectURL)
	require.NotEmpty(t, auth.state)
	assert.Contains(t, rec.Header().Get("Location"), "state="+auth.state)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, handlers.CookieOAuthState, cookies[0].Name)
	assert.Equal(t, auth.state, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestHandle_NotConfigured(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeAuth{err: gcalendar.ErrNotConfigured}, handlers.CookieSettings{}, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/oauth/authorize", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "GOOGLE_CLIENT_ID")
	assert.Empty(t, rec.Result().Cookies())
}

func TestHandle_UnexpectedError(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeAuth{err: errors.New("boom")}, handlers.CookieSettings{}, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/oauth/authorize", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

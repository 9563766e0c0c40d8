package oauth_disconnect

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/oauth/disconnect", nil)
	r.AddCookie(&http.Cookie{Name: handlers.CookieRefreshToken, Value: "rt"})
	rec := httptest.NewRecorder()

	NewHandler(handlers.CookieSettings{}, nopLogger{}).Handle(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	cleared := map[string]bool{}
	for _, c := range rec.Result().Cookies() {
		cleared[c.Name] = c.MaxAge < 0
	}
	assert.True(t, cleared[handlers.CookieRefreshToken])
	assert.True(t, cleared[handlers.CookieAccessToken])
	assert.True(t, cleared[handlers.CookieExpiryDate])
}

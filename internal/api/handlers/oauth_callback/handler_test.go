package oauth_callback

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
)

type fakeExchanger struct {
	token *oauth2.Token
	err   error
	calls int
	code  string
}

func (f *fakeExchanger) Exchange(_ context.Context, _ string, code string) (*oauth2.Token, error) {
	f.calls++
	f.code = code
	return f.token, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func callback(ex *fakeExchanger, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	NewHandler(ex, handlers.CookieSettings{MaxAge: 30 * 24 * time.Hour}, nopLogger{}).Handle(rec, r)
	return rec
}

func cookieMap(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := make(map[string]*http.Cookie)
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

var stateCookie = &http.Cookie{Name: handlers.CookieOAuthState, Value: "s1"}

func TestHandle_Connected(t *testing.T) {
	expiry := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ex := &fakeExchanger{token: &oauth2.Token{AccessToken: "at", RefreshToken: "rt", Expiry: expiry}}

	rec := callback(ex, "/api/oauth/callback?code=abc&state=s1", stateCookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", ex.code)
	assert.Contains(t, rec.Body.String(), pageConnected.Title)

	cookies := cookieMap(rec)
	require.Contains(t, cookies, handlers.CookieRefreshToken)
	assert.Equal(t, "rt", cookies[handlers.CookieRefreshToken].Value)
	assert.Equal(t, "at", cookies[handlers.CookieAccessToken].Value)
	assert.Equal(t, strconv.FormatInt(expiry.UnixMilli(), 10), cookies[handlers.CookieExpiryDate].Value)
	assert.Equal(t, 30*24*60*60, cookies[handlers.CookieRefreshToken].MaxAge)
	assert.Less(t, cookies[handlers.CookieOAuthState].MaxAge, 0, "state cookie must be consumed")
}

func TestHandle_KeepsExistingRefreshToken(t *testing.T) {
	ex := &fakeExchanger{token: &oauth2.Token{AccessToken: "at"}}

	rec := callback(ex, "/api/oauth/callback?code=abc&state=s1",
		stateCookie, &http.Cookie{Name: handlers.CookieRefreshToken, Value: "old-rt"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "old-rt", cookieMap(rec)[handlers.CookieRefreshToken].Value)
}

func TestHandle_NoRefreshToken(t *testing.T) {
	ex := &fakeExchanger{token: &oauth2.Token{AccessToken: "at"}}

	rec := callback(ex, "/api/oauth/callback?code=abc&state=s1", stateCookie)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, cookieMap(rec), handlers.CookieRefreshToken)
}

func TestHandle_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		cookies []*http.Cookie
		status  int
	}{
		{"missing code", "/api/oauth/callback?error=access_denied&state=s1", []*http.Cookie{stateCookie}, http.StatusBadRequest},
		{"missing state cookie", "/api/oauth/callback?code=abc&state=s1", nil, http.StatusBadRequest},
		{"state mismatch", "/api/oauth/callback?code=abc&state=other", []*http.Cookie{stateCookie}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := &fakeExchanger{}
			rec := callback(ex, tt.target, tt.cookies...)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, 0, ex.calls)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

func TestHandle_ExchangeFailed(t *testing.T) {
	ex := &fakeExchanger{err: errors.New("invalid_grant")}

	rec := callback(ex, "/api/oauth/callback?code=abc&state=s1", stateCookie)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, cookieMap(rec), handlers.CookieRefreshToken)
}

package handlers

import (
	"net/http"
	"time"
)

// Cookies, в которых хранятся токены подключенного Google Calendar
const (
	CookieAccessToken  = "gcal_access_token"
	CookieRefreshToken = "gcal_refresh_token"
	CookieExpiryDate   = "gcal_expiry_date"

	// CookieOAuthState state OAuth-запроса, живет до возврата из Google
	CookieOAuthState = "gcal_oauth_state"
	oauthStateMaxAge = 10 * 60
)

// CookieSettings параметры cookie с токенами
type CookieSettings struct {
	Secure bool
	MaxAge time.Duration
}

// RefreshToken возвращает refresh token из cookie или пустую строку
func RefreshToken(r *http.Request) string {
	c, err := r.Cookie(CookieRefreshToken)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetTokenCookie устанавливает HttpOnly cookie с токеном
func SetTokenCookie(w http.ResponseWriter, settings CookieSettings, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(settings.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   settings.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookies удаляет все cookie с токенами
func ClearTokenCookies(w http.ResponseWriter, settings CookieSettings) {
	for _, name := range []string{CookieAccessToken, CookieRefreshToken, CookieExpiryDate} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   settings.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// SetStateCookie сохраняет state на время прохождения экрана согласия
func SetStateCookie(w http.ResponseWriter, settings CookieSettings, state string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieOAuthState,
		Value:    state,
		Path:     "/api/oauth",
		MaxAge:   oauthStateMaxAge,
		HttpOnly: true,
		Secure:   settings.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ConsumeStateCookie возвращает сохраненный state и удаляет cookie
func ConsumeStateCookie(w http.ResponseWriter, r *http.Request, settings CookieSettings) string {
	c, err := r.Cookie(CookieOAuthState)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieOAuthState,
		Value:    "",
		Path:     "/api/oauth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   settings.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Value
}

// CallbackURL адрес OAuth callback, вычисленный из заголовков запроса
func CallbackURL(r *http.Request) string {
	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
	}
	return scheme + "://" + r.Host + "/api/oauth/callback"
}

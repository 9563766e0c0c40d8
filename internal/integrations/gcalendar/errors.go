package gcalendar

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

var (
	// ErrNotConfigured возвращается, когда не заданы client id / client secret
	ErrNotConfigured = errors.New("google calendar credentials not configured")

	// ErrNotAuthenticated возвращается, когда нет refresh token или он отозван
	ErrNotAuthenticated = errors.New("google calendar: not authenticated")

	// ErrCalendarAPI возвращается при прочих ошибках Calendar API
	ErrCalendarAPI = errors.New("google calendar: api error")

	// ErrOAuthExchange возвращается при ошибке обмена authorization code на токены
	ErrOAuthExchange = errors.New("google oauth: code exchange failed")
)

// IsAuthError сообщает, что календарь не подключен или не авторизован
// Такие ошибки обрабатываются как мягкая деградация, а не отказ
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNotConfigured) || errors.Is(err, ErrNotAuthenticated)
}

// classify приводит ошибку SDK к одной из ошибок пакета
func classify(err error) error {
	if err == nil {
		return nil
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	return fmt.Errorf("%w: %w", ErrCalendarAPI, err)
}

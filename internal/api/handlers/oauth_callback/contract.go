package oauth_callback

import (
	"context"

	"golang.org/x/oauth2"
)

// TokenExchanger обменивает authorization code на токены
type TokenExchanger interface {
	Exchange(ctx context.Context, redirectURL, code string) (*oauth2.Token, error)
}

// Logger логгер handler'а
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package oauth_status

import "context"

// AccountResolver определяет e-mail аккаунта по refresh token
type AccountResolver interface {
	AccountEmail(ctx context.Context, refreshToken string) (string, error)
}

// Logger логгер handler'а
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package ownernotify

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан API key, отправитель или получатель
	ErrNotConfigured = errors.New("ownernotify: sendgrid not configured")

	// ErrSendFailed возвращается при ошибке или неуспешном статусе SendGrid
	ErrSendFailed = errors.New("ownernotify: send failed")
)

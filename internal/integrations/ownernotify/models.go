package ownernotify

import (
	"context"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Settings параметры уведомлений владельца
type Settings struct {
	APIKey     string
	FromEmail  string
	FromName   string
	OwnerEmail string
	OwnerName  string
	ShopName   string // Используется в теме письма и PRODID календаря
}

// IsConfigured проверяет, что письмо можно отправить
func (s Settings) IsConfigured() bool {
	return s.APIKey != "" && s.FromEmail != "" && s.OwnerEmail != ""
}

// Sender отправляет письмо (реализуется *sendgrid.Client)
type Sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

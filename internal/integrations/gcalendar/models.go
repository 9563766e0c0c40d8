package gcalendar

import "time"

// Credentials OAuth-клиент Google и резервный refresh token
// Передаются явно в конструктор провайдера, без чтения окружения внутри пакета
type Credentials struct {
	ClientID     string
	ClientSecret string
	// RefreshToken используется, когда в запросе нет cookie с токеном
	RefreshToken string
	// RedirectURL если пустой, вычисляется из запроса
	RedirectURL string
}

// IsConfigured проверяет наличие client id и client secret
func (c Credentials) IsConfigured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Settings параметры календаря, в который пишутся записи
type Settings struct {
	CalendarID    string
	Location      *time.Location
	SummaryPrefix string
	// SendUpdates: all, externalOnly, none
	SendUpdates string
	// Напоминания в минутах до начала
	EmailReminderMinutes int64
	PopupReminderMinutes int64
	// Таймаут одного вызова API, 0 - без таймаута
	CallTimeout time.Duration
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CallObserver получает длительность и результат каждого вызова Calendar API
type CallObserver interface {
	ObserveCalendarCall(operation string, err error, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveCalendarCall(string, error, time.Duration) {}

package get_available_slots

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// GatewayProvider открывает шлюз календаря для refresh token запроса
type GatewayProvider interface {
	// Gateway пустой токен означает резервный токен из конфигурации
	Gateway(ctx context.Context, refreshToken string) (domain.CalendarGateway, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

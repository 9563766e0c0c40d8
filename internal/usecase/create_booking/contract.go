package create_booking

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// GatewayProvider открывает шлюз календаря для refresh token запроса
type GatewayProvider interface {
	Gateway(ctx context.Context, refreshToken string) (domain.CalendarGateway, error)
}

// SlotLocker сериализует проверку и запись бронирований на одну дату
type SlotLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// OwnerNotifier уведомляет владельца о записи, не попавшей в календарь
type OwnerNotifier interface {
	NotifyUnsynced(ctx context.Context, booking domain.BookingRequest, interval domain.Interval) error
}

// OutcomeRecorder учитывает результат каждой попытки записи
type OutcomeRecorder interface {
	IncBookingOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

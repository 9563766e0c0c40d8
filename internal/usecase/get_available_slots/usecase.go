package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/internal/integrations/gcalendar"
)

// UseCase use case для получения свободного времени на дату
type UseCase struct {
	gateways GatewayProvider
	services *domain.ServiceCatalog
	slots    *domain.SlotCatalog
	location *time.Location
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	gateways GatewayProvider,
	services *domain.ServiceCatalog,
	slots *domain.SlotCatalog,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		gateways: gateways,
		services: services,
		slots:    slots,
		location: location,
		logger:   logger,
	}
}

// Execute выполняет use case получения свободного времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, service=%q", req.Date.Format(domain.DateFormat), req.Service)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Длительность услуги, неизвестные услуги получают длительность по умолчанию
	duration, known := uc.services.Duration(req.Service)
	if !known {
		uc.logger.Warn("GetAvailableSlots: unknown service %q, using default duration %d min", req.Service, duration)
	}

	// 3. Открываем шлюз календаря
	gateway, err := uc.gateways.Gateway(ctx, req.RefreshToken)
	if err != nil {
		return nil, uc.gatewayError("open calendar", err)
	}

	// 4. Получаем события за день
	window := domain.DayWindow(req.Date, uc.location)
	busy, err := gateway.ListEvents(ctx, window.Start, window.End)
	if err != nil {
		return nil, uc.gatewayError("list events", err)
	}

	// 5. Делим слоты на занятые и свободные
	occupied, available, err := SplitSlots(req.Date, duration, busy, uc.slots.Slots(), uc.location)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to split slots: %v", err)
		return nil, fmt.Errorf("%w: failed to split slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, service=%q: %d events, %d occupied, %d available",
		req.Date.Format(domain.DateFormat), req.Service, len(busy), len(occupied), len(available))

	return &Response{
		Date:            req.Date,
		Service:         req.Service,
		ServiceDuration: duration,
		Occupied:        occupied,
		Available:       available,
	}, nil
}

// gatewayError разделяет отсутствие авторизации и прочие ошибки календаря
func (uc *UseCase) gatewayError(action string, err error) error {
	if gcalendar.IsAuthError(err) {
		uc.logger.Warn("GetAvailableSlots: calendar not connected (%s): %v", action, err)
		return fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}
	uc.logger.Error("GetAvailableSlots: failed to %s: %v", action, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, action, err)
}

package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/internal/integrations/gcalendar"
)

const outcomeFailed = "failed"

// UseCase use case записи клиента в календарь
type UseCase struct {
	gateways GatewayProvider
	services *domain.ServiceCatalog
	location *time.Location
	locker   SlotLocker
	notifier OwnerNotifier
	outcomes OutcomeRecorder
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	gateways GatewayProvider,
	services *domain.ServiceCatalog,
	location *time.Location,
	locker SlotLocker,
	notifier OwnerNotifier,
	outcomes OutcomeRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		gateways: gateways,
		services: services,
		location: location,
		locker:   locker,
		notifier: notifier,
		outcomes: outcomes,
		logger:   logger,
	}
}

// Execute выполняет use case записи
//
// Результаты:
//   - booked: событие создано в календаре
//   - booked_unsynced: календарь не подключен, запись принята без события
//   - ErrSlotNotAvailable: время пересекается с существующим событием, ничего не записано
//   - ErrInvalidInput: запрос не прошел валидацию, календарь не вызывался
//   - ErrInternal: прочие ошибки календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%q, date=%s, time=%s, email=%s",
		req.Service, req.Date.Format(domain.DateFormat), req.Time, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.outcomes.IncBookingOutcome(string(domain.OutcomeRejected))
		return nil, err
	}

	booking := req.toDomain()

	// 2. Вычисляем интервал записи
	duration, known := uc.services.Duration(req.Service)
	if !known {
		uc.logger.Warn("CreateBooking: unknown service %q, using default duration %d min", req.Service, duration)
	}

	interval, err := domain.ResolveInterval(req.Date, req.Time, duration, uc.location)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to resolve interval: %v", err)
		uc.outcomes.IncBookingOutcome(string(domain.OutcomeRejected))
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3-5. Проверка и запись под блокировкой даты
	created, err := uc.reserve(ctx, req, booking, interval)
	switch {
	case err == nil:
	case gcalendar.IsAuthError(err):
		// 6. Календарь не подключен: запись принимается без синхронизации
		return uc.acceptUnsynced(ctx, booking, interval, duration, err), nil
	case errors.Is(err, ErrSlotNotAvailable):
		uc.outcomes.IncBookingOutcome(string(domain.OutcomeConflict))
		return nil, err
	default:
		uc.outcomes.IncBookingOutcome(outcomeFailed)
		return nil, err
	}

	uc.logger.Info("CreateBooking: created event id=%s for %s at %s",
		created.ID, req.Email, interval.Start.Format(time.RFC3339))
	uc.outcomes.IncBookingOutcome(string(domain.OutcomeBooked))

	return &Response{
		Outcome:         domain.OutcomeBooked,
		EventID:         created.ID,
		EventLink:       created.Link,
		Interval:        interval,
		ServiceDuration: duration,
	}, nil
}

// reserve проверяет пересечения и создает событие
// Ошибки авторизации календаря возвращаются без обертки, чтобы вызывающий мог перейти в деградированный режим
func (uc *UseCase) reserve(
	ctx context.Context,
	req *Request,
	booking domain.BookingRequest,
	interval domain.Interval,
) (*domain.CreatedEvent, error) {
	lockKey := "booking:" + req.Date.Format(domain.DateFormat)
	unlock, err := uc.locker.Lock(ctx, lockKey)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to acquire lock %s: %v", lockKey, err)
		return nil, fmt.Errorf("%w: failed to acquire lock: %v", ErrInternal, err)
	}
	defer unlock()

	// 3. Открываем шлюз и получаем события за день
	gateway, err := uc.gateways.Gateway(ctx, req.RefreshToken)
	if err != nil {
		return nil, uc.gatewayError("open calendar", err)
	}

	window := domain.DayWindow(req.Date, uc.location)
	busy, err := gateway.ListEvents(ctx, window.Start, window.End)
	if err != nil {
		return nil, uc.gatewayError("list events", err)
	}

	// 4. Проверяем пересечение с существующими событиями
	if domain.ConflictsWith(interval, busy) {
		uc.logger.Warn("CreateBooking: slot %s %s overlaps an existing event",
			req.Date.Format(domain.DateFormat), req.Time)
		return nil, ErrSlotNotAvailable
	}

	// 5. Создаем событие
	created, err := gateway.CreateEvent(ctx, interval, booking.Metadata())
	if err != nil {
		return nil, uc.gatewayError("create event", err)
	}

	return created, nil
}

// acceptUnsynced принимает запись без события в календаре и уведомляет владельца
func (uc *UseCase) acceptUnsynced(
	ctx context.Context,
	booking domain.BookingRequest,
	interval domain.Interval,
	duration int,
	cause error,
) *Response {
	meta := booking.Metadata()
	uc.logger.Warn("CreateBooking: calendar not connected, booking accepted without sync: "+
		"name=%q, email=%s, phone=%s, service=%q, start=%s, end=%s, notes=%q: %v",
		meta.ClientName, meta.ClientEmail, meta.ClientPhone, meta.Service,
		interval.Start.Format(time.RFC3339), interval.End.Format(time.RFC3339), meta.Notes, cause)

	if err := uc.notifier.NotifyUnsynced(ctx, booking, interval); err != nil {
		uc.logger.Error("CreateBooking: failed to notify owner about unsynced booking: %v", err)
	}

	uc.outcomes.IncBookingOutcome(string(domain.OutcomeBookedUnsynced))

	return &Response{
		Outcome:         domain.OutcomeBookedUnsynced,
		Interval:        interval,
		ServiceDuration: duration,
	}
}

// gatewayError оставляет ошибки авторизации как есть, остальные оборачивает в ErrInternal
func (uc *UseCase) gatewayError(action string, err error) error {
	if gcalendar.IsAuthError(err) {
		return err
	}
	uc.logger.Error("CreateBooking: failed to %s: %v", action, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, action, err)
}

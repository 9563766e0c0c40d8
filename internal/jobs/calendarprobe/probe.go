package calendarprobe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// GatewayProvider открывает шлюз календаря с резервным токеном
type GatewayProvider interface {
	Gateway(ctx context.Context, refreshToken string) (domain.CalendarGateway, error)
}

// StatusRecorder публикует состояние подключения
type StatusRecorder interface {
	SetCalendarConnected(connected bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Probe периодически проверяет, что календарь доступен с серверным токеном
type Probe struct {
	gateways GatewayProvider
	recorder StatusRecorder
	location *time.Location
	timeout  time.Duration
	now      func() time.Time
	logger   Logger

	mu        sync.Mutex
	connected *bool // nil до первой проверки
}

// NewProbe создает проверку подключения календаря
func NewProbe(
	gateways GatewayProvider,
	recorder StatusRecorder,
	location *time.Location,
	timeout time.Duration,
	logger Logger,
) *Probe {
	return &Probe{
		gateways: gateways,
		recorder: recorder,
		location: location,
		timeout:  timeout,
		now:      time.Now,
		logger:   logger,
	}
}

// Check выполняет одну проверку: открывает шлюз и читает события за сегодня
func (p *Probe) Check(ctx context.Context) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err := p.check(ctx)
	p.record(err)
	return err
}

func (p *Probe) check(ctx context.Context) error {
	gateway, err := p.gateways.Gateway(ctx, "")
	if err != nil {
		return fmt.Errorf("open calendar: %w", err)
	}

	window := domain.DayWindow(p.now().In(p.location), p.location)
	if _, err := gateway.ListEvents(ctx, window.Start, window.End); err != nil {
		return fmt.Errorf("list events: %w", err)
	}
	return nil
}

// record обновляет метрику и логирует только смену состояния
func (p *Probe) record(err error) {
	connected := err == nil
	p.recorder.SetCalendarConnected(connected)

	p.mu.Lock()
	previous := p.connected
	p.connected = &connected
	p.mu.Unlock()

	if previous != nil && *previous == connected {
		return
	}
	if connected {
		p.logger.Info("CalendarProbe: calendar connected")
		return
	}
	p.logger.Warn("CalendarProbe: calendar not connected: %v", err)
}

// Connected последнее известное состояние, false до первой проверки
func (p *Probe) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connected != nil && *p.connected
}

// Start запускает проверку по расписанию cron и сразу выполняет первую
// Возвращаемая функция останавливает планировщик и ждет завершения текущей проверки
func (p *Probe) Start(schedule string) (stop func(), err error) {
	c := cron.New(cron.WithLocation(p.location))

	if _, err := c.AddFunc(schedule, func() { _ = p.Check(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid calendar probe schedule %q: %w", schedule, err)
	}

	go func() { _ = p.Check(context.Background()) }()
	c.Start()

	return func() {
		<-c.Stop().Done()
	}, nil
}

package gcalendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

const (
	opListEvents  = "list_events"
	opCreateEvent = "create_event"

	eventStatusCancelled = "cancelled"
)

// Client шлюз к Google Calendar для одного набора учетных данных
// Создается провайдером на каждый запрос
type Client struct {
	svc      *calendar.Service
	settings Settings
	observer CallObserver
	log      Logger
}

// NewClient создает клиента поверх готового calendar.Service
func NewClient(svc *calendar.Service, settings Settings, observer CallObserver, log Logger) *Client {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Client{
		svc:      svc,
		settings: settings,
		observer: observer,
		log:      log,
	}
}

// ListEvents возвращает занятые интервалы календаря в окне [from, to]
// Повторяющиеся события разворачиваются (singleEvents), отмененные пропускаются
func (c *Client) ListEvents(ctx context.Context, from, to time.Time) (busy []domain.BusyInterval, err error) {
	started := time.Now()
	defer func() { c.observer.ObserveCalendarCall(opListEvents, err, time.Since(started)) }()

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	busy = make([]domain.BusyInterval, 0)
	pageToken := ""

	for {
		call := c.svc.Events.List(c.settings.CalendarID).
			TimeMin(from.Format(time.RFC3339)).
			TimeMax(to.Format(time.RFC3339)).
			TimeZone(c.settings.Location.String()).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		events, err := call.Do()
		if err != nil {
			return nil, classify(err)
		}

		for _, item := range events.Items {
			if item.Status == eventStatusCancelled {
				continue
			}
			interval, err := toBusyInterval(item, c.settings.Location)
			if err != nil {
				c.log.Warn("ListEvents: skipping event id=%s: %v", item.Id, err)
				continue
			}
			busy = append(busy, interval)
		}

		if events.NextPageToken == "" {
			break
		}
		pageToken = events.NextPageToken
	}

	return busy, nil
}

// CreateEvent создает событие записи и рассылает приглашение клиенту
func (c *Client) CreateEvent(ctx context.Context, interval domain.Interval, meta domain.EventMetadata) (created *domain.CreatedEvent, err error) {
	started := time.Now()
	defer func() { c.observer.ObserveCalendarCall(opCreateEvent, err, time.Since(started)) }()

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	event := BuildEvent(interval, meta, c.settings)

	call := c.svc.Events.Insert(c.settings.CalendarID, event).Context(ctx)
	if c.settings.SendUpdates != "" {
		call = call.SendUpdates(c.settings.SendUpdates)
	}

	inserted, err := call.Do()
	if err != nil {
		return nil, classify(err)
	}

	return &domain.CreatedEvent{
		ID:   inserted.Id,
		Link: inserted.HtmlLink,
	}, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.settings.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.settings.CallTimeout)
}

// BuildEvent собирает событие календаря для записи
func BuildEvent(interval domain.Interval, meta domain.EventMetadata, settings Settings) *calendar.Event {
	tz := settings.Location.String()

	event := &calendar.Event{
		Summary:     meta.Summary(settings.SummaryPrefix),
		Description: meta.Description(),
		Start: &calendar.EventDateTime{
			DateTime: interval.Start.Format(time.RFC3339),
			TimeZone: tz,
		},
		End: &calendar.EventDateTime{
			DateTime: interval.End.Format(time.RFC3339),
			TimeZone: tz,
		},
		Reminders: &calendar.EventReminders{
			UseDefault:      false,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	if meta.ClientEmail != "" {
		event.Attendees = []*calendar.EventAttendee{{Email: meta.ClientEmail}}
	}
	if settings.EmailReminderMinutes > 0 {
		event.Reminders.Overrides = append(event.Reminders.Overrides,
			&calendar.EventReminder{Method: "email", Minutes: settings.EmailReminderMinutes})
	}
	if settings.PopupReminderMinutes > 0 {
		event.Reminders.Overrides = append(event.Reminders.Overrides,
			&calendar.EventReminder{Method: "popup", Minutes: settings.PopupReminderMinutes})
	}

	return event
}

// toBusyInterval конвертирует событие календаря в занятый интервал
// Событие без start/end возвращается неполным и игнорируется при проверке конфликтов
func toBusyInterval(event *calendar.Event, loc *time.Location) (domain.BusyInterval, error) {
	busy := domain.BusyInterval{EventID: event.Id}

	if event.Start == nil || event.End == nil {
		return busy, nil
	}

	start, allDay, err := parseEventTime(event.Start, loc)
	if err != nil {
		return busy, fmt.Errorf("start: %w", err)
	}
	end, _, err := parseEventTime(event.End, loc)
	if err != nil {
		return busy, fmt.Errorf("end: %w", err)
	}

	busy.Start = start
	busy.End = end
	busy.AllDay = allDay
	return busy, nil
}

// parseEventTime разбирает dateTime или, для событий на весь день, date
func parseEventTime(edt *calendar.EventDateTime, loc *time.Location) (time.Time, bool, error) {
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		return t, false, err
	}
	if edt.Date != "" {
		t, err := time.ParseInLocation(domain.DateFormat, edt.Date, loc)
		return t, true, err
	}
	return time.Time{}, false, nil
}

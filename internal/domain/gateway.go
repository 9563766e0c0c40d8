package domain

import (
	"context"
	"time"
)

// CalendarGateway is the external calendar holding existing events.
// It is the source of truth for busy intervals; nothing is stored locally.
type CalendarGateway interface {
	// ListEvents returns busy intervals intersecting [from, to]
	ListEvents(ctx context.Context, from, to time.Time) ([]BusyInterval, error)
	// CreateEvent writes a booking and notifies the attendee
	CreateEvent(ctx context.Context, interval Interval, meta EventMetadata) (*CreatedEvent, error)
}

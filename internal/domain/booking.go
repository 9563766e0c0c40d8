package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BarberBookingService/pkg/types"
)

// BookingOutcome is the result variant of a booking attempt
type BookingOutcome string

const (
	// OutcomeBooked - event written to the calendar
	OutcomeBooked BookingOutcome = "booked"
	// OutcomeBookedUnsynced - accepted while the calendar is not connected, nothing written
	OutcomeBookedUnsynced BookingOutcome = "booked_unsynced"
	// OutcomeConflict - slot overlaps an existing event, nothing written
	OutcomeConflict BookingOutcome = "conflict"
	// OutcomeRejected - request failed validation
	OutcomeRejected BookingOutcome = "rejected"
)

// BookingRequest is a client's appointment request
type BookingRequest struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Date    time.Time        // calendar date, time part ignored
	Time    types.TimeString // slot start, e.g. "09:00"
	Notes   *string
}

// EventMetadata is what gets written to the calendar for a booking
type EventMetadata struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	Service     string
	Notes       string
}

// noNotes is shown when the client left no notes
const noNotes = "Nenhuma"

// Summary is the event title, "<prefix> - <service>" or just the service
func (m EventMetadata) Summary(prefix string) string {
	if prefix == "" {
		return m.Service
	}
	return prefix + " - " + m.Service
}

// Description is the event body with the client's contact details
func (m EventMetadata) Description() string {
	notes := strings.TrimSpace(m.Notes)
	if notes == "" {
		notes = noNotes
	}
	return fmt.Sprintf("Cliente: %s\nTelefone: %s\nEmail: %s\nServiço: %s\n\nObservações: %s",
		m.ClientName, m.ClientPhone, m.ClientEmail, m.Service, notes)
}

// CreatedEvent identifies an event created on the calendar
type CreatedEvent struct {
	ID   string
	Link string
}

// Metadata returns the calendar payload for the request
func (r BookingRequest) Metadata() EventMetadata {
	meta := EventMetadata{
		ClientName:  r.Name,
		ClientEmail: r.Email,
		ClientPhone: r.Phone,
		Service:     r.Service,
	}
	if r.Notes != nil {
		meta.Notes = *r.Notes
	}
	return meta
}

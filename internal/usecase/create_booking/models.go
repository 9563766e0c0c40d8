package create_booking

import (
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

// Request модель запроса на запись
type Request struct {
	Name    string           `validate:"required,max=200"`
	Email   string           `validate:"required,email,max=254"`
	Phone   string           `validate:"required,max=50"`
	Service string           `validate:"required,max=200"`
	Date    time.Time        // Дата записи (без времени)
	Time    types.TimeString `validate:"required"` // Время начала, например "10:00"
	Notes   *string          `validate:"omitempty,max=1000"`

	// Refresh token из cookie, может быть пустым
	RefreshToken string `validate:"-"`
}

// Response модель ответа на принятую запись
type Response struct {
	Outcome         domain.BookingOutcome // booked или booked_unsynced
	EventID         string                // Пустой для booked_unsynced
	EventLink       string                // Пустой для booked_unsynced
	Interval        domain.Interval
	ServiceDuration int
}

// Synced сообщает, записано ли событие в календарь
func (r *Response) Synced() bool {
	return r.Outcome == domain.OutcomeBooked
}

func (r *Request) toDomain() domain.BookingRequest {
	return domain.BookingRequest{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Service: r.Service,
		Date:    r.Date,
		Time:    r.Time,
		Notes:   r.Notes,
	}
}

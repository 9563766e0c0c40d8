package create_booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	createBooking "github.com/m04kA/BarberBookingService/internal/usecase/create_booking"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

var (
	errMissingFields = errors.New("missing required fields")
	errInvalidDate   = errors.New("invalid date")
	errInvalidTime   = errors.New("invalid time")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Service string  `json:"service"`
	Date    string  `json:"date"` // "2025-10-15"
	Time    string  `json:"time"` // "10:00"
	Notes   *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EventID   string `json:"eventId,omitempty"`
	EventLink string `json:"eventLink,omitempty"`
	Synced    bool   `json:"synced"`
	Note      string `json:"note,omitempty"`
}

// ConflictResponse ответ 409
type ConflictResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Conflict bool   `json:"conflict"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(refreshToken string) (*createBooking.Request, error) {
	name := strings.TrimSpace(r.Name)
	email := strings.TrimSpace(r.Email)
	phone := strings.TrimSpace(r.Phone)
	service := strings.TrimSpace(r.Service)
	dateStr := strings.TrimSpace(r.Date)
	timeStr := strings.TrimSpace(r.Time)

	if name == "" || email == "" || phone == "" || service == "" || dateStr == "" || timeStr == "" {
		return nil, errMissingFields
	}

	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	// Парсим время
	start, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	var notes *string
	if r.Notes != nil {
		trimmed := strings.TrimSpace(*r.Notes)
		notes = &trimmed
	}

	return &createBooking.Request{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Service:      service,
		Date:         date,
		Time:         start,
		Notes:        notes,
		RefreshToken: refreshToken,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	if !resp.Synced() {
		return &BookingResponse{
			Success: true,
			Message: msgBookedUnsynced,
			Synced:  false,
			Note:    noteConnectCalendar,
		}
	}

	return &BookingResponse{
		Success:   true,
		Message:   msgBooked,
		EventID:   resp.EventID,
		EventLink: resp.EventLink,
		Synced:    true,
	}
}

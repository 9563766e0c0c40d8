package create_booking

import (
	"context"

	createBooking "github.com/m04kA/BarberBookingService/internal/usecase/create_booking"
)

// CreateBookingUseCase проверяет слот и записывает событие в календарь
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger логгер handler'а
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

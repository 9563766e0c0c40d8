package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/m04kA/BarberBookingService/internal/usecase/get_available_slots"
)

// GetAvailableSlotsUseCase раскладывает слоты дня на свободные и занятые
type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// Logger логгер handler'а
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

// SplitSlots делит слоты каталога на занятые и свободные
// Каждый слот превращается в интервал [start, start+duration) в зоне loc
// и проверяется на пересечение со всеми занятыми интервалами
//
// Пример: занято 10:00-10:50, услуга 50 минут
//   - 09:00-09:50 свободен
//   - 10:00-10:50 занят
//   - 11:00-11:50 свободен (касание границ не считается пересечением)
func SplitSlots(
	date time.Time,
	durationMinutes int,
	busy []domain.BusyInterval,
	slots []types.TimeString,
	loc *time.Location,
) (occupied, available []types.TimeString, err error) {
	occupied = make([]types.TimeString, 0)
	available = make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		interval, err := domain.ResolveInterval(date, slot, durationMinutes, loc)
		if err != nil {
			return nil, nil, err
		}

		if domain.ConflictsWith(interval, busy) {
			occupied = append(occupied, slot)
			continue
		}
		available = append(available, slot)
	}

	return occupied, available, nil
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/BarberBookingService/pkg/types"
)

// Request модель запроса на получение свободного времени
type Request struct {
	Date         time.Time // Дата (без времени)
	Service      string    // Название услуги
	RefreshToken string    // Refresh token из cookie, может быть пустым
}

// Response модель ответа со свободными и занятыми слотами
type Response struct {
	Date            time.Time
	Service         string
	ServiceDuration int                // Длительность услуги в минутах
	Occupied        []types.TimeString // Занятые слоты, в порядке каталога
	Available       []types.TimeString // Свободные слоты, в порядке каталога
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/BarberBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Success         bool     `json:"success"`
	Date            string   `json:"date"`
	Service         string   `json:"service"`
	ServiceDuration int      `json:"serviceDuration"`
	OccupiedTimes   []string `json:"occupiedTimes"`
	AvailableTimes  []string `json:"availableTimes"`
}

// UnavailableResponse ответ, когда календарь недоступен
// Отдается со статусом 200, чтобы страница записи оставалась рабочей
type UnavailableResponse struct {
	Success      bool   `json:"success"`
	Date         string `json:"date"`
	Service      string `json:"service"`
	Error        string `json:"error"`
	AuthRequired bool   `json:"authRequired"`
	Details      string `json:"details,omitempty"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(dateStr, service, refreshToken string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:         date,
		Service:      service,
		RefreshToken: refreshToken,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Success:         true,
		Date:            resp.Date.Format(domain.DateFormat),
		Service:         resp.Service,
		ServiceDuration: resp.ServiceDuration,
		OccupiedTimes:   toStrings(resp.Occupied),
		AvailableTimes:  toStrings(resp.Available),
	}
}

func toStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

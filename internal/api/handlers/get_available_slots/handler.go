package get_available_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/BarberBookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingParams        = "Data e serviço são obrigatórios"
	msgInvalidDate          = "Formato de data inválido, esperado AAAA-MM-DD"
	msgCalendarNotConnected = "Google Calendar não conectado"
	msgCalendarError        = "Erro ao buscar horários"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /availability
// Query params: date (required, YYYY-MM-DD), service (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	service := strings.TrimSpace(r.URL.Query().Get("service"))

	if dateStr == "" || service == "" {
		h.logger.Warn("GET /availability - Missing date or service: date=%q, service=%q", dateStr, service)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(dateStr, service, handlers.RefreshToken(r))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingParams)

		case errors.Is(err, getAvailableSlots.ErrCalendarUnavailable):
			h.logger.Warn("GET /availability - Calendar not connected: date=%s, service=%q", dateStr, service)
			handlers.RespondJSON(w, http.StatusOK, &UnavailableResponse{
				Success:      false,
				Date:         dateStr,
				Service:      service,
				Error:        msgCalendarNotConnected,
				AuthRequired: true,
				Details:      err.Error(),
			})

		default:
			h.logger.Error("GET /availability - Failed to get availability: date=%s, service=%q, error=%v",
				dateStr, service, err)
			handlers.RespondJSON(w, http.StatusOK, &UnavailableResponse{
				Success:      false,
				Date:         dateStr,
				Service:      service,
				Error:        msgCalendarError,
				AuthRequired: false,
				Details:      err.Error(),
			})
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Availability retrieved: date=%s, service=%q, available=%d",
		dateStr, service, len(result.Available))
	handlers.RespondJSON(w, http.StatusOK, response)
}

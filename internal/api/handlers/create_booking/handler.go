package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/BarberBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "JSON inválido no corpo da requisição"
	msgMissingFields      = "Todos os campos obrigatórios devem ser preenchidos"
	msgInvalidDate        = "Formato de data inválido, esperado AAAA-MM-DD"
	msgInvalidTime        = "Formato de hora inválido, esperado HH:MM"
	msgInvalidInput       = "Dados do agendamento inválidos"
	msgSlotNotAvailable   = "Este horário já está ocupado. Por favor, escolha outro horário."
	msgCalendarError      = "Erro ao criar evento no Google Calendar"
	msgBooked             = "Agendamento realizado com sucesso!"
	msgBookedUnsynced     = "Agendamento registrado com sucesso!"
	noteConnectCalendar   = "Conecte seu Google Calendar em /admin.html para sincronização automática"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(handlers.RefreshToken(r))
	if err != nil {
		h.logger.Warn("POST /booking - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, errInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			handlers.RespondBadRequest(w, msgMissingFields)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /booking - Slot not available: date=%s, time=%s, service=%q",
				req.Date, req.Time, req.Service)
			handlers.RespondJSON(w, http.StatusConflict, &ConflictResponse{
				Success:  false,
				Message:  msgSlotNotAvailable,
				Conflict: true,
			})

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /booking - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /booking - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCalendarError)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /booking - Booking accepted: outcome=%s, event_id=%s, date=%s, time=%s",
		result.Outcome, result.EventID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, response)
}

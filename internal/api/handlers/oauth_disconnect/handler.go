package oauth_disconnect

import (
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
)

type Logger interface {
	Info(format string, v ...interface{})
}

// DisconnectResponse HTTP response model
type DisconnectResponse struct {
	Success bool `json:"success"`
}

type Handler struct {
	cookies handlers.CookieSettings
	logger  Logger
}

func NewHandler(cookies handlers.CookieSettings, logger Logger) *Handler {
	return &Handler{
		cookies: cookies,
		logger:  logger,
	}
}

// Handle POST /api/oauth/disconnect
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.ClearTokenCookies(w, h.cookies)

	h.logger.Info("POST /api/oauth/disconnect - Google Calendar cookies cleared")
	handlers.RespondJSON(w, http.StatusOK, &DisconnectResponse{Success: true})
}

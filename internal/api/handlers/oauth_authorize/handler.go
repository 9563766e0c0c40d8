package oauth_authorize

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	"github.com/m04kA/BarberBookingService/internal/integrations/gcalendar"
)

const msgNotConfigured = "Configure GOOGLE_CLIENT_ID e GOOGLE_CLIENT_SECRET para ligar o Google Calendar"

type Handler struct {
	auth    AuthURLBuilder
	cookies handlers.CookieSettings
	logger  Logger
}

func NewHandler(auth AuthURLBuilder, cookies handlers.CookieSettings, logger Logger) *Handler {
	return &Handler{
		auth:    auth,
		cookies: cookies,
		logger:  logger,
	}
}

// Handle GET /api/oauth/authorize
// Перенаправляет владельца на экран согласия Google
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()

	authURL, err := h.auth.AuthCodeURL(handlers.CallbackURL(r), state)
	if err != nil {
		if errors.Is(err, gcalendar.ErrNotConfigured) {
			h.logger.Error("GET /api/oauth/authorize - Google credentials not configured")
			handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)
			return
		}
		h.logger.Error("GET /api/oauth/authorize - Failed to build auth url: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.SetStateCookie(w, h.cookies, state)

	h.logger.Info("GET /api/oauth/authorize - Redirecting to Google consent screen")
	http.Redirect(w, r, authURL, http.StatusFound)
}

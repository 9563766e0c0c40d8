package oauth_status

import (
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
)

// StatusResponse HTTP response model
type StatusResponse struct {
	Connected bool   `json:"connected"`
	Email     string `json:"email,omitempty"`
}

type Handler struct {
	accounts AccountResolver
	logger   Logger
}

func NewHandler(accounts AccountResolver, logger Logger) *Handler {
	return &Handler{
		accounts: accounts,
		logger:   logger,
	}
}

// Handle GET /api/oauth/status
// Любая ошибка означает "не подключен"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	refreshToken := handlers.RefreshToken(r)
	if refreshToken == "" {
		handlers.RespondJSON(w, http.StatusOK, &StatusResponse{Connected: false})
		return
	}

	email, err := h.accounts.AccountEmail(r.Context(), refreshToken)
	if err != nil {
		h.logger.Warn("GET /api/oauth/status - Failed to resolve account: %v", err)
		handlers.RespondJSON(w, http.StatusOK, &StatusResponse{Connected: false})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &StatusResponse{Connected: true, Email: email})
}

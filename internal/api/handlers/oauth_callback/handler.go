package oauth_callback

import (
	"net/http"
	"strconv"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
)

var (
	pageConnected = page{
		Title:   "Conectado com sucesso!",
		Message: "O seu Google Calendar agora está sincronizado com o sistema de agendamentos.",
		Link:    "Ir para Admin",
		Success: true,
	}
	pageMissingCode = page{
		Title:   "Erro na Autorização",
		Message: "Código de autorização não encontrado.",
		Link:    "Tentar novamente",
	}
	pageInvalidState = page{
		Title:   "Erro na Autorização",
		Message: "O pedido de autorização expirou ou é inválido.",
		Link:    "Tentar novamente",
	}
	pageNoRefreshToken = page{
		Title:   "Erro na Autorização",
		Message: "O Google não devolveu um token de atualização válido. Tente novamente e autorize todas as permissões pedidas.",
		Link:    "Tentar novamente",
	}
	pageExchangeFailed = page{
		Title:   "Erro na autenticação",
		Message: "Não foi possível concluir a ligação ao Google Calendar.",
		Link:    "Tentar novamente",
	}
)

type Handler struct {
	exchanger TokenExchanger
	cookies   handlers.CookieSettings
	logger    Logger
}

func NewHandler(exchanger TokenExchanger, cookies handlers.CookieSettings, logger Logger) *Handler {
	return &Handler{
		exchanger: exchanger,
		cookies:   cookies,
		logger:    logger,
	}
}

// Handle GET /api/oauth/callback?code=...&state=...
// Сохраняет токены в HttpOnly cookie
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	code := query.Get("code")
	if code == "" {
		h.logger.Warn("GET /api/oauth/callback - Missing code, error=%q", query.Get("error"))
		renderPage(w, http.StatusBadRequest, pageMissingCode)
		return
	}

	// Проверяем state, выданный в /api/oauth/authorize
	expected := handlers.ConsumeStateCookie(w, r, h.cookies)
	if expected == "" || expected != query.Get("state") {
		h.logger.Warn("GET /api/oauth/callback - State mismatch")
		renderPage(w, http.StatusBadRequest, pageInvalidState)
		return
	}

	token, err := h.exchanger.Exchange(r.Context(), handlers.CallbackURL(r), code)
	if err != nil {
		h.logger.Error("GET /api/oauth/callback - Failed to exchange code: %v", err)
		renderPage(w, http.StatusInternalServerError, pageExchangeFailed)
		return
	}

	// Google не всегда возвращает refresh token при повторном согласии
	refreshToken := token.RefreshToken
	if refreshToken == "" {
		refreshToken = handlers.RefreshToken(r)
	}
	if refreshToken == "" {
		h.logger.Warn("GET /api/oauth/callback - No refresh token returned")
		renderPage(w, http.StatusBadRequest, pageNoRefreshToken)
		return
	}

	expiry := ""
	if !token.Expiry.IsZero() {
		expiry = strconv.FormatInt(token.Expiry.UnixMilli(), 10)
	}

	handlers.SetTokenCookie(w, h.cookies, handlers.CookieAccessToken, token.AccessToken)
	handlers.SetTokenCookie(w, h.cookies, handlers.CookieRefreshToken, refreshToken)
	handlers.SetTokenCookie(w, h.cookies, handlers.CookieExpiryDate, expiry)

	h.logger.Info("GET /api/oauth/callback - Google Calendar connected")
	renderPage(w, http.StatusOK, pageConnected)
}

package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	"github.com/m04kA/BarberBookingService/internal/api/middleware"
)

// Handlers обработчики публичных маршрутов
type Handlers struct {
	GetAvailableSlots http.HandlerFunc
	CreateBooking     http.HandlerFunc
	OAuthAuthorize    http.HandlerFunc
	OAuthCallback     http.HandlerFunc
	OAuthStatus       http.HandlerFunc
	OAuthDisconnect   http.HandlerFunc
}

// Options инфраструктура роутера
type Options struct {
	Observer middleware.HTTPObserver
	Logger   middleware.Logger

	// MetricsHandler nil - endpoint метрик не публикуется
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter собирает роутер сервиса
// Все маршруты регистрируются на корневом роутере: у subrouter'ов mux
// несовпадение метода уходит в NotFoundHandler родителя вместо 405
func NewRouter(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()

	// Middleware роутера не вызываются для 404/405, оборачиваем их отдельно
	fallback := func(fn http.HandlerFunc) http.Handler {
		return middleware.MetricsMiddleware(opts.Observer)(middleware.NoCache(fn))
	}
	r.NotFoundHandler = fallback(handlers.NotFound)
	r.MethodNotAllowedHandler = fallback(handlers.MethodNotAllowed)

	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.MetricsMiddleware(opts.Observer))
	r.Use(middleware.NoCache)

	// Metrics endpoint (публичный, без аутентификации)
	if opts.MetricsHandler != nil {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	// ============================================================
	// ЗАПИСЬ
	// ============================================================

	// Свободные и занятые слоты на дату
	r.HandleFunc("/availability", h.GetAvailableSlots).Methods(http.MethodGet)
	r.HandleFunc("/api/available-times", h.GetAvailableSlots).Methods(http.MethodGet)

	// Создание записи
	r.HandleFunc("/booking", h.CreateBooking).Methods(http.MethodPost)
	r.HandleFunc("/api/book", h.CreateBooking).Methods(http.MethodPost)

	// ============================================================
	// GOOGLE CALENDAR OAUTH
	// ============================================================

	r.HandleFunc("/api/oauth/authorize", h.OAuthAuthorize).Methods(http.MethodGet)
	r.HandleFunc("/api/oauth/callback", h.OAuthCallback).Methods(http.MethodGet)
	r.HandleFunc("/api/oauth/status", h.OAuthStatus).Methods(http.MethodGet)
	r.HandleFunc("/api/oauth/disconnect", h.OAuthDisconnect).Methods(http.MethodPost)

	return r
}

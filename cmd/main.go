package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/BarberBookingService/internal/api"
	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	createBookingHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_available_slots"
	oauthAuthorizeHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/oauth_authorize"
	oauthCallbackHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/oauth_callback"
	oauthDisconnectHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/oauth_disconnect"
	oauthStatusHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/oauth_status"
	"github.com/m04kA/BarberBookingService/internal/config"
	"github.com/m04kA/BarberBookingService/internal/infra/slotlock"
	"github.com/m04kA/BarberBookingService/internal/integrations/gcalendar"
	"github.com/m04kA/BarberBookingService/internal/integrations/ownernotify"
	"github.com/m04kA/BarberBookingService/internal/jobs/calendarprobe"
	createBookingUC "github.com/m04kA/BarberBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/BarberBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/BarberBookingService/pkg/logger"
	"github.com/m04kA/BarberBookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BarberBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Справочники и часовой пояс уже проверены в config.Validate
	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load timezone: %v", err)
	}
	services, err := cfg.ServiceCatalog()
	if err != nil {
		log.Fatal("Failed to build service catalog: %v", err)
	}
	slots, err := cfg.SlotCatalog()
	if err != nil {
		log.Fatal("Failed to build slot catalog: %v", err)
	}
	log.Info("Catalog loaded (services=%d, slots=%d, timezone=%s)",
		len(cfg.Catalog.Services), slots.Len(), location)

	// Коллектор создается всегда, endpoint публикуется только если метрики включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Инициализируем шлюз Google Calendar
	calendarProvider := gcalendar.NewProvider(
		gcalendar.Credentials{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RefreshToken: cfg.Google.RefreshToken,
			RedirectURL:  cfg.Google.RedirectURL,
		},
		gcalendar.Settings{
			CalendarID:           cfg.Calendar.ID,
			Location:             location,
			SummaryPrefix:        cfg.Calendar.SummaryPrefix,
			SendUpdates:          cfg.Calendar.SendUpdates,
			EmailReminderMinutes: cfg.Calendar.EmailReminderMinutes,
			PopupReminderMinutes: cfg.Calendar.PopupReminderMinutes,
			CallTimeout:          config.Seconds(cfg.Calendar.RequestTimeout),
		},
		log,
		gcalendar.WithObserver(metricsCollector),
	)
	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" {
		log.Warn("Google credentials not configured, bookings will be accepted without calendar sync")
	} else {
		log.Info("Google Calendar gateway initialized (calendar=%s, fallback_token=%t)",
			cfg.Calendar.ID, calendarProvider.HasFallbackToken())
	}

	// Подключаемся к Redis (только для распределенной блокировки)
	var redisClient *redis.Client
	if cfg.BookingLock.Driver == slotlock.DriverRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis (addr=%s, db=%d)", cfg.Redis.Addr(), cfg.Redis.DB)
	}

	// Инициализируем блокировку даты
	lockOpts := slotlock.RedisOptions{
		Prefix:        cfg.BookingLock.Prefix,
		TTL:           config.Seconds(cfg.BookingLock.TTL),
		RetryInterval: time.Duration(cfg.BookingLock.RetryIntervalMs) * time.Millisecond,
		WaitTimeout:   config.Seconds(cfg.BookingLock.WaitTimeout),
	}
	var lockClient redis.Cmdable
	if redisClient != nil {
		lockClient = redisClient
	}
	locker, err := slotlock.New(cfg.BookingLock.Driver, lockClient, lockOpts, log)
	if err != nil {
		log.Fatal("Failed to initialize booking lock: %v", err)
	}
	log.Info("Booking lock initialized (driver=%s)", cfg.BookingLock.Driver)

	// Уведомления владельца о записях без синхронизации
	var notifier createBookingUC.OwnerNotifier = ownernotify.Nop{}
	if cfg.OwnerNotify.Enabled {
		settings := ownernotify.Settings{
			APIKey:     cfg.OwnerNotify.APIKey,
			FromEmail:  cfg.OwnerNotify.FromEmail,
			FromName:   cfg.OwnerNotify.FromName,
			OwnerEmail: cfg.OwnerNotify.OwnerEmail,
			OwnerName:  cfg.OwnerNotify.OwnerName,
			ShopName:   cfg.Calendar.SummaryPrefix,
		}
		if !settings.IsConfigured() {
			log.Warn("Owner notifications enabled but api_key, from_email or owner_email is missing")
		}
		notifier = ownernotify.NewNotifier(settings, location, log)
		log.Info("Owner notifications enabled (owner=%s)", cfg.OwnerNotify.OwnerEmail)
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		calendarProvider,
		services,
		location,
		locker,
		notifier,
		metricsCollector,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		calendarProvider,
		services,
		slots,
		location,
		log,
	)

	// Инициализируем handlers
	cookies := handlers.CookieSettings{
		Secure: cfg.Cookies.Secure,
		MaxAge: time.Duration(cfg.Cookies.MaxAgeDays) * 24 * time.Hour,
	}

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	oauthAuthorize := oauthAuthorizeHandler.NewHandler(calendarProvider, cookies, log)
	oauthCallback := oauthCallbackHandler.NewHandler(calendarProvider, cookies, log)
	oauthStatus := oauthStatusHandler.NewHandler(calendarProvider, log)
	oauthDisconnect := oauthDisconnectHandler.NewHandler(cookies, log)

	// Настраиваем роутер
	routerOpts := api.Options{
		Observer: metricsCollector,
		Logger:   log,
	}
	if cfg.Metrics.Enabled {
		routerOpts.MetricsPath = cfg.Metrics.Path
		routerOpts.MetricsHandler = metricsCollector.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r := api.NewRouter(api.Handlers{
		GetAvailableSlots: getAvailableSlots.Handle,
		CreateBooking:     createBooking.Handle,
		OAuthAuthorize:    oauthAuthorize.Handle,
		OAuthCallback:     oauthCallback.Handle,
		OAuthStatus:       oauthStatus.Handle,
		OAuthDisconnect:   oauthDisconnect.Handle,
	}, routerOpts)

	// Периодическая проверка подключения календаря
	stopProbe := func() {}
	if cfg.CalendarProbe.Enabled {
		probe := calendarprobe.NewProbe(
			calendarProvider,
			metricsCollector,
			location,
			config.Seconds(cfg.Calendar.RequestTimeout),
			log,
		)
		stopProbe, err = probe.Start(cfg.CalendarProbe.Schedule)
		if err != nil {
			log.Fatal("Failed to start calendar probe: %v", err)
		}
		log.Info("Calendar probe started (schedule=%s)", cfg.CalendarProbe.Schedule)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  config.Seconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Seconds(cfg.Server.IdleTimeout),
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopProbe()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		config.Seconds(cfg.Server.ShutdownTimeout),
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Calendar      CalendarConfig      `toml:"calendar"`
	Google        GoogleConfig        `toml:"google"`
	Cookies       CookiesConfig       `toml:"cookies"`
	BookingLock   BookingLockConfig   `toml:"booking_lock"`
	Redis         RedisConfig         `toml:"redis"`
	OwnerNotify   OwnerNotifyConfig   `toml:"owner_notify"`
	CalendarProbe CalendarProbeConfig `toml:"calendar_probe"`
	Catalog       CatalogConfig       `toml:"catalog"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig календарь, в который пишутся записи
type CalendarConfig struct {
	ID                   string `toml:"id"`
	Timezone             string `toml:"timezone"`
	SummaryPrefix        string `toml:"summary_prefix"`
	SendUpdates          string `toml:"send_updates"`
	EmailReminderMinutes int64  `toml:"email_reminder_minutes"`
	PopupReminderMinutes int64  `toml:"popup_reminder_minutes"`
	// Таймаут одного запроса к Calendar API в секундах
	RequestTimeout int `toml:"request_timeout"`
}

// GoogleConfig OAuth-клиент, обычно задается через окружение
type GoogleConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RefreshToken string `toml:"refresh_token"`
	RedirectURL  string `toml:"redirect_url"`
}

type CookiesConfig struct {
	Secure     bool `toml:"secure"`
	MaxAgeDays int  `toml:"max_age_days"`
}

// BookingLockConfig блокировка даты на время проверки и записи
type BookingLockConfig struct {
	Driver          string `toml:"driver"` // none, memory, redis
	Prefix          string `toml:"prefix"`
	TTL             int    `toml:"ttl"`          // секунды
	WaitTimeout     int    `toml:"wait_timeout"` // секунды
	RetryIntervalMs int    `toml:"retry_interval_ms"`
}

type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Addr адрес в формате host:port
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type OwnerNotifyConfig struct {
	Enabled    bool   `toml:"enabled"`
	APIKey     string `toml:"api_key"`
	FromEmail  string `toml:"from_email"`
	FromName   string `toml:"from_name"`
	OwnerEmail string `toml:"owner_email"`
	OwnerName  string `toml:"owner_name"`
}

type CalendarProbeConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron spec, например "@every 5m"
}

// CatalogConfig услуги и слоты
type CatalogConfig struct {
	Slots                  []string       `toml:"slots"`
	DefaultDurationMinutes int            `toml:"default_duration_minutes"`
	Services               map[string]int `toml:"services"`
}

// Default значения по умолчанию, совпадающие с сайтом барбершопа
func Default() *Config {
	services := make(map[string]int, len(domain.DefaultServiceDurations))
	for name, minutes := range domain.DefaultServiceDurations {
		services[name] = minutes
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        3000,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "barber_booking",
		},
		Calendar: CalendarConfig{
			ID:                   domain.DefaultCalendarID,
			Timezone:             domain.DefaultTimezone,
			SummaryPrefix:        "Barbearia",
			SendUpdates:          "all",
			EmailReminderMinutes: 24 * 60,
			PopupReminderMinutes: 60,
			RequestTimeout:       15,
		},
		Cookies: CookiesConfig{MaxAgeDays: 365},
		BookingLock: BookingLockConfig{
			Driver:          "memory",
			Prefix:          "barber:lock:",
			TTL:             30,
			WaitTimeout:     10,
			RetryIntervalMs: 50,
		},
		Redis: RedisConfig{Host: "localhost", Port: 6379},
		CalendarProbe: CalendarProbeConfig{
			Enabled:  false,
			Schedule: "@every 5m",
		},
		Catalog: CatalogConfig{
			Slots:                  append([]string(nil), domain.DefaultDailySlots...),
			DefaultDurationMinutes: domain.DefaultServiceDurationMinutes,
			Services:               services,
		},
	}
}

// Load читает .env (если есть), TOML-файл и переменные окружения
// Переменные окружения имеют приоритет над файлом
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	overrides := map[string]*string{
		"GOOGLE_CLIENT_ID":     &c.Google.ClientID,
		"GOOGLE_CLIENT_SECRET": &c.Google.ClientSecret,
		"GOOGLE_REFRESH_TOKEN": &c.Google.RefreshToken,
		"GOOGLE_REDIRECT_URL":  &c.Google.RedirectURL,
		"SENDGRID_API_KEY":     &c.OwnerNotify.APIKey,
		"REDIS_PASSWORD":       &c.Redis.Password,
	}
	for key, dst := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.HTTPPort = port
	}

	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if _, err := c.ServiceCatalog(); err != nil {
		return err
	}

	if _, err := c.SlotCatalog(); err != nil {
		return err
	}

	switch c.BookingLock.Driver {
	case "none", "memory", "redis":
	default:
		return fmt.Errorf("booking_lock.driver must be one of none, memory, redis: got %q", c.BookingLock.Driver)
	}

	switch c.Calendar.SendUpdates {
	case "all", "externalOnly", "none":
	default:
		return fmt.Errorf("calendar.send_updates must be one of all, externalOnly, none: got %q", c.Calendar.SendUpdates)
	}

	if c.CalendarProbe.Enabled && c.CalendarProbe.Schedule == "" {
		return errors.New("calendar_probe.schedule is required when the probe is enabled")
	}

	return nil
}

// Location часовой пояс, в котором считаются все слоты
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return nil, fmt.Errorf("calendar.timezone %q: %w", c.Calendar.Timezone, err)
	}
	return loc, nil
}

func (c *Config) ServiceCatalog() (*domain.ServiceCatalog, error) {
	catalog, err := domain.NewServiceCatalog(c.Catalog.Services, c.Catalog.DefaultDurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("catalog.services: %w", err)
	}
	return catalog, nil
}

func (c *Config) SlotCatalog() (*domain.SlotCatalog, error) {
	catalog, err := domain.NewSlotCatalog(c.Catalog.Slots)
	if err != nil {
		return nil, fmt.Errorf("catalog.slots: %w", err)
	}
	return catalog, nil
}

// Seconds переводит целые секунды конфигурации в time.Duration
func Seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

package gcalendar

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// Scopes доступ, запрашиваемый у владельца календаря
// userinfo.email нужен для /api/oauth/status
var Scopes = []string{calendar.CalendarScope, oauth2api.UserinfoEmailScope}

// Provider открывает клиента календаря для конкретного refresh token
type Provider struct {
	creds    Credentials
	settings Settings
	observer CallObserver
	log      Logger

	// endpoint и httpClient переопределяются в тестах
	endpoint   string
	httpClient *http.Client
}

// ProviderOption настройка провайдера
type ProviderOption func(*Provider)

// WithEndpoint переопределяет базовый URL Calendar API
func WithEndpoint(endpoint string) ProviderOption {
	return func(p *Provider) { p.endpoint = endpoint }
}

// WithHTTPClient подменяет HTTP-клиент (без OAuth-транспорта)
func WithHTTPClient(c *http.Client) ProviderOption {
	return func(p *Provider) { p.httpClient = c }
}

// WithObserver подключает сбор метрик вызовов API
func WithObserver(o CallObserver) ProviderOption {
	return func(p *Provider) { p.observer = o }
}

// NewProvider создает провайдер шлюза календаря
func NewProvider(creds Credentials, settings Settings, log Logger, opts ...ProviderOption) *Provider {
	p := &Provider{
		creds:    creds,
		settings: settings,
		observer: nopObserver{},
		log:      log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Open возвращает клиента календаря
// requestToken - refresh token из cookie запроса, имеет приоритет над резервным
func (p *Provider) Open(ctx context.Context, requestToken string) (*Client, error) {
	svc, err := p.calendarService(ctx, requestToken)
	if err != nil {
		return nil, err
	}
	return NewClient(svc, p.settings, p.observer, p.log), nil
}

// Gateway то же, что Open, но возвращает доменный интерфейс шлюза
func (p *Provider) Gateway(ctx context.Context, requestToken string) (domain.CalendarGateway, error) {
	client, err := p.Open(ctx, requestToken)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// HasFallbackToken сообщает, настроен ли серверный refresh token
func (p *Provider) HasFallbackToken() bool {
	return p.creds.RefreshToken != ""
}

// OAuthConfig конфигурация OAuth2 для указанного redirect URL
func (p *Provider) OAuthConfig(redirectURL string) (*oauth2.Config, error) {
	if !p.creds.IsConfigured() {
		return nil, ErrNotConfigured
	}
	if p.creds.RedirectURL != "" {
		redirectURL = p.creds.RedirectURL
	}
	return &oauth2.Config{
		ClientID:     p.creds.ClientID,
		ClientSecret: p.creds.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  redirectURL,
		Scopes:       Scopes,
	}, nil
}

// AuthCodeURL ссылка на экран согласия Google (offline access, повторное согласие)
func (p *Provider) AuthCodeURL(redirectURL, state string) (string, error) {
	cfg, err := p.OAuthConfig(redirectURL)
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

// Exchange обменивает authorization code на токены
func (p *Provider) Exchange(ctx context.Context, redirectURL, code string) (*oauth2.Token, error) {
	cfg, err := p.OAuthConfig(redirectURL)
	if err != nil {
		return nil, err
	}
	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOAuthExchange, err)
	}
	return token, nil
}

// AccountEmail возвращает e-mail аккаунта, которому принадлежит refresh token
func (p *Provider) AccountEmail(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrNotAuthenticated
	}
	opts, err := p.clientOptions(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	svc, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create oauth2 service: %v", ErrCalendarAPI, err)
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", classify(err)
	}
	return info.Email, nil
}

func (p *Provider) calendarService(ctx context.Context, requestToken string) (*calendar.Service, error) {
	if !p.creds.IsConfigured() {
		return nil, ErrNotConfigured
	}

	refreshToken := requestToken
	if refreshToken == "" {
		refreshToken = p.creds.RefreshToken
	}
	if refreshToken == "" {
		return nil, ErrNotAuthenticated
	}

	opts, err := p.clientOptions(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if p.endpoint != "" {
		opts = append(opts, option.WithEndpoint(p.endpoint))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrCalendarAPI, err)
	}
	return svc, nil
}

func (p *Provider) clientOptions(ctx context.Context, refreshToken string) ([]option.ClientOption, error) {
	if p.httpClient != nil {
		return []option.ClientOption{option.WithHTTPClient(p.httpClient)}, nil
	}

	cfg, err := p.OAuthConfig("")
	if err != nil {
		return nil, err
	}
	ts := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	return []option.ClientOption{option.WithTokenSource(ts)}, nil
}

package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"
	oauth2api "google.golang.org/api/oauth2/v2"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func lisbon(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)
	return loc
}

func testSettings(t *testing.T) Settings {
	return Settings{
		CalendarID:           "primary",
		Location:             lisbon(t),
		SummaryPrefix:        "Barbearia",
		SendUpdates:          "all",
		EmailReminderMinutes: 24 * 60,
		PopupReminderMinutes: 60,
	}
}

func testProvider(t *testing.T, srv *httptest.Server) *Provider {
	return NewProvider(
		Credentials{ClientID: "id", ClientSecret: "secret", RefreshToken: "fallback"},
		testSettings(t),
		nopLogger{},
		WithHTTPClient(srv.Client()),
		WithEndpoint(srv.URL+"/"),
	)
}

func TestToBusyInterval(t *testing.T) {
	loc := lisbon(t)

	timed, err := toBusyInterval(&calendar.Event{
		Id:    "a",
		Start: &calendar.EventDateTime{DateTime: "2025-01-20T10:00:00Z"},
		End:   &calendar.EventDateTime{DateTime: "2025-01-20T10:50:00Z"},
	}, loc)
	require.NoError(t, err)
	assert.True(t, timed.IsComplete())
	assert.False(t, timed.AllDay)
	assert.Equal(t, 50*time.Minute, timed.Duration())

	allDay, err := toBusyInterval(&calendar.Event{
		Id:    "b",
		Start: &calendar.EventDateTime{Date: "2025-01-20"},
		End:   &calendar.EventDateTime{Date: "2025-01-21"},
	}, loc)
	require.NoError(t, err)
	assert.True(t, allDay.AllDay)
	assert.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, loc), allDay.Start)

	missing, err := toBusyInterval(&calendar.Event{Id: "c", Start: &calendar.EventDateTime{DateTime: "2025-01-20T10:00:00Z"}}, loc)
	require.NoError(t, err)
	assert.False(t, missing.IsComplete())

	_, err = toBusyInterval(&calendar.Event{
		Id:    "d",
		Start: &calendar.EventDateTime{DateTime: "garbage"},
		End:   &calendar.EventDateTime{DateTime: "2025-01-20T10:50:00Z"},
	}, loc)
	assert.Error(t, err)
}

func TestBuildEvent(t *testing.T) {
	settings := testSettings(t)
	start := time.Date(2025, 1, 20, 10, 0, 0, 0, settings.Location)
	interval := domain.Interval{Start: start, End: start.Add(50 * time.Minute)}

	event := BuildEvent(interval, domain.EventMetadata{
		ClientName:  "João",
		ClientEmail: "joao@example.com",
		ClientPhone: "+351 900 000 000",
		Service:     "Corte Clássico",
	}, settings)

	assert.Equal(t, "Barbearia - Corte Clássico", event.Summary)
	assert.Contains(t, event.Description, "Cliente: João")
	assert.Contains(t, event.Description, "Observações: Nenhuma")
	assert.Equal(t, "2025-01-20T10:00:00Z", event.Start.DateTime)
	assert.Equal(t, "2025-01-20T10:50:00Z", event.End.DateTime)
	assert.Equal(t, "Europe/Lisbon", event.Start.TimeZone)
	require.Len(t, event.Attendees, 1)
	assert.Equal(t, "joao@example.com", event.Attendees[0].Email)
	require.Len(t, event.Reminders.Overrides, 2)
	assert.Equal(t, "email", event.Reminders.Overrides[0].Method)
	assert.Equal(t, int64(1440), event.Reminders.Overrides[0].Minutes)
	assert.Equal(t, "popup", event.Reminders.Overrides[1].Method)
}

func TestClient_ListEvents_Paging(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.True(t, strings.HasSuffix(r.URL.Path, "/calendars/primary/events"), r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))
		assert.Equal(t, "startTime", r.URL.Query().Get("orderBy"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"items": []map[string]interface{}{
					{"id": "a", "status": "confirmed",
						"start": map[string]string{"dateTime": "2025-01-20T10:00:00Z"},
						"end":   map[string]string{"dateTime": "2025-01-20T10:50:00Z"}},
					{"id": "x", "status": "cancelled",
						"start": map[string]string{"dateTime": "2025-01-20T12:00:00Z"},
						"end":   map[string]string{"dateTime": "2025-01-20T13:00:00Z"}},
				},
				"nextPageToken": "p2",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{
				{"id": "b", "status": "confirmed",
					"start": map[string]string{"dateTime": "2025-01-20T15:00:00Z"},
					"end":   map[string]string{"dateTime": "2025-01-20T16:00:00Z"}},
			},
		})
	}))
	defer srv.Close()

	client, err := testProvider(t, srv).Open(context.Background(), "")
	require.NoError(t, err)

	window := domain.DayWindow(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), lisbon(t))
	busy, err := client.ListEvents(context.Background(), window.Start, window.End)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	require.Len(t, busy, 2)
	assert.Equal(t, "a", busy[0].EventID)
	assert.Equal(t, "b", busy[1].EventID)
}

func TestClient_ListEvents_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":401,"message":"Invalid Credentials"}}`))
	}))
	defer srv.Close()

	client, err := testProvider(t, srv).Open(context.Background(), "")
	require.NoError(t, err)

	_, err = client.ListEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotAuthenticated))
	assert.True(t, IsAuthError(err))
}

func TestClient_CreateEvent(t *testing.T) {
	var got calendar.Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "all", r.URL.Query().Get("sendUpdates"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":       "evt-1",
			"htmlLink": "https://calendar.google.com/event?eid=evt-1",
		})
	}))
	defer srv.Close()

	client, err := testProvider(t, srv).Open(context.Background(), "cookie-token")
	require.NoError(t, err)

	start := time.Date(2025, 1, 20, 10, 0, 0, 0, lisbon(t))
	created, err := client.CreateEvent(context.Background(),
		domain.Interval{Start: start, End: start.Add(40 * time.Minute)},
		domain.EventMetadata{ClientName: "Ana", ClientEmail: "ana@example.com", Service: "Design de Barba", Notes: "fade"})
	require.NoError(t, err)

	assert.Equal(t, "evt-1", created.ID)
	assert.Equal(t, "https://calendar.google.com/event?eid=evt-1", created.Link)
	assert.Equal(t, "Barbearia - Design de Barba", got.Summary)
	assert.Contains(t, got.Description, "Observações: fade")
}

func TestProvider_Open_Errors(t *testing.T) {
	settings := testSettings(t)

	_, err := NewProvider(Credentials{}, settings, nopLogger{}).Open(context.Background(), "token")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewProvider(Credentials{ClientID: "id", ClientSecret: "secret"}, settings, nopLogger{}).Open(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.True(t, IsAuthError(err))
}

func TestProvider_AuthCodeURL(t *testing.T) {
	p := NewProvider(Credentials{ClientID: "id", ClientSecret: "secret"}, testSettings(t), nopLogger{})

	raw, err := p.AuthCodeURL("https://barbearia.pt/api/oauth/callback", "state")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, "https://barbearia.pt/api/oauth/callback", q.Get("redirect_uri"))
	scopes := strings.Fields(q.Get("scope"))
	assert.Contains(t, scopes, calendar.CalendarScope)
	assert.Contains(t, scopes, oauth2api.UserinfoEmailScope)

	_, err = NewProvider(Credentials{}, testSettings(t), nopLogger{}).AuthCodeURL("x", "state")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

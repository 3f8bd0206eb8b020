package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gebeya-io/miniapp/internal/api"
	"github.com/gebeya-io/miniapp/internal/config"
	"github.com/gebeya-io/miniapp/internal/host"
	"github.com/gebeya-io/miniapp/internal/models"
	"github.com/gebeya-io/miniapp/internal/session"
)

type silentPrompter struct{}

func (silentPrompter) Alert(context.Context, string) error { return nil }

func (silentPrompter) Confirm(context.Context, string) (bool, error) { return true, nil }

func newBridge(initData string) host.Bridge {
	return host.New(config.HostConfig{InitData: initData}, host.Options{
		Prompter: silentPrompter{},
	})
}

// backend is a scripted stand-in for the marketplace API.
type backend struct {
	t        *testing.T
	requests atomic.Int64

	meStatus int
	meUser   models.User

	loginStatus int
	loginToken  string
	loginUser   models.User
}

func (b *backend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)

		switch r.URL.Path {
		case "/api/v1/users/me":
			if b.meStatus != http.StatusOK {
				w.WriteHeader(b.meStatus)
				_, _ = w.Write([]byte(`{"detail":"could not validate credentials"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(b.meUser)

		case "/api/v1/auth/telegram":
			if b.loginStatus != http.StatusOK {
				w.WriteHeader(b.loginStatus)
				_, _ = w.Write([]byte(`{"detail":"invalid init data"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(models.AuthResponse{
				AccessToken: b.loginToken,
				User:        b.loginUser,
			})

		default:
			b.t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newFlow(t *testing.T, b *backend, bridge host.Bridge, store session.Store) *Flow {
	t.Helper()

	server := httptest.NewServer(b.handler())
	t.Cleanup(server.Close)

	client := api.New(server.URL, "/api/v1", store)
	return NewFlow(bridge, client, store)
}

const signedPayload = "user=%7B%22id%22%3A42%2C%22first_name%22%3A%22Abebe%22%7D&auth_date=1700000000&hash=abc"

func TestStartup_StandaloneUsesPlaceholderWithoutAPICalls(t *testing.T) {
	b := &backend{t: t}
	store := session.NewMemoryStore()
	flow := newFlow(t, b, newBridge(""), store)

	require.NoError(t, flow.Startup(context.Background()))

	assert.Equal(t, StateAuthenticated, flow.State())
	assert.Equal(t, int64(0), b.requests.Load(), "standalone startup must not touch the API")

	user := flow.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Dev", user.FirstName)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, "", store.Get())
}

func TestStartup_EmbeddedExchangePersistsCredential(t *testing.T) {
	b := &backend{
		t:           t,
		loginStatus: http.StatusOK,
		loginToken:  "tok1",
		loginUser:   models.User{ID: "u1", TelegramID: 42, FirstName: "Abebe"},
	}
	store := session.NewMemoryStore()
	flow := newFlow(t, b, newBridge(signedPayload), store)

	require.NoError(t, flow.Startup(context.Background()))

	assert.Equal(t, StateAuthenticated, flow.State())
	assert.Equal(t, "tok1", store.Get())

	user := flow.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
}

func TestStartup_StoredCredentialShortCircuitsExchange(t *testing.T) {
	b := &backend{
		t:        t,
		meStatus: http.StatusOK,
		meUser:   models.User{ID: "u1", FirstName: "Abebe"},
	}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("tok1"))

	flow := newFlow(t, b, newBridge(signedPayload), store)

	require.NoError(t, flow.Startup(context.Background()))

	assert.Equal(t, StateAuthenticated, flow.State())
	assert.Equal(t, "tok1", store.Get())
	assert.Equal(t, int64(1), b.requests.Load(), "a valid stored credential needs only the probe")
}

func TestStartup_StaleCredentialClearedThenStandaloneFallback(t *testing.T) {
	b := &backend{t: t, meStatus: http.StatusUnauthorized}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("expired"))

	flow := newFlow(t, b, newBridge(""), store)

	require.NoError(t, flow.Startup(context.Background()))

	// The rejected probe clears the stale token before the fallback runs.
	assert.Equal(t, StateAuthenticated, flow.State())
	assert.Equal(t, "", store.Get())

	user := flow.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Dev", user.FirstName)
}

func TestStartup_StaleCredentialClearedThenExchange(t *testing.T) {
	b := &backend{
		t:           t,
		meStatus:    http.StatusUnauthorized,
		loginStatus: http.StatusOK,
		loginToken:  "fresh",
		loginUser:   models.User{ID: "u2"},
	}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("expired"))

	flow := newFlow(t, b, newBridge(signedPayload), store)

	require.NoError(t, flow.Startup(context.Background()))

	assert.Equal(t, StateAuthenticated, flow.State())
	assert.Equal(t, "fresh", store.Get())
}

func TestStartup_ExchangeFailureSurfacesError(t *testing.T) {
	b := &backend{t: t, loginStatus: http.StatusUnauthorized}
	store := session.NewMemoryStore()
	flow := newFlow(t, b, newBridge(signedPayload), store)

	err := flow.Startup(context.Background())
	require.Error(t, err)

	assert.Equal(t, StateUnauthenticated, flow.State())
	assert.Equal(t, "invalid init data", flow.Err())
	assert.Equal(t, "", store.Get())
}

func TestStartup_RunsAtMostOnce(t *testing.T) {
	b := &backend{
		t:           t,
		loginStatus: http.StatusOK,
		loginToken:  "tok1",
	}
	store := session.NewMemoryStore()
	flow := newFlow(t, b, newBridge(signedPayload), store)

	require.NoError(t, flow.Startup(context.Background()))
	seen := b.requests.Load()

	// Re-renders before and after readiness must not re-trigger the
	// sequence.
	require.NoError(t, flow.Startup(context.Background()))
	require.NoError(t, flow.Startup(context.Background()))

	assert.Equal(t, seen, b.requests.Load())
	assert.Equal(t, StateAuthenticated, flow.State())
}

func TestLogout_IsIdempotent(t *testing.T) {
	b := &backend{t: t}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("tok1"))

	flow := newFlow(t, b, newBridge(""), store)

	flow.Logout()
	flow.Logout()

	assert.Equal(t, StateUnauthenticated, flow.State())
	assert.Nil(t, flow.CurrentUser())
	assert.Equal(t, "", store.Get())
	assert.Equal(t, int64(0), b.requests.Load(), "logout never calls the backend")
}

func TestRefresh_ReplacesUserOnSuccess(t *testing.T) {
	b := &backend{
		t:        t,
		meStatus: http.StatusOK,
		meUser:   models.User{ID: "u1", FirstName: "Renamed"},
	}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("tok1"))

	flow := newFlow(t, b, newBridge(""), store)
	require.NoError(t, flow.Startup(context.Background()))
	require.Equal(t, StateAuthenticated, flow.State())

	b.meUser = models.User{ID: "u1", FirstName: "Renamed again"}
	flow.Refresh(context.Background())

	user := flow.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Renamed again", user.FirstName)
}

func TestRefresh_FailureKeepsStateAndUser(t *testing.T) {
	b := &backend{
		t:        t,
		meStatus: http.StatusOK,
		meUser:   models.User{ID: "u1", FirstName: "Abebe"},
	}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("tok1"))

	flow := newFlow(t, b, newBridge(""), store)
	require.NoError(t, flow.Startup(context.Background()))

	// Backend starts failing; refresh is best-effort and non-fatal.
	b.meStatus = http.StatusInternalServerError
	flow.Refresh(context.Background())

	assert.Equal(t, StateAuthenticated, flow.State())
	user := flow.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Abebe", user.FirstName)
}

func TestObservers_SeeTransitions(t *testing.T) {
	b := &backend{t: t}
	store := session.NewMemoryStore()
	flow := newFlow(t, b, newBridge(""), store)

	var transitions []State
	flow.OnChange(func(state State) {
		transitions = append(transitions, state)
	})

	require.NoError(t, flow.Startup(context.Background()))
	flow.Logout()

	assert.Equal(t, []State{
		StateAuthenticating,
		StateAuthenticated,
		StateUnauthenticated,
	}, transitions)
}

func TestStartup_CancelledContext(t *testing.T) {
	b := &backend{t: t, meStatus: http.StatusOK}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("tok1"))

	flow := newFlow(t, b, newBridge(signedPayload), store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := flow.Startup(ctx)
	require.Error(t, err)
	assert.NotEqual(t, StateAuthenticated, flow.State())
}

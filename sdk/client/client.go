// Package client provides the public entry point for embedding the Gebeya
// marketplace client in another program: wire the host hand-off, a session
// store, and the API transport in one call and drive the auth flow from it.
package client

import (
	"github.com/gebeya-io/miniapp/internal/api"
	"github.com/gebeya-io/miniapp/internal/auth"
	"github.com/gebeya-io/miniapp/internal/config"
	"github.com/gebeya-io/miniapp/internal/host"
	"github.com/gebeya-io/miniapp/internal/session"
)

// Client is the REST transport for the marketplace backend.
type Client = api.Client

// Error is the typed failure raised by the transport.
type Error = api.Error

// ListingsQuery filters the listings index.
type ListingsQuery = api.ListingsQuery

// Flow owns the authentication state machine.
type Flow = auth.Flow

// State is the auth flow's position.
type State = auth.State

// Auth flow states.
const (
	StateInitializing    = auth.StateInitializing
	StateUnauthenticated = auth.StateUnauthenticated
	StateAuthenticating  = auth.StateAuthenticating
	StateAuthenticated   = auth.StateAuthenticated
)

// Bridge is the embedding host's capability surface.
type Bridge = host.Bridge

// BridgeOptions tunes bridge construction.
type BridgeOptions = host.Options

// HostConfig carries the embedding host's hand-off values.
type HostConfig = config.HostConfig

// Store persists the bearer credential.
type Store = session.Store

// Stack is a fully wired client: bridge, session store, transport, and
// auth flow, ready for Startup.
type Stack struct {
	Bridge   Bridge
	Sessions Store
	Client   *Client
	Flow     *Flow
}

// Options configures New.
type Options struct {
	// BaseURL is the backend origin. Empty selects the default config.
	BaseURL string
	// Prefix is the versioned API prefix. Empty selects /api/v1.
	Prefix string
	// Host carries the hand-off values from the embedding host.
	Host HostConfig
	// SessionPath overrides the credential slot location. Empty selects
	// the default under the user's config directory.
	SessionPath string
	// Sessions overrides persistence entirely, e.g. with a memory store.
	Sessions Store
	// BridgeOptions tunes the host bridge, mainly for tests.
	BridgeOptions BridgeOptions
}

// New wires a full client stack.
func New(opts Options) (*Stack, error) {
	defaults := config.DefaultConfig()

	if len(opts.BaseURL) == 0 {
		opts.BaseURL = defaults.GetAPIBaseURL()
	}
	if len(opts.Prefix) == 0 {
		opts.Prefix = defaults.GetAPIPrefix()
	}

	sessions := opts.Sessions
	if sessions == nil {
		store, err := session.NewFileStore(opts.SessionPath)
		if err != nil {
			return nil, err
		}
		sessions = store
	}

	bridge := host.New(opts.Host, opts.BridgeOptions)
	transport := api.New(opts.BaseURL, opts.Prefix, sessions)

	return &Stack{
		Bridge:   bridge,
		Sessions: sessions,
		Client:   transport,
		Flow:     auth.NewFlow(bridge, transport, sessions),
	}, nil
}

// NewMemoryStore returns a non-persisting session store.
func NewMemoryStore() Store {
	return session.NewMemoryStore()
}

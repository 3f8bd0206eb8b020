// Package auth drives the credential lifecycle: probe a stored credential,
// exchange the host's signed payload, or fall back to a local identity when
// running outside the embedding host. The sequence is an explicit state
// machine rather than nested error handlers, so each transition can be
// tested on its own.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/gebeya-io/miniapp/internal/api"
	"github.com/gebeya-io/miniapp/internal/common"
	"github.com/gebeya-io/miniapp/internal/host"
	"github.com/gebeya-io/miniapp/internal/models"
	"github.com/gebeya-io/miniapp/internal/session"
)

// State is the auth flow's position.
type State string

// StateInitializing holds until the startup sequence begins; the other
// three are the positions named by the startup algorithm.
const (
	StateInitializing    State = "initializing"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
)

// ErrCannotAuthenticate is surfaced when the host claims to embed the
// client but hands over no signed payload.
var ErrCannotAuthenticate = fmt.Errorf("cannot authenticate: embedding host provided no signed payload")

// Flow owns the authentication state machine. All mutation happens through
// Startup, Logout, and credential rejection inside the API client; reads
// are always consistent snapshots.
type Flow struct {
	mu sync.Mutex

	bridge   host.Bridge
	client   *api.Client
	sessions session.Store

	state   State
	user    *models.User
	lastErr string

	// started guards the startup sequence: it runs at most once per bridge
	// readiness, no matter how many times Startup is invoked.
	started bool
	// generation invalidates in-flight work when the machine moves on, so
	// a late response never mutates state for a superseded run.
	generation uint64

	observers []func(State)
}

func NewFlow(bridge host.Bridge, client *api.Client, sessions session.Store) *Flow {
	return &Flow{
		bridge:   bridge,
		client:   client,
		sessions: sessions,
		state:    StateInitializing,
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// CurrentUser returns the authenticated identity, nil before authentication.
func (f *Flow) CurrentUser() *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user
}

// Err returns the user-visible message from the last failed transition.
func (f *Flow) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// OnChange registers an observer invoked after every state transition.
func (f *Flow) OnChange(observer func(State)) {
	if observer == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observers = append(f.observers, observer)
}

// Startup runs the authentication sequence:
//
//  1. probe any stored credential against /users/me, clearing it on failure
//  2. exchange the host's signed payload when embedded
//  3. synthesize a local identity when standalone (non-production fallback)
//
// The sequence runs at most once; later calls return immediately with the
// state already reached. Step 1 always settles before step 2 decides, so a
// stale credential cleared by the probe is never re-consulted.
func (f *Flow) Startup(ctx context.Context) error {
	f.mu.Lock()
	if f.started {
		f.mu.Unlock()
		return nil
	}
	f.started = true
	gen := f.generation
	changed := f.setStateLocked(StateAuthenticating)
	f.mu.Unlock()

	if changed {
		f.notify(StateAuthenticating)
	}

	if user := f.probeStoredCredential(ctx, gen); user != nil {
		f.settle(gen, StateAuthenticated, user, "")
		return nil
	}

	if err := ctx.Err(); err != nil {
		f.settle(gen, StateUnauthenticated, nil, "")
		return err
	}

	switch {
	case f.bridge.IsEmbedded() && len(f.bridge.InitData()) > 0:
		return f.exchange(ctx, gen)

	case !f.bridge.IsEmbedded():
		user := f.placeholderUser()
		logrus.WithFields(logrus.Fields{
			"telegram_id": user.TelegramID,
		}).Warn("No embedding host, using local development identity")
		f.settle(gen, StateAuthenticated, user, "")
		return nil

	default:
		f.settle(gen, StateUnauthenticated, nil, ErrCannotAuthenticate.Error())
		return ErrCannotAuthenticate
	}
}

// probeStoredCredential validates a persisted credential against the
// backend. Any failure clears the credential so the exchange decision sees
// a clean slate.
func (f *Flow) probeStoredCredential(ctx context.Context, gen uint64) *models.User {
	token := f.sessions.Get()
	if len(token) == 0 {
		return nil
	}

	user, err := f.client.Me(ctx)
	if err == nil {
		if f.current(gen) {
			return user
		}
		return nil
	}

	logrus.WithError(err).Debug("Stored credential rejected, clearing it")
	if err := f.sessions.Clear(); err != nil {
		logrus.WithError(err).Warn("Failed to clear stale credential")
	}

	return nil
}

// exchange trades the signed payload for a credential and persists it.
func (f *Flow) exchange(ctx context.Context, gen uint64) error {
	resp, err := f.client.Login(ctx, f.bridge.InitData())
	if err != nil {
		logrus.WithError(err).Error("Signed payload exchange failed")
		f.settle(gen, StateUnauthenticated, nil, userMessage(err))
		return err
	}

	if !f.current(gen) || ctx.Err() != nil {
		return ctx.Err()
	}

	if err := f.sessions.Set(resp.AccessToken); err != nil {
		logrus.WithError(err).Error("Failed to persist credential")
		f.settle(gen, StateUnauthenticated, nil, "Failed to persist session")
		return err
	}

	user := resp.User
	f.settle(gen, StateAuthenticated, &user, "")
	return nil
}

// Logout clears the credential and returns to Unauthenticated. Synchronous,
// idempotent, and strictly local: the backend is not called.
func (f *Flow) Logout() {
	f.mu.Lock()

	if err := f.sessions.Clear(); err != nil {
		logrus.WithError(err).Warn("Failed to clear credential on logout")
	}

	f.user = nil
	f.lastErr = ""
	f.generation++
	changed := f.setStateLocked(StateUnauthenticated)
	f.mu.Unlock()

	if changed {
		f.notify(StateUnauthenticated)
	}
}

// Refresh re-fetches the authenticated user without moving the state
// machine. Best-effort: failures are logged and the previous user stands.
func (f *Flow) Refresh(ctx context.Context) {
	f.mu.Lock()
	gen := f.generation
	f.mu.Unlock()

	user, err := f.client.Me(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Failed to refresh user")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generation == gen && f.state == StateAuthenticated {
		f.user = user
	}
}

// placeholderUser synthesizes the standalone identity. It is derived from
// the machine-stable client identifier so repeated runs on one device look
// like one user. Never valid against a production backend.
func (f *Flow) placeholderUser() *models.User {
	clientID := common.GetClientIdentifier()

	return &models.User{
		ID:           "dev-" + clientID.String(),
		TelegramID:   123456789,
		Username:     "dev_user",
		FirstName:    "Dev",
		LastName:     "User",
		LanguageCode: "en",
		City:         "Addis Ababa",
		IsAdmin:      true,
		Settings:     map[string]any{},
	}
}

// settle applies a terminal transition for the given generation. A stale
// generation means a Logout (or later run) already won; the result is
// discarded instead of clobbering newer state.
func (f *Flow) settle(gen uint64, state State, user *models.User, message string) {
	f.mu.Lock()

	if f.generation != gen {
		f.mu.Unlock()
		logrus.WithFields(logrus.Fields{
			"state": state,
		}).Debug("Discarding stale auth transition")
		return
	}

	f.user = user
	f.lastErr = message
	changed := f.setStateLocked(state)
	f.mu.Unlock()

	if changed {
		f.notify(state)
	}
}

func (f *Flow) current(gen uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generation == gen
}

// setStateLocked records a transition. Callers hold f.mu and are
// responsible for notifying observers after releasing it.
func (f *Flow) setStateLocked(state State) bool {
	if f.state == state {
		return false
	}

	logrus.WithFields(logrus.Fields{
		"from": f.state,
		"to":   state,
	}).Debug("Auth state transition")

	f.state = state
	return true
}

// notify runs observers outside the lock so they may read the flow freely.
func (f *Flow) notify(state State) {
	f.mu.Lock()
	observers := make([]func(State), len(f.observers))
	copy(observers, f.observers)
	f.mu.Unlock()

	for _, observer := range observers {
		observer(state)
	}
}

func userMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	if err != nil {
		return err.Error()
	}
	return "Authentication failed"
}

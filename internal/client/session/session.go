// Package session owns the authenticated-user state. It is the single
// writer of the token store: login, logout, and 401 invalidation all
// pass through here, and every other component only ever reads.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/api"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/models"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/common"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/logging"
)

// State is the session lifecycle phase.
type State int

const (
	Uninitialized State = iota
	Resolving
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Resolving:
		return "resolving"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// TokenStore is the writable credential store the manager controls.
type TokenStore interface {
	api.TokenSource
	Save(token string) error
	Clear() error
}

// Manager resolves and holds the current session. State transitions
// replace the (state, user) pair atomically from a reader's
// perspective.
type Manager struct {
	client api.Client
	tokens TokenStore
	log    logging.Logger

	mu       sync.Mutex
	state    State
	user     *models.User
	resolved bool
}

func NewManager(client api.Client, tokens TokenStore, log logging.Logger) *Manager {
	return &Manager{client: client, tokens: tokens, log: log, state: Uninitialized}
}

// Current returns the state and, when authenticated, the user.
func (m *Manager) Current() (State, *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.user
}

// Resolve establishes the session from the stored token. It runs the
// actual resolution at most once per process; later calls return the
// settled state. A stored token that the backend rejects (or any
// failure reaching it) clears the token and settles Anonymous — the
// resolution is never retried automatically.
func (m *Manager) Resolve(ctx context.Context) State {
	m.mu.Lock()
	if m.resolved {
		defer m.mu.Unlock()
		return m.state
	}
	m.resolved = true

	if _, ok := m.tokens.Token(); !ok {
		m.state = Anonymous
		m.mu.Unlock()
		return Anonymous
	}

	m.state = Resolving
	m.mu.Unlock()

	user, err := m.client.Me(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.log.Warn(ctx, "stored token rejected, clearing", "err", err)
		_ = m.tokens.Clear()
		m.state = Anonymous
		m.user = nil
		return Anonymous
	}

	m.state = Authenticated
	m.user = user
	return Authenticated
}

// Login authenticates, stores the token, and loads the user.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	tok, err := m.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.adopt(ctx, tok)
}

// Register creates the account and, like the web client, signs the
// user straight in with the returned token.
func (m *Manager) Register(ctx context.Context, email, username, password string) error {
	tok, err := m.client.Register(ctx, email, username, password)
	if err != nil {
		return err
	}
	return m.adopt(ctx, tok)
}

func (m *Manager) adopt(ctx context.Context, tok string) error {
	if err := m.tokens.Save(tok); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	user, err := m.client.Me(ctx)
	if err != nil {
		_ = m.tokens.Clear()
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolved = true
	m.state = Authenticated
	m.user = user
	return nil
}

// Logout clears the token and forces Anonymous. Calling it on an
// already anonymous session is a no-op.
func (m *Manager) Logout() error {
	if err := m.tokens.Clear(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolved = true
	m.state = Anonymous
	m.user = nil
	return nil
}

// Invalidate handles a 401 observed anywhere in the app: the token is
// dropped and the session forced Anonymous so protected views gate on
// re-login. Errors that are not authorization failures are ignored.
func (m *Manager) Invalidate(err error) bool {
	if !errors.Is(err, common.ErrUnauthorized) {
		return false
	}
	_ = m.Logout()
	return true
}

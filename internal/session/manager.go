// Package session owns the client's authentication lifecycle: the
// anonymous → checking → authenticated state machine, token
// persistence, and the role gate commands consult before touching
// role-restricted operations.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/harlamovads/Graph-description-training/internal/api"
	"github.com/harlamovads/Graph-description-training/internal/credstore"
	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// State is the session lifecycle state.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateChecking      State = "checking"
	StateAuthenticated State = "authenticated"
)

var (
	// ErrBusy indicates another auth operation is already in flight.
	ErrBusy = errors.New("another authentication operation is in progress")

	// ErrNotAuthenticated indicates no valid session exists.
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrForbidden is the terminal state for a role mismatch. There is
	// no redirect target; the operation is simply refused.
	ErrForbidden = errors.New("this operation requires a different role")
)

// AuthAPI is the slice of the API client the session layer needs.
type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// Snapshot is an immutable view of the session.
type Snapshot struct {
	State State
	User  *domain.User
	Err   string
}

// Manager drives session transitions. All transitions are serialized;
// overlapping auth operations fail with ErrBusy instead of racing.
type Manager struct {
	api   AuthAPI
	store credstore.Store

	mu    sync.Mutex
	state State
	user  *domain.User
	err   string
	busy  bool
}

// NewManager creates a Manager in the anonymous state.
func NewManager(a AuthAPI, store credstore.Store) *Manager {
	return &Manager{api: a, store: store, state: StateAnonymous}
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, User: m.user, Err: m.err}
}

// acquire marks an auth operation in flight and moves to checking.
func (m *Manager) acquire() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return ErrBusy
	}
	m.busy = true
	m.state = StateChecking
	m.err = ""
	return nil
}

// settle records the terminal state of an auth operation.
func (m *Manager) settle(user *domain.User, errMsg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = false
	if user != nil {
		m.state = StateAuthenticated
		m.user = user
		m.err = ""
		return
	}
	m.state = StateAnonymous
	m.user = nil
	m.err = errMsg
}

// Bootstrap establishes the session from the stored token. With no
// token it settles anonymous without issuing any request. With a token
// whose expiry claim is already past it clears the token, again without
// a request. Otherwise it validates the token against GET /auth/user.
func (m *Manager) Bootstrap(ctx context.Context) (Snapshot, error) {
	if err := m.acquire(); err != nil {
		return m.Snapshot(), err
	}

	token, err := m.store.Token()
	if err != nil {
		m.settle(nil, "")
		return m.Snapshot(), fmt.Errorf("reading stored token: %w", err)
	}
	if token == "" {
		m.settle(nil, "")
		return m.Snapshot(), nil
	}

	if expired(token) {
		if err := m.store.ClearTokens(); err != nil {
			m.settle(nil, "")
			return m.Snapshot(), fmt.Errorf("clearing expired token: %w", err)
		}
		m.settle(nil, "Session expired")
		return m.Snapshot(), nil
	}

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		// A 401 already cleared the token inside the adapter; any
		// other failure clears it here so the next bootstrap starts
		// clean, matching the browser client's behavior.
		_ = m.store.ClearTokens()
		m.settle(nil, "Authentication failed")
		return m.Snapshot(), nil
	}

	m.settle(user, "")
	return m.Snapshot(), nil
}

// Login authenticates and persists both tokens on success. The failure
// message is the backend's error string when available.
func (m *Manager) Login(ctx context.Context, email, password string) (Snapshot, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return m.Snapshot(), errors.New("email and password are required")
	}
	if err := m.acquire(); err != nil {
		return m.Snapshot(), err
	}

	resp, err := m.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		msg := api.Message(err, "Login failed")
		m.settle(nil, msg)
		return m.Snapshot(), fmt.Errorf("%s", msg)
	}

	if err := m.store.SetToken(resp.AccessToken); err != nil {
		m.settle(nil, "")
		return m.Snapshot(), fmt.Errorf("storing token: %w", err)
	}
	// Stored per the backend contract; no client path refreshes with it.
	if err := m.store.SetRefreshToken(resp.RefreshToken); err != nil {
		m.settle(nil, "")
		return m.Snapshot(), fmt.Errorf("storing refresh token: %w", err)
	}

	m.settle(&resp.User, "")
	return m.Snapshot(), nil
}

// Register creates an account and signs in with the returned access
// token.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) (Snapshot, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return m.Snapshot(), errors.New("username, email and password are required")
	}
	if !domain.ValidRoles[req.Role] {
		return m.Snapshot(), fmt.Errorf("invalid role %q", req.Role)
	}
	if err := m.acquire(); err != nil {
		return m.Snapshot(), err
	}

	resp, err := m.api.Register(ctx, req)
	if err != nil {
		msg := api.Message(err, "Registration failed")
		m.settle(nil, msg)
		return m.Snapshot(), fmt.Errorf("%s", msg)
	}

	if err := m.store.SetToken(resp.AccessToken); err != nil {
		m.settle(nil, "")
		return m.Snapshot(), fmt.Errorf("storing token: %w", err)
	}

	m.settle(&resp.User, "")
	return m.Snapshot(), nil
}

// Logout clears the stored tokens and resets to anonymous. Purely
// client-side; the backend keeps no session to revoke.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.ClearTokens(); err != nil {
		return fmt.Errorf("clearing tokens: %w", err)
	}
	m.state = StateAnonymous
	m.user = nil
	m.err = ""
	m.busy = false
	return nil
}

// expired reports whether the JWT's exp claim is in the past. The
// signature is not verified here; the backend remains the authority and
// this only short-circuits an obviously dead token before a network
// round trip. Tokens that don't parse fall through to server validation.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

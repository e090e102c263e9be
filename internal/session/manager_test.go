package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlamovads/Graph-description-training/internal/api"
	"github.com/harlamovads/Graph-description-training/internal/credstore"
	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// fakeAuthAPI counts calls and returns canned responses.
type fakeAuthAPI struct {
	mu           sync.Mutex
	loginCalls   int
	currentCalls int

	loginResp   *api.AuthResponse
	loginErr    error
	currentUser *domain.User
	currentErr  error
}

func (f *fakeAuthAPI) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currentCalls++
	return f.currentUser, f.currentErr
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestManager_LoginStoresTokensAndUser(t *testing.T) {
	store := credstore.NewMemoryStore()
	fake := &fakeAuthAPI{
		loginResp: &api.AuthResponse{
			User:         domain.User{ID: 3, Username: "anna", Role: domain.RoleStudent},
			AccessToken:  "access-tok",
			RefreshToken: "refresh-tok",
		},
	}
	m := NewManager(fake, store)

	snap, err := m.Login(context.Background(), "anna@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, snap.State)
	require.NotNil(t, snap.User)
	assert.Equal(t, "anna", snap.User.Username)

	token, _ := store.Token()
	refresh, _ := store.RefreshToken()
	assert.Equal(t, "access-tok", token)
	assert.Equal(t, "refresh-tok", refresh)
}

func TestManager_LoginFailureSurfacesBackendMessage(t *testing.T) {
	store := credstore.NewMemoryStore()
	fake := &fakeAuthAPI{
		loginErr: &api.StatusError{Status: 401, Message: "Invalid email or password"},
	}
	m := NewManager(fake, store)

	snap, err := m.Login(context.Background(), "anna@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
	assert.Equal(t, StateAnonymous, snap.State)
	assert.Equal(t, "Invalid email or password", m.Snapshot().Err)

	token, _ := store.Token()
	assert.Empty(t, token)
}

func TestManager_LoginRequiresCredentials(t *testing.T) {
	fake := &fakeAuthAPI{}
	m := NewManager(fake, credstore.NewMemoryStore())

	_, err := m.Login(context.Background(), "", "pw")
	require.Error(t, err)
	_, err = m.Login(context.Background(), "a@b.c", "  ")
	require.Error(t, err)
	assert.Equal(t, 0, fake.loginCalls)
}

func TestManager_RegisterRejectsInvalidRole(t *testing.T) {
	m := NewManager(&fakeAuthAPI{}, credstore.NewMemoryStore())

	_, err := m.Register(context.Background(), api.RegisterRequest{
		Username: "anna", Email: "a@b.c", Password: "pw", Role: "admin",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid role")
}

func TestManager_BootstrapWithoutTokenIssuesNoRequest(t *testing.T) {
	fake := &fakeAuthAPI{}
	m := NewManager(fake, credstore.NewMemoryStore())

	snap, err := m.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, snap.State)
	assert.Empty(t, snap.Err)
	assert.Equal(t, 0, fake.currentCalls)
}

func TestManager_BootstrapExpiredTokenShortCircuits(t *testing.T) {
	store := credstore.NewMemoryStore()
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(-time.Hour))))
	fake := &fakeAuthAPI{}
	m := NewManager(fake, store)

	snap, err := m.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, snap.State)
	assert.Equal(t, "Session expired", snap.Err)
	assert.Equal(t, 0, fake.currentCalls)

	token, _ := store.Token()
	assert.Empty(t, token)
}

func TestManager_BootstrapValidTokenFetchesUser(t *testing.T) {
	store := credstore.NewMemoryStore()
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(time.Hour))))
	fake := &fakeAuthAPI{
		currentUser: &domain.User{ID: 9, Username: "teacher", Role: domain.RoleTeacher},
	}
	m := NewManager(fake, store)

	snap, err := m.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.Equal(t, "teacher", snap.User.Username)
	assert.Equal(t, 1, fake.currentCalls)
}

func TestManager_BootstrapRejectedTokenClearsAndSettlesAnonymous(t *testing.T) {
	store := credstore.NewMemoryStore()
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(time.Hour))))
	fake := &fakeAuthAPI{currentErr: errors.New("boom")}
	m := NewManager(fake, store)

	snap, err := m.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, snap.State)
	assert.Equal(t, "Authentication failed", snap.Err)

	token, _ := store.Token()
	assert.Empty(t, token)
}

func TestManager_LogoutAlwaysClears(t *testing.T) {
	store := credstore.NewMemoryStore()
	fake := &fakeAuthAPI{
		loginResp: &api.AuthResponse{
			User:        domain.User{ID: 3, Username: "anna", Role: domain.RoleStudent},
			AccessToken: "tok", RefreshToken: "refresh",
		},
	}
	m := NewManager(fake, store)
	_, err := m.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	require.NoError(t, m.Logout())
	snap := m.Snapshot()
	assert.Equal(t, StateAnonymous, snap.State)
	assert.Nil(t, snap.User)

	token, _ := store.Token()
	refresh, _ := store.RefreshToken()
	assert.Empty(t, token)
	assert.Empty(t, refresh)

	// Logging out while already anonymous is fine.
	require.NoError(t, m.Logout())
}

func TestExpired(t *testing.T) {
	assert.True(t, expired(signedToken(t, time.Now().Add(-time.Minute))))
	assert.False(t, expired(signedToken(t, time.Now().Add(time.Minute))))
	// Garbage tokens fall through to server validation.
	assert.False(t, expired("not-a-jwt"))
}

package api

import (
	"context"
	"net/http"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the fields for POST /auth/register. The
// invitation code is optional and only meaningful for students.
type RegisterRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	InvitationCode string `json:"invitation_code,omitempty"`
}

// AuthResponse is the body returned by login and register: the user
// plus a token pair. The refresh token is persisted by the session
// layer but never exchanged by this client.
type AuthResponse struct {
	Message      string      `json:"message"`
	User         domain.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser validates the stored token and returns its user.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Students lists the teacher's students (invited or assigned).
func (c *Client) Students(ctx context.Context) ([]*domain.User, error) {
	var resp struct {
		Students []*domain.User `json:"students"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/students", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Students, nil
}

// GenerateInvitation creates a single-use student invitation code.
func (c *Client) GenerateInvitation(ctx context.Context) (string, error) {
	var resp struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/generate-invitation", nil, &resp); err != nil {
		return "", err
	}
	return resp.Code, nil
}

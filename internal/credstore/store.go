// Package credstore persists authentication tokens and in-progress
// exercise attempt drafts on the local machine. It is the client-side
// analog of the browser's local storage, with an interface so the
// session layer and tests can swap the backing store.
package credstore

import (
	"errors"
	"time"
)

// Fixed credential keys. The access and refresh tokens live under
// separate keys; the refresh token is stored on login per the backend
// contract but no client path currently exchanges it.
const (
	KeyToken        = "token"
	KeyRefreshToken = "refresh_token"
)

// ErrNoDraft indicates no saved draft exists for the exercise.
var ErrNoDraft = errors.New("no attempt draft")

// AttemptDraft holds partially completed exercise responses so a
// student can resume an attempt later. One draft per exercise.
type AttemptDraft struct {
	ID         string
	ExerciseID int
	Responses  map[string]string
	UpdatedAt  time.Time
}

// Store is the persistent client-side storage surface.
type Store interface {
	// Token returns the stored access token, or "" when absent.
	Token() (string, error)
	// SetToken stores the access token under its fixed key.
	SetToken(token string) error
	// RefreshToken returns the stored refresh token, or "" when absent.
	RefreshToken() (string, error)
	// SetRefreshToken stores the refresh token under its fixed key.
	SetRefreshToken(token string) error
	// ClearTokens removes both tokens. Clearing an empty store is not
	// an error.
	ClearTokens() error

	// Draft returns the saved draft for an exercise, or ErrNoDraft.
	Draft(exerciseID int) (*AttemptDraft, error)
	// SaveDraft inserts or replaces the draft for its exercise.
	SaveDraft(d *AttemptDraft) error
	// DeleteDraft removes the draft for an exercise, if any.
	DeleteDraft(exerciseID int) error

	// Close releases the underlying storage.
	Close() error
}

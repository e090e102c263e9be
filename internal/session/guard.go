package session

import (
	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// Decision is the outcome of gating an operation on session state.
type Decision int

const (
	// DecisionWait means the session is still being checked; callers
	// should block on the bootstrap rather than proceed or refuse.
	DecisionWait Decision = iota
	// DecisionLogin means there is no session; the user must log in.
	DecisionLogin
	// DecisionForbidden means the user is authenticated with the wrong
	// role. This is terminal; there is no fallback route to try.
	DecisionForbidden
	// DecisionAllow means the operation may proceed.
	DecisionAllow
)

// Gate decides whether a session may perform an operation requiring the
// given role (empty means any authenticated user).
func Gate(snap Snapshot, required domain.Role) Decision {
	if snap.State == StateChecking {
		return DecisionWait
	}
	if snap.State != StateAuthenticated || snap.User == nil {
		return DecisionLogin
	}
	if required != "" && snap.User.Role != required {
		return DecisionForbidden
	}
	return DecisionAllow
}

// Require returns the session user when the gate allows the operation,
// ErrNotAuthenticated when there is no session, or ErrForbidden on a
// role mismatch. A checking session is treated as not authenticated;
// commands bootstrap before calling Require, so by then the check has
// settled.
func (m *Manager) Require(required domain.Role) (*domain.User, error) {
	snap := m.Snapshot()
	switch Gate(snap, required) {
	case DecisionAllow:
		return snap.User, nil
	case DecisionForbidden:
		return nil, ErrForbidden
	default:
		return nil, ErrNotAuthenticated
	}
}

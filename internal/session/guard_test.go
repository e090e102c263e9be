package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

func TestGate(t *testing.T) {
	teacher := &domain.User{ID: 1, Role: domain.RoleTeacher}
	student := &domain.User{ID: 2, Role: domain.RoleStudent}

	tests := []struct {
		name     string
		snap     Snapshot
		required domain.Role
		want     Decision
	}{
		{"checking waits", Snapshot{State: StateChecking}, "", DecisionWait},
		{"checking waits even with role", Snapshot{State: StateChecking}, domain.RoleTeacher, DecisionWait},
		{"anonymous needs login", Snapshot{State: StateAnonymous}, "", DecisionLogin},
		{"anonymous needs login for gated op", Snapshot{State: StateAnonymous}, domain.RoleStudent, DecisionLogin},
		{"authenticated without user needs login", Snapshot{State: StateAuthenticated}, "", DecisionLogin},
		{"any-role allows teacher", Snapshot{State: StateAuthenticated, User: teacher}, "", DecisionAllow},
		{"any-role allows student", Snapshot{State: StateAuthenticated, User: student}, "", DecisionAllow},
		{"matching role allows", Snapshot{State: StateAuthenticated, User: teacher}, domain.RoleTeacher, DecisionAllow},
		{"role mismatch is forbidden", Snapshot{State: StateAuthenticated, User: student}, domain.RoleTeacher, DecisionForbidden},
		{"forbidden both directions", Snapshot{State: StateAuthenticated, User: teacher}, domain.RoleStudent, DecisionForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Gate(tt.snap, tt.required))
		})
	}
}

func TestManager_Require(t *testing.T) {
	m := NewManager(&fakeAuthAPI{}, nil)
	_, err := m.Require(domain.RoleTeacher)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	m.settle(&domain.User{ID: 2, Role: domain.RoleStudent}, "")
	user, err := m.Require("")
	assert.NoError(t, err)
	assert.Equal(t, 2, user.ID)

	_, err = m.Require(domain.RoleTeacher)
	assert.ErrorIs(t, err, ErrForbidden)
}

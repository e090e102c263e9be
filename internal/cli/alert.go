package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harlamovads/Graph-description-training/internal/cli/formatter"
	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// alertTimeout is how long a transient alert stays visible.
const alertTimeout = 5 * time.Second

// clearAlertMsg clears the alert set under the same sequence number.
// A newer alert bumps the sequence, so a stale timer cannot clear it.
type clearAlertMsg struct{ seq int }

// alertState holds at most one live alert. Setting a new alert while
// one is visible replaces it and restarts the timeout.
type alertState struct {
	alert *domain.Alert
	seq   int
}

// Set replaces the current alert and returns the auto-clear timer.
func (a *alertState) Set(message string, typ domain.AlertType) tea.Cmd {
	a.alert = &domain.Alert{Message: message, Type: typ}
	a.seq++
	seq := a.seq
	return tea.Tick(alertTimeout, func(time.Time) tea.Msg {
		return clearAlertMsg{seq: seq}
	})
}

// Update handles the auto-clear message; other messages pass through.
func (a *alertState) Update(msg tea.Msg) {
	if clear, ok := msg.(clearAlertMsg); ok && clear.seq == a.seq {
		a.alert = nil
	}
}

// View renders the live alert, or "" when none is set.
func (a *alertState) View() string {
	if a.alert == nil {
		return ""
	}
	return formatter.Alert(*a.alert)
}

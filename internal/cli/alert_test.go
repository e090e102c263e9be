package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

func TestAlertState_SingleSlotOverwrite(t *testing.T) {
	var a alertState

	assert.Empty(t, a.View())

	cmd := a.Set("Task created successfully", domain.AlertSuccess)
	assert.NotNil(t, cmd)
	assert.Contains(t, a.View(), "Task created successfully")

	// A second alert replaces the first instead of queueing behind it.
	a.Set("Failed to assign task", domain.AlertError)
	view := a.View()
	assert.Contains(t, view, "Failed to assign task")
	assert.NotContains(t, view, "Task created successfully")
}

func TestAlertState_StaleTimerCannotClearNewerAlert(t *testing.T) {
	var a alertState

	a.Set("first", domain.AlertInfo)
	staleSeq := a.seq
	a.Set("second", domain.AlertInfo)

	// The first alert's timer fires after being replaced.
	a.Update(clearAlertMsg{seq: staleSeq})
	assert.Contains(t, a.View(), "second")

	// The live alert's own timer clears it.
	a.Update(clearAlertMsg{seq: a.seq})
	assert.Empty(t, a.View())
}

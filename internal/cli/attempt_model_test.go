package cli

import (
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlamovads/Graph-description-training/internal/credstore"
	"github.com/harlamovads/Graph-description-training/internal/teatest"
	"github.com/harlamovads/Graph-description-training/internal/testutil"
)

func TestAttemptModel_ResumesDraftAndAutosaves(t *testing.T) {
	backend := testutil.NewBackend(t)
	app, store := testApp(t, backend)

	ex := testutil.NewExercise("Tense drill", 2)
	require.NoError(t, store.SaveDraft(&credstore.AttemptDraft{
		ID:         "draft-1",
		ExerciseID: ex.ID,
		Responses:  map[string]string{"1": "The graph shows trend 1."},
	}))

	d := teatest.New(t, newAttemptModel(app, ex))

	// The saved response for sentence 1 is preloaded.
	m := d.Model.(attemptModel)
	assert.Equal(t, "The graph shows trend 1.", m.input.Value())

	// Moving to sentence 2 and typing autosaves on quit.
	d.Press(tea.KeyTab)
	d.Type("The graph shows trend 2.")
	d.Press(tea.KeyEsc)
	assert.True(t, d.Quitting)

	draft, err := store.Draft(ex.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft-1", draft.ID, "resuming keeps the draft ID")
	assert.Equal(t, map[string]string{
		"1": "The graph shows trend 1.",
		"2": "The graph shows trend 2.",
	}, draft.Responses)
}

func TestAttemptModel_IncompleteSubmitShowsCountAlert(t *testing.T) {
	backend := testutil.NewBackend(t)
	app, _ := testApp(t, backend)

	ex := testutil.NewExercise("Tense drill", 3)
	d := teatest.New(t, newAttemptModel(app, ex))

	d.Type("Only the first sentence.")
	d.Press(tea.KeyCtrlS)

	assert.False(t, d.Quitting)
	assert.Contains(t, d.View(), "Please complete all 2 remaining sentences")
}

func TestAttemptModel_SubmitClearsDraftAndQuitsWithScore(t *testing.T) {
	backend := testutil.NewBackend(t)
	app, store := testApp(t, backend)

	ex := testutil.NewExercise("Tense drill", 2)
	backend.JSON("POST /exercises/{id}/attempt", http.StatusCreated, map[string]any{
		"message": "Attempt submitted",
		"score":   75.0,
	})

	d := teatest.New(t, newAttemptModel(app, ex))
	d.Type("Fix one.")
	d.Press(tea.KeyEnter)
	d.Type("Fix two.")
	d.Press(tea.KeyEnter) // enter on the last sentence submits

	assert.True(t, d.Quitting)
	m := d.Model.(attemptModel)
	require.NotNil(t, m.result)
	assert.Equal(t, 75.0, m.result.Score)

	_, err := store.Draft(ex.ID)
	assert.ErrorIs(t, err, credstore.ErrNoDraft)
}

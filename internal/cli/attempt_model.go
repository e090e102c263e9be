package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/harlamovads/Graph-description-training/internal/api"
	"github.com/harlamovads/Graph-description-training/internal/cli/formatter"
	"github.com/harlamovads/Graph-description-training/internal/credstore"
	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// attemptSubmittedMsg carries the backend's scoring result.
type attemptSubmittedMsg struct {
	result *api.AttemptResult
}

// attemptErrMsg carries a failed submission.
type attemptErrMsg struct {
	err error
}

// attemptModel is the sentence-by-sentence attempt editor. Corrections
// are kept in a response map keyed by sentence ID and autosaved to the
// local draft store on every navigation, so quitting mid-attempt loses
// nothing.
type attemptModel struct {
	app      *App
	exercise *domain.Exercise

	idx       int
	responses map[string]string
	input     textinput.Model
	alert     alertState

	draftID    string
	drafted    bool
	submitting bool
	result     *api.AttemptResult
	quitting   bool
}

func newAttemptModel(app *App, ex *domain.Exercise) attemptModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 1000

	m := attemptModel{
		app:       app,
		exercise:  ex,
		responses: map[string]string{},
		input:     ti,
		draftID:   uuid.NewString(),
	}

	if draft, err := app.Store.Draft(ex.ID); err == nil {
		m.draftID = draft.ID
		m.drafted = true
		for id, text := range draft.Responses {
			m.responses[id] = text
		}
	}
	m.input.SetValue(m.responses[m.sentenceID()])

	return m
}

func (m attemptModel) sentenceID() string {
	return fmt.Sprint(m.exercise.Sentences[m.idx].ID)
}

// stash records the current input into the response map.
func (m *attemptModel) stash() {
	if text := strings.TrimSpace(m.input.Value()); text != "" {
		m.responses[m.sentenceID()] = text
	} else {
		delete(m.responses, m.sentenceID())
	}
}

// saveDraft persists the response map. One draft per exercise; saving
// replaces any previous one.
func (m *attemptModel) saveDraft() {
	if len(m.responses) == 0 {
		_ = m.app.Store.DeleteDraft(m.exercise.ID)
		m.drafted = false
		return
	}
	responses := make(map[string]string, len(m.responses))
	for id, text := range m.responses {
		responses[id] = text
	}
	err := m.app.Store.SaveDraft(&credstore.AttemptDraft{
		ID:         m.draftID,
		ExerciseID: m.exercise.ID,
		Responses:  responses,
		UpdatedAt:  time.Now(),
	})
	m.drafted = err == nil
}

// goTo moves to another sentence, stashing and autosaving first.
func (m *attemptModel) goTo(idx int) {
	if idx < 0 || idx >= len(m.exercise.Sentences) {
		return
	}
	m.stash()
	m.saveDraft()
	m.idx = idx
	m.input.SetValue(m.responses[m.sentenceID()])
	m.input.CursorEnd()
}

// submit validates locally and fires the scoring request. Incomplete
// attempts never reach the wire.
func (m *attemptModel) submit() tea.Cmd {
	m.stash()
	m.saveDraft()

	if missing := missingResponses(m.exercise.Sentences, m.responses); missing > 0 {
		return m.alert.Set(
			fmt.Sprintf("Please complete all %d remaining sentences", missing),
			domain.AlertError)
	}

	m.submitting = true
	app, exerciseID := m.app, m.exercise.ID
	responses := make(map[string]string, len(m.responses))
	for id, text := range m.responses {
		responses[id] = text
	}
	return func() tea.Msg {
		result, err := app.API.SubmitAttempt(context.Background(), exerciseID, responses)
		if err != nil {
			return attemptErrMsg{err: err}
		}
		return attemptSubmittedMsg{result: result}
	}
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (m attemptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m attemptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.alert.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.stash()
			m.saveDraft()
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.idx < len(m.exercise.Sentences)-1 {
				m.goTo(m.idx + 1)
				return m, nil
			}
			return m, m.submit()

		case tea.KeyCtrlS:
			return m, m.submit()

		case tea.KeyUp, tea.KeyShiftTab:
			m.goTo(m.idx - 1)
			return m, nil

		case tea.KeyDown, tea.KeyTab:
			m.goTo(m.idx + 1)
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case attemptSubmittedMsg:
		m.submitting = false
		m.result = msg.result
		_ = m.app.Store.DeleteDraft(m.exercise.ID)
		m.drafted = false
		m.quitting = true
		return m, tea.Quit

	case attemptErrMsg:
		m.submitting = false
		return m, m.alert.Set(api.Message(msg.err, "failed to submit attempt"), domain.AlertError)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m attemptModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	s := m.exercise.Sentences[m.idx]
	done := len(m.exercise.Sentences) - missingResponses(m.exercise.Sentences, m.responses)

	fmt.Fprintf(&b, "%s  %s\n", formatter.StyleBold.Render(m.exercise.Title),
		formatter.Dim(fmt.Sprintf("sentence %d/%d, %d completed", m.idx+1, len(m.exercise.Sentences), done)))
	if m.exercise.Instructions != "" {
		fmt.Fprintf(&b, "%s\n", formatter.Dim(m.exercise.Instructions))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %s %s\n", s.Content, formatter.SourceChip(s.Source))
	if len(s.ErrorTypes) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", formatter.Dim("focus:"), formatter.TagChips(s.ErrorTypes))
	}
	b.WriteString("\n")

	prompt := formatter.StylePurple.Render("correction") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.submitting {
		fmt.Fprintf(&b, "\n%s\n", formatter.Dim("submitting..."))
	} else if alert := m.alert.View(); alert != "" {
		fmt.Fprintf(&b, "\n%s\n", alert)
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("enter: next  tab/shift+tab: navigate  ctrl+s: submit  esc: save & quit"))

	return b.String()
}

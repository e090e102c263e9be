package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harlamovads/Graph-description-training/internal/api"
	"github.com/harlamovads/Graph-description-training/internal/cli/formatter"
	"github.com/harlamovads/Graph-description-training/internal/domain"
)

func newExerciseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Generate, browse and attempt correction exercises",
	}

	cmd.AddCommand(
		newExerciseGenerateCmd(app),
		newExerciseListCmd(app),
		newExerciseShowCmd(app),
		newExerciseAttemptCmd(app),
		newExerciseResultsCmd(app),
		newExerciseSentencesCmd(app),
		newExercisePublishCmd(app),
		newExerciseUpdateCmd(app),
	)

	return cmd
}

func newExerciseGenerateCmd(app *App) *cobra.Command {
	var (
		submissionID int
		sentence     string
		imageURL     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a draft exercise from a reviewed submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context(), app, domain.RoleTeacher); err != nil {
				return err
			}
			if strings.TrimSpace(sentence) == "" {
				return fmt.Errorf("--sentence is required")
			}

			resp, err := app.API.GenerateExercise(cmd.Context(), api.GenerateExerciseRequest{
				SubmissionID: submissionID,
				Sentence:     sentence,
				ImageURL:     imageURL,
			})
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "failed to generate exercise"))
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Alert(domain.Alert{
				Message: fmt.Sprintf("Exercise #%d generated, assigned to %s", resp.Exercise.ID, resp.AssignedTo.Username),
				Type:    domain.AlertSuccess,
			}))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExerciseDetail(&resp.Exercise))
			return nil
		},
	}

	cmd.Flags().IntVar(&submissionID, "submission", 0, "reviewed submission the exercise is built from")
	cmd.Flags().StringVar(&sentence, "sentence", "", "flagged sentence to drill on")
	cmd.Flags().StringVar(&imageURL, "image", "", "optional illustration URL")
	_ = cmd.MarkFlagRequired("submission")

	return cmd
}

func newExerciseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exercises visible to you",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context(), app, ""); err != nil {
				return err
			}
			exercises, err := app.API.Exercises(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "failed to load exercises"))
			}
			if len(exercises) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("no exercises"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExerciseList(exercises))
			return nil
		},
	}
}

func newExerciseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an exercise with its sentence set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := requireUser(cmd.Context(), app, ""); err != nil {
				return err
			}
			ex, err := app.API.Exercise(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "failed to load exercise"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExerciseDetail(ex))
			return nil
		},
	}
}

func newExerciseAttemptCmd(app *App) *cobra.Command {
	var responses []string

	cmd := &cobra.Command{
		Use:   "attempt <id>",
		Short: "Work through an exercise and submit corrections",
		Long: `Work through an exercise and submit corrections for scoring.

Interactively this opens a sentence-by-sentence editor that autosaves a
local draft, so a half-finished attempt can be resumed later. With
--response flags the attempt is submitted directly; every sentence must
have a response.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := requireUser(cmd.Context(), app, domain.RoleStudent); err != nil {
				return err
			}
			ex, err := app.API.Exercise(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "failed to load exercise"))
			}
			if len(ex.Sentences) == 0 {
				return fmt.Errorf("exercise #%d has no sentences", ex.ID)
			}

			if len(responses) > 0 {
				return runAttemptDirect(cmd, app, ex, responses)
			}
			if !app.interactive() {
				return fmt.Errorf("no terminal available; pass corrections with --response id=text")
			}
			return runAttemptTUI(cmd, app, ex)
		},
	}

	cmd.Flags().StringArrayVar(&responses, "response", nil, "corrected sentence as id=text (repeatable)")

	return cmd
}

// runAttemptDirect submits flag-provided responses, merged over any
// saved draft, after checking every sentence has one.
func runAttemptDirect(cmd *cobra.Command, app *App, ex *domain.Exercise, raw []string) error {
	merged := map[string]string{}
	if draft, err := app.Store.Draft(ex.ID); err == nil {
		for id, text := range draft.Responses {
			merged[id] = text
		}
	}
	flagged, err := parseResponses(raw)
	if err != nil {
		return err
	}
	for id, text := range flagged {
		merged[id] = text
	}

	if missing := missingResponses(ex.Sentences, merged); missing > 0 {
		return fmt.Errorf("Please complete all %d remaining sentences", missing)
	}

	result, err := app.API.SubmitAttempt(cmd.Context(), ex.ID, merged)
	if err != nil {
		return fmt.Errorf("%s", api.Message(err, "failed to submit attempt"))
	}
	_ = app.Store.DeleteDraft(ex.ID)

	fmt.Fprintln(cmd.OutOrStdout(), formatter.Alert(domain.Alert{
		Message: "Attempt submitted",
		Type:    domain.AlertSuccess,
	}))
	fmt.Fprintf(cmd.OutOrStdout(), "Score: %s\n", formatter.Score(result.Score))
	return nil
}

// runAttemptTUI drives the interactive attempt editor.
func runAttemptTUI(cmd *cobra.Command, app *App, ex *domain.Exercise) error {
	model := newAttemptModel(app, ex)
	final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return fmt.Errorf("attempt editor failed: %w", err)
	}

	m, ok := final.(attemptModel)
	if !ok {
		return nil
	}
	if m.result != nil {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Alert(domain.Alert{
			Message: "Attempt submitted",
			Type:    domain.AlertSuccess,
		}))
		fmt.Fprintf(cmd.OutOrStdout(), "Score: %s\n", formatter.Score(m.result.Score))
		return nil
	}
	if m.drafted {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(
			fmt.Sprintf("draft saved; resume with `graphtrain exercise attempt %d`", ex.ID)))
	}
	return nil
}

// parseResponses splits repeated id=text flag values into a response map.
func parseResponses(raw []string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for _, r := range raw {
		id, text, ok := strings.Cut(r, "=")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("invalid --response %q, expected id=text", r)
		}
		out[strings.TrimSpace(id)] = text
	}
	return out, nil
}

// missingResponses counts exercise sentences without a non-blank
// correction.
func missingResponses(sentences []domain.Sentence, responses map[string]string) int {
	missing := 0
	for _, s := range sentences {
		if strings.TrimSpace(responses[fmt.Sprint(s.ID)]) == "" {
			missing++
		}
	}
	return missing
}

func newExerciseResultsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "results <id>",
		Short: "List attempts recorded against an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := requireUser(cmd.Context(), app, ""); err != nil {
				return err
			}
			attempts, err := app.API.ExerciseAttempts(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "failed to load attempts"))
			}
			if len(attempts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("no attempts yet"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAttemptList(attempts))
			return nil
		},
	}
}

func newExerciseSentencesCmd(app *App) *cobra.Command {
	var (
		errorType  string
		showStatus bool
	)

	cmd := &cobra.Command{
		Use:   "sentences",
		Short: "Browse the sentence-similarity database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context(), app, domain.RoleTeacher); err != nil {
				return err
			}

			if showStatus {
				status, err := app.API.SentenceDatabaseStatus(cmd.Context())
				if err != nil {
					return fmt.Errorf("%s", api.Message(err, "failed to load database status"))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", status.Status)
				fmt.Fprintf(cmd.OutOrStdout(), "Sentences: %d\n", status.TotalSentences)
				if len(status.ErrorTypes) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Error types: %s\n", formatter.TagChips(status.ErrorTypes))
				}
				return nil
			}

			sentences, err := app.API.SentenceDatabase(cmd.Context(), errorType)
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "failed to load sentences"))
			}
			if len(sentences) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("no sentences match"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSentenceDatabase(sentences))
			return nil
		},
	}

	cmd.Flags().StringVar(&errorType, "error-type", "", "filter by GED error type (e.g. ORTH)")
	cmd.Flags().BoolVar(&showStatus, "status", false, "show database status instead of sentences")

	return cmd
}

func newExercisePublishCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "publish <id>",
		Short: "Publish a draft exercise to its student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := requireUser(cmd.Context(), app, domain.RoleTeacher); err != nil {
				return err
			}
			ex, err := app.API.PublishExercise(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "failed to publish exercise"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Alert(domain.Alert{
				Message: fmt.Sprintf("Exercise #%d published", ex.ID),
				Type:    domain.AlertSuccess,
			}))
			return nil
		},
	}
}

func newExerciseUpdateCmd(app *App) *cobra.Command {
	var (
		title        string
		instructions string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a draft exercise's title or instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := requireUser(cmd.Context(), app, domain.RoleTeacher); err != nil {
				return err
			}
			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("instructions") {
				return fmt.Errorf("nothing to update; pass --title or --instructions")
			}

			ex, err := app.API.Exercise(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "failed to load exercise"))
			}
			if !ex.Editable() {
				return fmt.Errorf("exercise #%d is published and can no longer be edited", ex.ID)
			}

			var req api.UpdateExerciseRequest
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("instructions") {
				req.Instructions = &instructions
			}

			updated, err := app.API.UpdateExercise(cmd.Context(), id, req)
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "failed to update exercise"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Alert(domain.Alert{
				Message: fmt.Sprintf("Exercise #%d updated", updated.ID),
				Type:    domain.AlertSuccess,
			}))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExerciseDetail(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new exercise title")
	cmd.Flags().StringVar(&instructions, "instructions", "", "new instructions")

	return cmd
}

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harlamovads/Graph-description-training/internal/api"
	"github.com/harlamovads/Graph-description-training/internal/cli/formatter"
	"github.com/harlamovads/Graph-description-training/internal/domain"
)

func newSubmissionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submission",
		Short: "Submit responses and review them",
	}

	cmd.AddCommand(
		newSubmissionCreateCmd(app),
		newSubmissionShowCmd(app),
		newSubmissionListCmd(app),
		newSubmissionReviewCmd(app),
	)

	return cmd
}

func newSubmissionCreateCmd(app *App) *cobra.Command {
	var content, file string

	cmd := &cobra.Command{
		Use:   "create TASK_ID",
		Short: "Submit a response to a task (student)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context(), app, domain.RoleStudent); err != nil {
				return err
			}
			taskID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if content == "" && file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading response file: %w", err)
				}
				content = string(data)
			}
			if content == "" && app.interactive() {
				if err := contentForm("Your response", &content).Run(); err != nil {
					return err
				}
			}
			// Validated locally; an empty response never reaches the wire.
			if strings.TrimSpace(content) == "" {
				return fmt.Errorf("response content is required")
			}

			sub, err := app.API.CreateSubmission(cmd.Context(), taskID, content)
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "Failed to submit response"))
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Alert(domain.Alert{Message: "Submission created successfully", Type: domain.AlertSuccess}))
			fmt.Fprintf(cmd.OutOrStdout(), "Submission #%d is being analyzed; check it with `graphtrain submission show %d`\n", sub.ID, sub.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Response text")
	cmd.Flags().StringVar(&file, "file", "", "Read the response from a file")

	return cmd
}

func newSubmissionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a submission with its grammar analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context(), app, ""); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			sub, err := app.API.Submission(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "Failed to load submission details"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSubmissionDetail(sub))
			return nil
		},
	}
}

func newSubmissionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List submissions (your own as a student, your tasks' as a teacher)",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context(), app, "")
			if err != nil {
				return err
			}

			var subs []*domain.Submission
			if user.IsTeacher() {
				subs, err = app.API.TeacherSubmissions(cmd.Context())
			} else {
				subs, err = app.API.StudentSubmissions(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "Failed to load submissions"))
			}
			if len(subs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No submissions found.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSubmissionList(subs))
			return nil
		},
	}
}

func newSubmissionReviewCmd(app *App) *cobra.Command {
	var feedback string

	cmd := &cobra.Command{
		Use:   "review ID",
		Short: "Review a submission and leave feedback (teacher)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context(), app, domain.RoleTeacher); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			// A submission is reviewed exactly once; fetch first so an
			// already-reviewed one is refused before any feedback is
			// typed or sent.
			sub, err := app.API.Submission(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "Failed to load submission details"))
			}
			if sub.Reviewed() {
				return fmt.Errorf("submission #%d has already been reviewed", id)
			}

			if feedback == "" && app.interactive() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSubmissionDetail(sub))
				if err := feedbackForm(&feedback).Run(); err != nil {
					return err
				}
			}
			if strings.TrimSpace(feedback) == "" {
				return fmt.Errorf("feedback is required")
			}

			reviewed, err := app.API.ReviewSubmission(cmd.Context(), id, feedback)
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "Failed to submit review"))
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Alert(domain.Alert{Message: "Review submitted", Type: domain.AlertSuccess}))
			fmt.Fprintf(cmd.OutOrStdout(), "Submission #%d is now %s\n", reviewed.ID, reviewed.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&feedback, "feedback", "", "Feedback text")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlamovads/Graph-description-training/internal/api"
	"github.com/harlamovads/Graph-description-training/internal/cli/formatter"
	"github.com/harlamovads/Graph-description-training/internal/domain"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (email == "" || password == "") && app.interactive() {
				if err := loginForm(&email, &password).Run(); err != nil {
					return err
				}
			}

			snap, err := app.Session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Alert(domain.Alert{Message: "Login successful", Type: domain.AlertSuccess}))
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", snap.User.Username, snap.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var username, email, password, role, invitation string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if role == "" {
				role = string(domain.RoleStudent)
			}
			if (username == "" || email == "" || password == "") && app.interactive() {
				if err := registerForm(&username, &email, &password, &role, &invitation).Run(); err != nil {
					return err
				}
			}

			snap, err := app.Session.Register(cmd.Context(), api.RegisterRequest{
				Username:       username,
				Email:          email,
				Password:       password,
				Role:           role,
				InvitationCode: invitation,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Alert(domain.Alert{Message: "Registration successful", Type: domain.AlertSuccess}))
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", snap.User.Username, snap.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&role, "role", "", "Role (teacher|student)")
	cmd.Flags().StringVar(&invitation, "invitation", "", "Invitation code (students)")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear stored tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Alert(domain.Alert{Message: "Logged out successfully", Type: domain.AlertSuccess}))
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context(), app, "")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> - %s\n", user.Username, user.Email, user.Role)
			return nil
		},
	}
}

func newStudentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List your students (teacher)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context(), app, domain.RoleTeacher); err != nil {
				return err
			}

			students, err := app.API.Students(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "Failed to load students"))
			}
			if len(students) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No students yet. Generate an invitation with `graphtrain invite`.")
				return nil
			}

			rows := make([][]string, 0, len(students))
			for _, s := range students {
				rows = append(rows, []string{fmt.Sprintf("%d", s.ID), s.Username, s.Email})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.RenderTable([]string{"ID", "USERNAME", "EMAIL"}, rows))
			return nil
		},
	}
}

func newInviteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "invite",
		Short: "Generate a student invitation code (teacher)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context(), app, domain.RoleTeacher); err != nil {
				return err
			}

			code, err := app.API.GenerateInvitation(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "Failed to generate invitation"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Invitation code: %s\n", formatter.StyleBold.Render(code))
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/harlamovads/Graph-description-training/internal/cli/formatter"
	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// huhTheme returns a custom huh theme using the Gruvbox palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// loginForm collects credentials for the login command.
func loginForm(email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(email).
				Validate(validateRequired("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(validateRequired("password")),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

// registerForm collects the registration fields. The invitation code is
// optional and only shown to students.
func registerForm(username, email, password, role, invitation *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(username).
				Validate(validateRequired("username")),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(email).
				Validate(validateRequired("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(validateRequired("password")),
			huh.NewSelect[string]().
				Title("Role").
				Options(
					huh.NewOption("Student", string(domain.RoleStudent)),
					huh.NewOption("Teacher", string(domain.RoleTeacher)),
				).
				Value(role),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Invitation code (optional)").
				Description("Students can enter a teacher's invitation code").
				Value(invitation),
		).WithHideFunc(func() bool { return *role != string(domain.RoleStudent) }),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

// contentForm collects a multi-line writing response.
func contentForm(title string, content *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(title).
				Value(content).
				Validate(validateRequired("content")),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

// taskForm collects the task-creation fields.
func taskForm(title, description, imagePath *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(title).
				Validate(validateRequired("title")),
			huh.NewText().
				Title("Description").
				Value(description).
				Validate(validateRequired("description")),
			huh.NewInput().
				Title("Image path").
				Placeholder("chart.png").
				Value(imagePath),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

// feedbackForm collects teacher feedback for a submission review.
func feedbackForm(feedback *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Feedback").
				Value(feedback).
				Validate(validateRequired("feedback")),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

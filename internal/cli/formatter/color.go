package formatter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders s in the dim style.
func Dim(s string) string { return StyleDim.Render(s) }

// Alert renders a transient notification line in its type's color.
func Alert(a domain.Alert) string {
	switch a.Type {
	case domain.AlertSuccess:
		return StyleGreen.Render("✓ " + a.Message)
	case domain.AlertError:
		return StyleRed.Render("✗ " + a.Message)
	default:
		return StyleBlue.Render("· " + a.Message)
	}
}

// SubmissionStatus returns a colored status indicator for a submission.
func SubmissionStatus(status domain.SubmissionStatus) string {
	switch status {
	case domain.SubmissionReviewed:
		return StyleGreen.Render("● reviewed")
	case domain.SubmissionSubmitted:
		return StyleYellow.Render("● submitted")
	default:
		return StyleDim.Render("● " + string(status))
	}
}

// ExerciseStatus returns a colored status indicator for an exercise.
func ExerciseStatus(status domain.ExerciseStatus) string {
	switch status {
	case domain.ExercisePublished:
		return StyleGreen.Render("● published")
	case domain.ExerciseDraft:
		return StyleYellow.Render("● draft")
	default:
		return StyleDim.Render("● " + string(status))
	}
}

// SourceChip labels a sentence's origin.
func SourceChip(source domain.SentenceSource) string {
	switch source {
	case domain.SourceDatabase:
		return StyleBlue.Render("[database]")
	case domain.SourceOriginal:
		return StylePurple.Render("[your submission]")
	default:
		return ""
	}
}

// TagChips renders GED tag labels as a space-separated chip row.
func TagChips(tags []string) string {
	out := ""
	for i, tag := range tags {
		if i > 0 {
			out += " "
		}
		out += StyleYellow.Render("‹" + tag + "›")
	}
	return out
}

// Score renders a percentage score, colored by band.
func Score(score float64) string {
	s := fmt.Sprintf("%.0f%%", score)
	switch {
	case score >= 80:
		return StyleGreen.Render(s)
	case score >= 50:
		return StyleYellow.Render(s)
	default:
		return StyleRed.Render(s)
	}
}

package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// FormatExerciseList renders exercises as a table.
func FormatExerciseList(exercises []*domain.Exercise) string {
	headers := []string{"ID", "TITLE", "SENTENCES", "STATUS", "ATTEMPTS"}
	rows := make([][]string, 0, len(exercises))
	for _, e := range exercises {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.Title,
			strconv.Itoa(len(e.Sentences)),
			ExerciseStatus(e.Status),
			strconv.Itoa(len(e.Attempts)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatExerciseDetail renders one exercise with its sentence set.
func FormatExerciseDetail(e *domain.Exercise) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleBold.Render(e.Title), ExerciseStatus(e.Status))
	fmt.Fprintf(&b, "%s\n\n", e.Instructions)

	original, database := 0, 0
	for _, s := range e.Sentences {
		if s.Source == domain.SourceDatabase {
			database++
		} else {
			original++
		}
	}
	fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("%d sentences (%d from your submission, %d from database)",
		len(e.Sentences), original, database)))

	for i, s := range e.Sentences {
		fmt.Fprintf(&b, "\n  %d. %s %s\n", i+1, s.Content, SourceChip(s.Source))
		if len(s.ErrorTypes) > 0 {
			fmt.Fprintf(&b, "     %s %s\n", Dim("focus:"), TagChips(s.ErrorTypes))
		}
	}
	return b.String()
}

// FormatAttemptList renders an exercise's recorded attempts.
func FormatAttemptList(attempts []*domain.Attempt) string {
	headers := []string{"ID", "STUDENT", "SCORE", "COMPLETED"}
	rows := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		student := Dim("—")
		if a.Student != nil {
			student = a.Student.Username
		}
		rows = append(rows, []string{
			strconv.Itoa(a.ID),
			student,
			Score(a.Score),
			Dim(a.CompletedAt),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSentenceDatabase renders database sentences with their GED tags.
func FormatSentenceDatabase(sentences []*domain.DatabaseSentence) string {
	headers := []string{"ID", "SENTENCE", "TAGS"}
	rows := make([][]string, 0, len(sentences))
	for _, s := range sentences {
		labels := make([]string, 0, len(s.ErrorTags))
		for _, tag := range s.ErrorTags {
			if l := tag.Label(); l != "" {
				labels = append(labels, l)
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			s.Text,
			TagChips(labels),
		})
	}
	return RenderTable(headers, rows)
}

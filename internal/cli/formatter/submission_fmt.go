package formatter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// analysisSummary is the loosely-typed slice of the backend's analysis
// payload the terminal can usefully show. The payload is backend-owned;
// fields beyond these are ignored, and a payload that doesn't match is
// shown as "analysis available" without detail.
type analysisSummary struct {
	TotalErrors int `json:"total_errors"`
	Sentences   []struct {
		Text   string `json:"text"`
		Errors []struct {
			Type string `json:"type"`
		} `json:"errors"`
	} `json:"sentences"`
}

// FormatSubmissionList renders submissions as a table.
func FormatSubmissionList(subs []*domain.Submission) string {
	headers := []string{"ID", "TASK", "STATUS", "SUBMITTED"}
	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		task := Dim("—")
		if s.Task != nil {
			task = s.Task.Title
		}
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			task,
			SubmissionStatus(s.Status),
			Dim(s.SubmittedAt),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSubmissionDetail renders one submission: content, grammar
// analysis summary, and teacher feedback when present.
func FormatSubmissionDetail(s *domain.Submission) string {
	var b strings.Builder

	title := fmt.Sprintf("Submission #%d", s.ID)
	if s.Task != nil {
		title = fmt.Sprintf("Submission #%d: %s", s.ID, s.Task.Title)
	}
	fmt.Fprintf(&b, "%s  %s\n\n", StyleBold.Render(title), SubmissionStatus(s.Status))

	fmt.Fprintf(&b, "%s\n%s\n", StyleHeader.Render("Response"), s.Content)

	fmt.Fprintf(&b, "\n%s\n%s\n", StyleHeader.Render("Grammar analysis"), FormatAnalysis(s.AnalysisResult))

	if s.TeacherFeedback != "" {
		fmt.Fprintf(&b, "\n%s\n%s\n", StyleHeader.Render("Teacher feedback"), s.TeacherFeedback)
		if s.ReviewedAt != nil {
			fmt.Fprintf(&b, "%s\n", Dim("reviewed "+*s.ReviewedAt))
		}
	}

	return b.String()
}

// FormatAnalysis renders the backend's analysis payload: per-sentence
// GED tags when the payload shape is recognized, a plain availability
// note otherwise. Pending analysis (null payload) is stated as such.
func FormatAnalysis(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return Dim("analysis pending")
	}

	var summary analysisSummary
	if err := json.Unmarshal(raw, &summary); err != nil || len(summary.Sentences) == 0 {
		return Dim("analysis available")
	}

	var b strings.Builder
	if summary.TotalErrors == 0 {
		fmt.Fprintf(&b, "%s\n", StyleGreen.Render("no errors detected"))
	} else {
		fmt.Fprintf(&b, "%s\n", StyleYellow.Render(fmt.Sprintf("%d potential errors", summary.TotalErrors)))
	}
	for i, sentence := range summary.Sentences {
		fmt.Fprintf(&b, "  %d. %s", i+1, sentence.Text)
		if len(sentence.Errors) > 0 {
			types := make([]string, 0, len(sentence.Errors))
			for _, e := range sentence.Errors {
				types = append(types, e.Type)
			}
			fmt.Fprintf(&b, "  %s", TagChips(types))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

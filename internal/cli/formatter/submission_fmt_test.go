package formatter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

func TestFormatAnalysis(t *testing.T) {
	// Null or absent payloads mean the analysis is still running.
	assert.Contains(t, FormatAnalysis(nil), "analysis pending")
	assert.Contains(t, FormatAnalysis(json.RawMessage("null")), "analysis pending")

	// An unrecognized payload shape is acknowledged without detail.
	assert.Contains(t, FormatAnalysis(json.RawMessage(`{"verdict": "ok"}`)), "analysis available")
	assert.Contains(t, FormatAnalysis(json.RawMessage(`[1, 2]`)), "analysis available")

	out := FormatAnalysis(json.RawMessage(`{
		"total_errors": 2,
		"sentences": [
			{"text": "The graph show a trend.", "errors": [{"type": "VERB:SVA"}]},
			{"text": "It rises sharply.", "errors": []}
		]
	}`))
	assert.Contains(t, out, "2 potential errors")
	assert.Contains(t, out, "The graph show a trend.")
	assert.Contains(t, out, "VERB:SVA")
	assert.Contains(t, out, "It rises sharply.")
}

func TestFormatSubmissionDetail_FeedbackShownOnlyWhenPresent(t *testing.T) {
	reviewedAt := "2026-03-01T10:00:00"
	sub := &domain.Submission{
		ID:      4,
		Content: "The chart shows sales.",
		Status:  domain.SubmissionReviewed,
		Task:    &domain.Task{ID: 1, Title: "Sales chart"},

		TeacherFeedback: "Expand the overview paragraph.",
		ReviewedAt:      &reviewedAt,
	}

	out := FormatSubmissionDetail(sub)
	assert.Contains(t, out, "Submission #4: Sales chart")
	assert.Contains(t, out, "The chart shows sales.")
	assert.Contains(t, out, "Teacher feedback")
	assert.Contains(t, out, "Expand the overview paragraph.")
	assert.Contains(t, out, reviewedAt)

	unreviewed := &domain.Submission{ID: 5, Content: "text", Status: domain.SubmissionSubmitted}
	out = FormatSubmissionDetail(unreviewed)
	assert.NotContains(t, out, "Teacher feedback")
}

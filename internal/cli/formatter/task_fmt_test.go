package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

func TestFormatTaskList_StatusColumnOnlyForStudents(t *testing.T) {
	tasks := []*domain.Task{
		{ID: 1, Title: "Line graph"},
		{ID: 2, Title: "Bar chart", IsFromDatabase: true},
	}

	// Teacher view: no completion info.
	out := FormatTaskList(tasks, nil)
	assert.Contains(t, out, "Line graph")
	assert.Contains(t, out, "database")
	assert.NotContains(t, out, "STATUS")
	assert.NotContains(t, out, "pending")

	// Student view: every row carries a marker.
	out = FormatTaskList(tasks, map[int]bool{1: true})
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "pending")
}

func TestFormatTaskDetail(t *testing.T) {
	out := FormatTaskDetail(&domain.Task{
		ID:          3,
		Title:       "Pie chart",
		Description: "Describe the proportions.",
		ImageURL:    "/uploads/pie.png",
	})

	assert.Contains(t, out, "Pie chart")
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "/uploads/pie.png")
	assert.Contains(t, out, "Describe the proportions.")
	assert.NotContains(t, out, "from task database")
}

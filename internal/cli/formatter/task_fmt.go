package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// FormatTaskList renders tasks as a table. When completed is non-nil
// (student view), each row carries a pending/completed marker.
func FormatTaskList(tasks []*domain.Task, completed map[int]bool) string {
	headers := []string{"ID", "TITLE", "SOURCE"}
	if completed != nil {
		headers = append(headers, "STATUS")
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		source := "custom"
		if t.IsFromDatabase {
			source = "database"
		}
		row := []string{strconv.Itoa(t.ID), t.Title, Dim(source)}
		if completed != nil {
			if completed[t.ID] {
				row = append(row, StyleGreen.Render("completed"))
			} else {
				row = append(row, StyleYellow.Render("pending"))
			}
		}
		rows = append(rows, row)
	}

	return RenderTable(headers, rows)
}

// FormatTaskDetail renders one task with its full description.
func FormatTaskDetail(t *domain.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleBold.Render(t.Title), Dim(fmt.Sprintf("#%d", t.ID)))
	if t.IsFromDatabase {
		fmt.Fprintf(&b, "%s\n", Dim("from task database"))
	}
	if t.ImageURL != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("image:"), t.ImageURL)
	}
	fmt.Fprintf(&b, "\n%s\n", t.Description)
	return b.String()
}

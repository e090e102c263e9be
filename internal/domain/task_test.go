package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterTasks(t *testing.T) {
	tasks := []*Task{
		{ID: 1, Title: "Line graph"},
		{ID: 2, Title: "Bar chart", IsFromDatabase: true},
		{ID: 3, Title: "Pie chart"},
	}
	submissions := []*Submission{
		{ID: 10, Task: &Task{ID: 1}},
		{ID: 11, Task: nil}, // no embedded task, ignored
	}

	ids := func(ts []*Task) []int {
		out := make([]int, 0, len(ts))
		for _, task := range ts {
			out = append(out, task.ID)
		}
		return out
	}

	assert.Equal(t, []int{1, 2, 3}, ids(FilterTasks(tasks, submissions, FilterAll)))
	assert.Equal(t, []int{2, 3}, ids(FilterTasks(tasks, submissions, FilterPending)))
	assert.Equal(t, []int{1}, ids(FilterTasks(tasks, submissions, FilterCompleted)))
	assert.Equal(t, []int{1, 3}, ids(FilterTasks(tasks, nil, FilterCustom)))
	assert.Equal(t, []int{2}, ids(FilterTasks(tasks, nil, FilterDatabase)))

	// Unknown filters pass everything through.
	assert.Equal(t, []int{1, 2, 3}, ids(FilterTasks(tasks, submissions, "bogus")))
}

func TestFilterTasks_NoSubmissions(t *testing.T) {
	tasks := []*Task{{ID: 1}, {ID: 2}}

	assert.Len(t, FilterTasks(tasks, nil, FilterPending), 2)
	assert.Empty(t, FilterTasks(tasks, nil, FilterCompleted))
}

func TestCompletedTaskIDs(t *testing.T) {
	done := CompletedTaskIDs([]*Submission{
		{Task: &Task{ID: 4}},
		{Task: &Task{ID: 4}}, // duplicate submission for same task
		{Task: &Task{ID: 7}},
		{},
	})
	assert.Equal(t, map[int]bool{4: true, 7: true}, done)
}

package domain

// Task is a writing prompt a teacher assigns to students. Tasks are
// immutable from the client's perspective once created.
type Task struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
	IsFromDatabase bool   `json:"is_from_database"`
	CreatorID      int    `json:"creator_id"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// TaskFilter selects a subset of a task list.
type TaskFilter string

const (
	FilterAll       TaskFilter = "all"
	FilterPending   TaskFilter = "pending"   // student: no submission yet
	FilterCompleted TaskFilter = "completed" // student: submission exists
	FilterCustom    TaskFilter = "custom"    // teacher: own tasks
	FilterDatabase  TaskFilter = "database"  // teacher: database-sourced tasks
)

// CompletedTaskIDs returns the set of task IDs the given submissions
// reference. Submissions without an embedded task are skipped.
func CompletedTaskIDs(submissions []*Submission) map[int]bool {
	done := make(map[int]bool, len(submissions))
	for _, s := range submissions {
		if s.Task != nil {
			done[s.Task.ID] = true
		}
	}
	return done
}

// FilterTasks applies a TaskFilter to tasks. The student filters
// (pending/completed) need the student's submissions to decide which
// tasks already have a response; the teacher filters ignore them.
func FilterTasks(tasks []*Task, submissions []*Submission, filter TaskFilter) []*Task {
	switch filter {
	case FilterPending, FilterCompleted:
		done := CompletedTaskIDs(submissions)
		var out []*Task
		for _, t := range tasks {
			if done[t.ID] == (filter == FilterCompleted) {
				out = append(out, t)
			}
		}
		return out
	case FilterCustom:
		var out []*Task
		for _, t := range tasks {
			if !t.IsFromDatabase {
				out = append(out, t)
			}
		}
		return out
	case FilterDatabase:
		var out []*Task
		for _, t := range tasks {
			if t.IsFromDatabase {
				out = append(out, t)
			}
		}
		return out
	default:
		return tasks
	}
}

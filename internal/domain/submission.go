package domain

import "encoding/json"

// Submission is a student's response to a task. The analysis_result
// field is produced asynchronously by the grammar service and consumed
// here as opaque data.
type Submission struct {
	ID              int              `json:"id"`
	AssignmentID    int              `json:"assignment_id"`
	StudentID       int              `json:"student_id"`
	ExerciseID      *int             `json:"exercise_id"`
	Content         string           `json:"content"`
	AnalysisResult  json.RawMessage  `json:"analysis_result"`
	TeacherFeedback string           `json:"teacher_feedback"`
	Status          SubmissionStatus `json:"status"`
	SubmittedAt     string           `json:"submitted_at"`
	ReviewedAt      *string          `json:"reviewed_at"`

	// Embedded on some endpoints only.
	Task    *Task `json:"task,omitempty"`
	Student *User `json:"student,omitempty"`
}

// Reviewed reports whether the submission has already been reviewed.
// A reviewed submission cannot be reviewed again from this client.
func (s *Submission) Reviewed() bool {
	return s.Status == SubmissionReviewed
}

package domain

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{
	"teacher": true, "student": true,
}

type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionReviewed  SubmissionStatus = "reviewed"
)

type ExerciseStatus string

const (
	ExerciseDraft     ExerciseStatus = "draft"
	ExercisePublished ExerciseStatus = "published"
)

type SentenceSource string

const (
	SourceOriginal SentenceSource = "original"
	SourceDatabase SentenceSource = "database"
)

type AlertType string

const (
	AlertSuccess AlertType = "success"
	AlertError   AlertType = "error"
	AlertInfo    AlertType = "info"
)

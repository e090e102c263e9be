package domain

import "encoding/json"

// Sentence is one item of an exercise: either the flagged sentence from
// the student's own submission or a database-matched sentence sharing
// its error pattern. ErrorTypes carries GED category labels (e.g. ORTH,
// VERB) attached by the backend.
type Sentence struct {
	ID         int            `json:"id"`
	Content    string         `json:"content"`
	Source     SentenceSource `json:"source"`
	ErrorTypes []string       `json:"error_types"`
}

// Exercise is a correction drill generated from a reviewed submission.
// Title, instructions and the sentence set are editable only while the
// exercise is a draft; publishing is one-way.
type Exercise struct {
	ID           int            `json:"id"`
	CreatorID    int            `json:"creator_id"`
	Title        string         `json:"title"`
	Instructions string         `json:"instructions"`
	Sentences    []Sentence     `json:"sentences"`
	ImageURL     string         `json:"image_url"`
	Status       ExerciseStatus `json:"status"`
	CreatedAt    string         `json:"created_at,omitempty"`
	Attempts     []Attempt      `json:"attempts,omitempty"`
}

// Editable reports whether the exercise still accepts updates.
func (e *Exercise) Editable() bool {
	return e.Status == ExerciseDraft
}

// Attempt is a student's completed run through an exercise. Responses
// map sentence IDs (as JSON object keys, so strings) to corrected text.
// Score and analysis are backend-computed and read-only here.
type Attempt struct {
	ID             int               `json:"id"`
	StudentID      int               `json:"student_id"`
	Responses      map[string]string `json:"responses"`
	AnalysisResult json.RawMessage   `json:"analysis_result"`
	Score          float64           `json:"score"`
	CompletedAt    string            `json:"completed_at"`
	Student        *User             `json:"student,omitempty"`
}

// ErrorTag is a GED tag attached to a database sentence. The backend
// emits both native and coarse first-level tags; unknown fields are
// ignored.
type ErrorTag struct {
	NativeTag     string `json:"native_tag,omitempty"`
	FirstLevelTag string `json:"first_level_tag,omitempty"`
}

// Label returns the most specific tag name available.
func (t ErrorTag) Label() string {
	if t.NativeTag != "" {
		return t.NativeTag
	}
	return t.FirstLevelTag
}

// DatabaseSentence is an entry of the backend's sentence-similarity
// database, browsable by teachers when composing exercises.
type DatabaseSentence struct {
	ID        int        `json:"id"`
	Text      string     `json:"text"`
	ErrorTags []ErrorTag `json:"error_tags"`
}

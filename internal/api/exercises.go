package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// GenerateExerciseRequest carries the fields for POST /exercises/generate:
// the reviewed submission, the flagged sentence to build the drill
// around, and an optional illustration.
type GenerateExerciseRequest struct {
	SubmissionID int    `json:"submission_id"`
	Sentence     string `json:"sentence"`
	ImageURL     string `json:"image_url,omitempty"`
}

// GenerateExerciseResponse is the generation result: the draft exercise
// plus the student it is assigned to.
type GenerateExerciseResponse struct {
	Message    string          `json:"message"`
	Exercise   domain.Exercise `json:"exercise"`
	AssignedTo domain.User     `json:"assigned_to"`
}

// AttemptResult is the backend's scoring of a submitted attempt. The
// analysis payload is opaque to the client.
type AttemptResult struct {
	Message  string          `json:"message"`
	Score    float64         `json:"score"`
	Analysis json.RawMessage `json:"analysis"`
}

// SentenceDatabaseStatus describes the sentence-similarity database.
type SentenceDatabaseStatus struct {
	Status         string   `json:"status"`
	TotalSentences int      `json:"total_sentences"`
	ErrorTypes     []string `json:"error_types"`
}

// UpdateExerciseRequest carries the draft-only editable fields of
// PUT /exercises/:id/update. Nil fields are left unchanged.
type UpdateExerciseRequest struct {
	Title        *string           `json:"title,omitempty"`
	Instructions *string           `json:"instructions,omitempty"`
	Sentences    []domain.Sentence `json:"sentences,omitempty"`
}

// GenerateExercise creates a draft exercise from a submission's flagged
// sentence plus database-matched sentences sharing its error pattern.
func (c *Client) GenerateExercise(ctx context.Context, req GenerateExerciseRequest) (*GenerateExerciseResponse, error) {
	var resp GenerateExerciseResponse
	if err := c.do(ctx, http.MethodPost, "/exercises/generate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Exercises lists the exercises visible to the current user: all own
// exercises for teachers, published ones for students.
func (c *Client) Exercises(ctx context.Context) ([]*domain.Exercise, error) {
	var resp struct {
		Exercises []*domain.Exercise `json:"exercises"`
	}
	if err := c.do(ctx, http.MethodGet, "/exercises", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Exercises, nil
}

// Exercise fetches one exercise by ID.
func (c *Client) Exercise(ctx context.Context, id int) (*domain.Exercise, error) {
	var ex domain.Exercise
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/exercises/%d", id), nil, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// SubmitAttempt submits corrected sentences for scoring. Responses map
// sentence IDs to the student's corrections.
func (c *Client) SubmitAttempt(ctx context.Context, exerciseID int, responses map[string]string) (*AttemptResult, error) {
	body := struct {
		Responses map[string]string `json:"responses"`
	}{Responses: responses}

	var resp AttemptResult
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/exercises/%d/attempt", exerciseID), body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExerciseAttempts lists the attempts recorded against an exercise.
func (c *Client) ExerciseAttempts(ctx context.Context, exerciseID int) ([]*domain.Attempt, error) {
	var resp struct {
		Attempts []*domain.Attempt `json:"attempts"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/exercises/%d/attempts", exerciseID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Attempts, nil
}

// SentenceDatabase lists database sentences, optionally filtered by GED
// error type.
func (c *Client) SentenceDatabase(ctx context.Context, errorType string) ([]*domain.DatabaseSentence, error) {
	path := "/exercises/sentence-database"
	if errorType != "" {
		path = query(path, map[string]string{"error_type": errorType})
	}
	var resp struct {
		Sentences []*domain.DatabaseSentence `json:"sentences"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Sentences, nil
}

// SentenceDatabaseStatus reports whether the sentence database is
// loaded and which error types it covers.
func (c *Client) SentenceDatabaseStatus(ctx context.Context) (*SentenceDatabaseStatus, error) {
	var resp SentenceDatabaseStatus
	if err := c.do(ctx, http.MethodGet, "/exercises/sentence-database/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PublishExercise transitions a draft exercise to published. The
// transition is one-way; published exercises reject updates.
func (c *Client) PublishExercise(ctx context.Context, id int) (*domain.Exercise, error) {
	var resp struct {
		Message  string          `json:"message"`
		Exercise domain.Exercise `json:"exercise"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/exercises/%d/publish", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Exercise, nil
}

// UpdateExercise edits a draft exercise's title, instructions, or
// sentence set.
func (c *Client) UpdateExercise(ctx context.Context, id int, req UpdateExerciseRequest) (*domain.Exercise, error) {
	var resp struct {
		Message  string          `json:"message"`
		Exercise domain.Exercise `json:"exercise"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/exercises/%d/update", id), req, &resp); err != nil {
		return nil, err
	}
	return &resp.Exercise, nil
}

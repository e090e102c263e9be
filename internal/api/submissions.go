package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// CreateSubmission submits a student's response to an assigned task.
func (c *Client) CreateSubmission(ctx context.Context, taskID int, content string) (*domain.Submission, error) {
	body := struct {
		TaskID  int    `json:"task_id"`
		Content string `json:"content"`
	}{TaskID: taskID, Content: content}

	var resp struct {
		Message    string            `json:"message"`
		Submission domain.Submission `json:"submission"`
	}
	if err := c.do(ctx, http.MethodPost, "/submissions", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Submission, nil
}

// Submission fetches one submission, with its task embedded.
func (c *Client) Submission(ctx context.Context, id int) (*domain.Submission, error) {
	var sub domain.Submission
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/submissions/%d", id), nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// TeacherSubmissions lists all submissions against the teacher's tasks.
func (c *Client) TeacherSubmissions(ctx context.Context) ([]*domain.Submission, error) {
	return c.submissionList(ctx, "/submissions/teacher")
}

// StudentSubmissions lists the student's own submissions.
func (c *Client) StudentSubmissions(ctx context.Context) ([]*domain.Submission, error) {
	return c.submissionList(ctx, "/submissions/student")
}

func (c *Client) submissionList(ctx context.Context, path string) ([]*domain.Submission, error) {
	var resp struct {
		Submissions []*domain.Submission `json:"submissions"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Submissions, nil
}

// ReviewSubmission records teacher feedback and moves the submission to
// reviewed. The backend rejects a second review; the client additionally
// refuses to send one (see the submission review command).
func (c *Client) ReviewSubmission(ctx context.Context, id int, feedback string) (*domain.Submission, error) {
	body := struct {
		Feedback string `json:"feedback"`
	}{Feedback: feedback}

	var resp struct {
		Message    string            `json:"message"`
		Submission domain.Submission `json:"submission"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/submissions/%d/review", id), body, &resp); err != nil {
		return nil, err
	}
	return &resp.Submission, nil
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

// CreateTaskRequest carries the multipart fields for POST /tasks.
// ImagePath, when set, is uploaded under the "image" part; the backend
// requires one.
type CreateTaskRequest struct {
	Title          string
	Description    string
	IsFromDatabase bool
	ImagePath      string
}

// Tasks lists the tasks visible to the current user.
func (c *Client) Tasks(ctx context.Context) ([]*domain.Task, error) {
	var resp struct {
		Tasks []*domain.Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// Task fetches one task by ID.
func (c *Client) Task(ctx context.Context, id int) (*domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task with an optional image upload.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*domain.Task, error) {
	fields := map[string]string{
		"title":            req.Title,
		"description":      req.Description,
		"is_from_database": strconv.FormatBool(req.IsFromDatabase),
	}
	var resp struct {
		Message string      `json:"message"`
		Task    domain.Task `json:"task"`
	}
	if err := c.sendMultipart(ctx, "/tasks", fields, req.ImagePath, &resp); err != nil {
		return nil, err
	}
	return &resp.Task, nil
}

// AssignTask assigns a task to students with an optional due date
// (YYYY-MM-DD, empty for none).
func (c *Client) AssignTask(ctx context.Context, taskID int, studentIDs []int, dueDate string) error {
	body := struct {
		StudentIDs []int  `json:"student_ids"`
		DueDate    string `json:"due_date,omitempty"`
	}{StudentIDs: studentIDs, DueDate: dueDate}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/tasks/%d/assign", taskID), body, nil)
}

// DatabaseTasks lists the pre-built tasks of the task database.
func (c *Client) DatabaseTasks(ctx context.Context) ([]*domain.Task, error) {
	var resp struct {
		Tasks []*domain.Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/tasks/database", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/models"
)

// TaskService manages tasks across projects, including the status and
// assignment workflows of the board.
type TaskService struct {
	client *api.Client
}

func NewTaskService(client *api.Client) *TaskService {
	return &TaskService{client: client}
}

// TaskFilter narrows a task listing. Zero values mean "no filter".
type TaskFilter struct {
	ProjectID      int64
	Status         models.TaskStatus
	AssignedUserID int64
}

func (f TaskFilter) query() string {
	v := url.Values{}
	if f.ProjectID != 0 {
		v.Set("project_id", strconv.FormatInt(f.ProjectID, 10))
	}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.AssignedUserID != 0 {
		v.Set("assigned_user_id", strconv.FormatInt(f.AssignedUserID, 10))
	}
	return api.Query(v)
}

type TaskCreateInput struct {
	ProjectID      int64   `json:"project_id"`
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	AssignedUserID *int64  `json:"assigned_user_id,omitempty"`
	DueDate        *string `json:"due_date,omitempty"`
}

type TaskUpdateInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

func (s *TaskService) List(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	if filter.Status != "" {
		if err := validateStatus(filter.Status); err != nil {
			return nil, err
		}
	}
	return api.Do[[]models.Task](ctx, s.client, "/tasks/"+filter.query(), api.Options{
		Fallback: "Failed to load tasks",
	})
}

func (s *TaskService) Create(ctx context.Context, input TaskCreateInput) (models.Task, error) {
	if err := validateTitle(input.Title); err != nil {
		return models.Task{}, err
	}
	return api.Do[models.Task](ctx, s.client, "/tasks/", api.Options{
		Method:   http.MethodPost,
		Body:     input,
		Fallback: "Failed to create task",
	})
}

func (s *TaskService) Update(ctx context.Context, taskID int64, input TaskUpdateInput) (models.Task, error) {
	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return models.Task{}, err
		}
	}
	return api.Do[models.Task](ctx, s.client, fmt.Sprintf("/tasks/%d", taskID), api.Options{
		Method:   http.MethodPatch,
		Body:     input,
		Fallback: "Failed to update task",
	})
}

func (s *TaskService) UpdateStatus(ctx context.Context, taskID int64, status models.TaskStatus) (models.Task, error) {
	if err := validateStatus(status); err != nil {
		return models.Task{}, err
	}
	body := struct {
		Status models.TaskStatus `json:"status"`
	}{Status: status}

	return api.Do[models.Task](ctx, s.client, fmt.Sprintf("/tasks/%d/status", taskID), api.Options{
		Method:   http.MethodPatch,
		Body:     body,
		Fallback: "Failed to update task status",
	})
}

// Assign sets or, with a nil user ID, clears the task's assignee. The
// field is always present in the payload so the backend can tell
// "unassign" apart from "leave unchanged".
func (s *TaskService) Assign(ctx context.Context, taskID int64, assignedUserID *int64) (models.Task, error) {
	body := struct {
		AssignedUserID *int64 `json:"assigned_user_id"`
	}{AssignedUserID: assignedUserID}

	return api.Do[models.Task](ctx, s.client, fmt.Sprintf("/tasks/%d/assign", taskID), api.Options{
		Method:   http.MethodPatch,
		Body:     body,
		Fallback: "Failed to assign task",
	})
}

func (s *TaskService) Delete(ctx context.Context, taskID int64) error {
	_, err := s.client.Request(ctx, fmt.Sprintf("/tasks/%d", taskID), api.Options{
		Method:   http.MethodDelete,
		Fallback: "Failed to delete task",
	})
	return err
}

// MySummary returns the personal dashboard payload: the user's tasks, a
// per-status count, and how many projects they touch.
func (s *TaskService) MySummary(ctx context.Context) (models.TaskSummary, error) {
	return api.Do[models.TaskSummary](ctx, s.client, "/tasks/me/summary", api.Options{
		Fallback: "Failed to load my task summary",
	})
}

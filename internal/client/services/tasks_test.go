package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/models"
)

func taskJSON(id int64, status models.TaskStatus, assigned *int64) string {
	assignedJSON := "null"
	if assigned != nil {
		assignedJSON = fmt.Sprintf("%d", *assigned)
	}
	return fmt.Sprintf(`{"id":%d,"project_id":3,"project_name":"website","title":"Ship it",
		"status":%q,"assigned_user_id":%s,"created_by":1,
		"created_at":"2024-03-05T08:00:00","can_update":true}`, id, status, assignedJSON)
}

func TestTaskList_FilterQuery(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tasks/", r.URL.Path)
		gotQuery = r.URL.RawQuery
		respondJSON(w, http.StatusOK, envelope(t, `[`+taskJSON(1, models.StatusTodo, nil)+`]`))
	}))

	tasks, err := NewTaskService(c).List(context.Background(), TaskFilter{
		ProjectID: 3,
		Status:    models.StatusTodo,
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "project_id=3&status=todo", gotQuery)
}

func TestTaskList_NoFilters_NoQuery(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		respondJSON(w, http.StatusOK, envelope(t, `[]`))
	}))

	_, err := NewTaskService(c).List(context.Background(), TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestTaskList_InvalidStatusFilterRejectedLocally(t *testing.T) {
	var calls atomic.Int64
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	_, err := NewTaskService(c).List(context.Background(), TaskFilter{Status: "archived"})
	require.Error(t, err)
	assert.EqualValues(t, 0, calls.Load())
}

func TestTaskCreate(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/tasks/", r.URL.Path)

		var input TaskCreateInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		require.EqualValues(t, 3, input.ProjectID)
		require.Equal(t, "Ship it", input.Title)

		respondJSON(w, http.StatusCreated, envelope(t, taskJSON(21, models.StatusTodo, nil)))
	}))

	task, err := NewTaskService(c).Create(context.Background(), TaskCreateInput{
		ProjectID: 3,
		Title:     "Ship it",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 21, task.ID)
	assert.Equal(t, models.StatusTodo, task.Status)
}

// Round-trip across the workflow endpoints: the snapshot coming back from
// each PATCH reflects the last status and assignment applied, so feeding
// each response into the next call converges on the final state.
func TestTask_CreateStatusAssignRoundTrip(t *testing.T) {
	assignee := int64(9)

	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusCreated, envelope(t, taskJSON(21, models.StatusTodo, nil)))
	})
	mux.HandleFunc("/tasks/21/status", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		var body struct {
			Status models.TaskStatus `json:"status"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		respondJSON(w, http.StatusOK, envelope(t, taskJSON(21, body.Status, nil)))
	})
	mux.HandleFunc("/tasks/21/assign", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		var body struct {
			AssignedUserID *int64 `json:"assigned_user_id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		respondJSON(w, http.StatusOK, envelope(t, taskJSON(21, models.StatusInProgress, body.AssignedUserID)))
	})

	c := newTestClient(t, mux)
	svc := NewTaskService(c)
	ctx := context.Background()

	created, err := svc.Create(ctx, TaskCreateInput{ProjectID: 3, Title: "Ship it"})
	require.NoError(t, err)

	moved, err := svc.UpdateStatus(ctx, created.ID, models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, moved.Status)

	assigned, err := svc.Assign(ctx, moved.ID, &assignee)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, assigned.Status)
	require.NotNil(t, assigned.AssignedUserID)
	assert.Equal(t, assignee, *assigned.AssignedUserID)
}

func TestTaskAssign_NilSendsExplicitNull(t *testing.T) {
	var rawBody []byte
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawBody, _ = io.ReadAll(r.Body)
		respondJSON(w, http.StatusOK, envelope(t, taskJSON(21, models.StatusTodo, nil)))
	}))

	task, err := NewTaskService(c).Assign(context.Background(), 21, nil)
	require.NoError(t, err)
	assert.Nil(t, task.AssignedUserID)
	assert.JSONEq(t, `{"assigned_user_id":null}`, string(rawBody))
}

func TestTaskUpdate(t *testing.T) {
	title := "Ship it carefully"
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/tasks/21", r.URL.Path)
		respondJSON(w, http.StatusOK, envelope(t, taskJSON(21, models.StatusTodo, nil)))
	}))

	_, err := NewTaskService(c).Update(context.Background(), 21, TaskUpdateInput{Title: &title})
	require.NoError(t, err)
}

func TestTaskDelete(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/tasks/21", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, NewTaskService(c).Delete(context.Background(), 21))
}

func TestTaskMySummary(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tasks/me/summary", r.URL.Path)
		respondJSON(w, http.StatusOK, envelope(t, `{
			"tasks":[`+taskJSON(21, models.StatusDone, nil)+`],
			"status_counts":{"todo":2,"in-progress":1,"done":4},
			"total_projects":3}`))
	}))

	summary, err := NewTaskService(c).MySummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Tasks, 1)
	assert.Equal(t, 4, summary.StatusCounts[models.StatusDone])
	assert.Equal(t, 3, summary.TotalProjects)
}

func TestTaskUpdateStatus_InvalidStatusRejectedLocally(t *testing.T) {
	var calls atomic.Int64
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	_, err := NewTaskService(c).UpdateStatus(context.Background(), 21, "paused")
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.EqualValues(t, 0, calls.Load())
}

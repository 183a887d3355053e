package models

// TaskStatus is a task's workflow state.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

// Valid reports whether the status is one the backend accepts.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          int64      `json:"id"`
	ProjectID   int64      `json:"project_id"`
	ProjectName string     `json:"project_name"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     *string    `json:"due_date"`

	// Assignee fields are denormalized by the backend so lists render
	// without extra lookups.
	AssignedUserID    *int64  `json:"assigned_user_id"`
	AssignedUsername  *string `json:"assigned_username"`
	AssignedFirstName *string `json:"assigned_first_name"`
	AssignedLastName  *string `json:"assigned_last_name"`

	CreatedBy int64   `json:"created_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
	CanUpdate bool    `json:"can_update"`
}

// TaskSummary is the personal dashboard payload from /tasks/me/summary.
type TaskSummary struct {
	Tasks         []Task             `json:"tasks"`
	StatusCounts  map[TaskStatus]int `json:"status_counts"`
	TotalProjects int                `json:"total_projects"`
}

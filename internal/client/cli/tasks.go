package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/client/services"
)

func printTask(w io.Writer, t models.Task) {
	assignee := "-"
	if t.AssignedUsername != nil {
		assignee = *t.AssignedUsername
	}
	due := ""
	if t.DueDate != nil {
		due = "  due " + *t.DueDate
	}
	fmt.Fprintf(w, "%4d  [%-11s] %-32s %-16s %s%s\n", t.ID, t.Status, t.Title, assignee, t.ProjectName, due)
}

// Tasks lists tasks, optionally narrowed to one project.
func (a *App) Tasks(ctx context.Context, args []string) error {
	filter := services.TaskFilter{}
	if len(args) > 0 {
		projectID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || projectID <= 0 {
			err = fmt.Errorf("invalid project id %q", args[0])
			a.reportErr(err)
			return err
		}
		filter.ProjectID = projectID
	}

	tasks, err := a.tasks.List(ctx, filter)
	if err != nil {
		a.reportErr(err)
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks found.")
		return nil
	}
	for _, t := range tasks {
		printTask(a.out, t)
	}
	return nil
}

// NewTask prompts for the task fields and creates a task.
func (a *App) NewTask(ctx context.Context) error {
	projectID, err := GetID(a.reader, nil, "Project id", a.out)
	if err != nil {
		a.reportErr(err)
		return err
	}

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	dueDate, err := getSimpleText(a.reader, "Due date YYYY-MM-DD (optional)", a.out)
	if err != nil {
		return err
	}

	input := services.TaskCreateInput{
		ProjectID:   projectID,
		Title:       title,
		Description: description,
	}
	if dueDate != "" {
		input.DueDate = &dueDate
	}

	task, err := a.tasks.Create(ctx, input)
	if err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Created task %q (id %d)\n", task.Title, task.ID)
	return nil
}

// EditTask updates a task's title, description or due date. Empty answers
// leave the field unchanged.
func (a *App) EditTask(ctx context.Context, args []string) error {
	taskID, err := GetID(a.reader, args, "Task id", a.out)
	if err != nil {
		a.reportErr(err)
		return err
	}

	title, err := getSimpleText(a.reader, "New title (empty to keep)", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "New description (empty to keep)", a.out)
	if err != nil {
		return err
	}
	dueDate, err := getSimpleText(a.reader, "New due date YYYY-MM-DD (empty to keep)", a.out)
	if err != nil {
		return err
	}

	input := services.TaskUpdateInput{}
	if title != "" {
		input.Title = &title
	}
	if description != "" {
		input.Description = &description
	}
	if dueDate != "" {
		input.DueDate = &dueDate
	}

	task, err := a.tasks.Update(ctx, taskID, input)
	if err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Updated task %q\n", task.Title)
	return nil
}

// MoveTask changes a task's workflow status.
func (a *App) MoveTask(ctx context.Context, args []string) error {
	taskID, err := GetID(a.reader, args, "Task id", a.out)
	if err != nil {
		a.reportErr(err)
		return err
	}

	status := ""
	if len(args) > 1 {
		status = args[1]
	} else {
		status, err = getSimpleText(a.reader, "New status (todo/in-progress/done)", a.out)
		if err != nil {
			return err
		}
	}

	task, err := a.tasks.UpdateStatus(ctx, taskID, models.TaskStatus(status))
	if err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Task %q is now %s\n", task.Title, task.Status)
	return nil
}

// AssignTask sets a task's assignee, or clears it when the user id is
// left empty.
func (a *App) AssignTask(ctx context.Context, args []string) error {
	taskID, err := GetID(a.reader, args, "Task id", a.out)
	if err != nil {
		a.reportErr(err)
		return err
	}

	raw := ""
	if len(args) > 1 {
		raw = args[1]
	} else {
		raw, err = getSimpleText(a.reader, "User id (empty to unassign)", a.out)
		if err != nil {
			return err
		}
	}

	var assignee *int64
	if raw = strings.TrimSpace(raw); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			err = fmt.Errorf("invalid user id %q", raw)
			a.reportErr(err)
			return err
		}
		assignee = &userID
	}

	task, err := a.tasks.Assign(ctx, taskID, assignee)
	if err != nil {
		a.reportErr(err)
		return err
	}

	if task.AssignedUsername != nil {
		fmt.Fprintf(a.out, "Task %q assigned to %s\n", task.Title, *task.AssignedUsername)
	} else {
		fmt.Fprintf(a.out, "Task %q is unassigned\n", task.Title)
	}
	return nil
}

// RemoveTask deletes a task.
func (a *App) RemoveTask(ctx context.Context, args []string) error {
	taskID, err := GetID(a.reader, args, "Task id", a.out)
	if err != nil {
		a.reportErr(err)
		return err
	}

	if err := a.tasks.Delete(ctx, taskID); err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Task deleted.")
	return nil
}

// Summary prints the personal dashboard: per-status counts and the
// user's own tasks.
func (a *App) Summary(ctx context.Context) error {
	summary, err := a.tasks.MySummary(ctx)
	if err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Your tasks across %d project(s):\n", summary.TotalProjects)
	for _, status := range []models.TaskStatus{models.StatusTodo, models.StatusInProgress, models.StatusDone} {
		fmt.Fprintf(a.out, "  %-11s %d\n", status, summary.StatusCounts[status])
	}
	for _, t := range summary.Tasks {
		printTask(a.out, t)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/client/services"
)

// Projects lists the projects of a team.
func (a *App) Projects(ctx context.Context, args []string) error {
	teamID, err := GetID(a.reader, args, "Team id", a.out)
	if err != nil {
		a.reportErr(err)
		return err
	}

	projects, err := a.projects.List(ctx, teamID)
	if err != nil {
		a.reportErr(err)
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintln(a.out, "No projects in this team yet.")
		return nil
	}
	for _, p := range projects {
		fmt.Fprintf(a.out, "%4d  %s\n", p.ID, p.Name)
	}
	return nil
}

// NewProject creates a project inside a team.
func (a *App) NewProject(ctx context.Context, args []string) error {
	teamID, err := GetID(a.reader, args, "Team id", a.out)
	if err != nil {
		a.reportErr(err)
		return err
	}

	name, err := getSimpleText(a.reader, "Project name", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	project, err := a.projects.Create(ctx, teamID, services.ProjectInput{
		Name:        name,
		Description: description,
	})
	if err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Created project %q (id %d)\n", project.Name, project.ID)
	return nil
}

// EditProject renames a project.
func (a *App) EditProject(ctx context.Context, args []string) error {
	projectID, err := GetID(a.reader, args, "Project id", a.out)
	if err != nil {
		a.reportErr(err)
		return err
	}

	name, err := getSimpleText(a.reader, "New name", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "New description (optional)", a.out)
	if err != nil {
		return err
	}

	project, err := a.projects.Update(ctx, projectID, services.ProjectInput{
		Name:        name,
		Description: description,
	})
	if err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Updated project %q\n", project.Name)
	return nil
}

// RemoveProject deletes a project.
func (a *App) RemoveProject(ctx context.Context, args []string) error {
	projectID, err := GetID(a.reader, args, "Project id", a.out)
	if err != nil {
		a.reportErr(err)
		return err
	}

	if err := a.projects.Delete(ctx, projectID); err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Project deleted.")
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/client/services"
)

// Teams lists the teams the current user belongs to.
func (a *App) Teams(ctx context.Context) error {
	teams, err := a.teams.List(ctx)
	if err != nil {
		a.reportErr(err)
		return err
	}

	if len(teams) == 0 {
		fmt.Fprintln(a.out, "No teams yet. Use 'newteam' to create one.")
		return nil
	}
	for _, t := range teams {
		role := "-"
		if t.CurrentUserRole != nil {
			role = string(*t.CurrentUserRole)
		}
		fmt.Fprintf(a.out, "%4d  %-24s %s\n", t.ID, t.Name, role)
	}
	return nil
}

// NewTeam prompts for a name/description and creates a team.
func (a *App) NewTeam(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Team name", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	team, err := a.teams.Create(ctx, services.CreateTeamInput{
		Name:        name,
		Description: description,
	})
	if err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Created team %q (id %d)\n", team.Name, team.ID)
	return nil
}

// Members lists the members of a team.
func (a *App) Members(ctx context.Context, args []string) error {
	teamID, err := GetID(a.reader, args, "Team id", a.out)
	if err != nil {
		a.reportErr(err)
		return err
	}

	members, err := a.teams.Members(ctx, teamID)
	if err != nil {
		a.reportErr(err)
		return err
	}

	for _, m := range members {
		fmt.Fprintf(a.out, "%4d  %-16s %-28s %s\n", m.UserID, m.Username, m.Email, m.Role)
	}
	return nil
}

// Invite adds a user to a team by username or email.
func (a *App) Invite(ctx context.Context, args []string) error {
	teamID, err := GetID(a.reader, args, "Team id", a.out)
	if err != nil {
		a.reportErr(err)
		return err
	}

	identifier, err := getSimpleText(a.reader, "Username or email to invite", a.out)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Role (owner/member, empty for member)", a.out)
	if err != nil {
		return err
	}

	member, err := a.teams.Invite(ctx, teamID, services.InviteMemberInput{
		Identifier: identifier,
		Role:       models.TeamRole(role),
	})
	if err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Invited %s as %s\n", member.Username, member.Role)
	return nil
}

package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/models"
)

// TeamService is the workspace directory: the teams the user belongs to
// and their memberships.
type TeamService struct {
	client *api.Client
}

func NewTeamService(client *api.Client) *TeamService {
	return &TeamService{client: client}
}

type CreateTeamInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type InviteMemberInput struct {
	Identifier string          `json:"identifier"`
	Role       models.TeamRole `json:"role,omitempty"`
}

func (s *TeamService) List(ctx context.Context) ([]models.Team, error) {
	return api.Do[[]models.Team](ctx, s.client, "/teams/", api.Options{
		Fallback: "Failed to load teams",
	})
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (models.Team, error) {
	if err := validateName("name", input.Name); err != nil {
		return models.Team{}, err
	}
	return api.Do[models.Team](ctx, s.client, "/teams/", api.Options{
		Method:   http.MethodPost,
		Body:     input,
		Fallback: "Failed to create team",
	})
}

func (s *TeamService) Members(ctx context.Context, teamID int64) ([]models.TeamMember, error) {
	return api.Do[[]models.TeamMember](ctx, s.client, fmt.Sprintf("/teams/%d/members", teamID), api.Options{
		Fallback: "Failed to load team members",
	})
}

// Invite adds a user to the team by username or email. Role defaults to
// member on the backend when omitted.
func (s *TeamService) Invite(ctx context.Context, teamID int64, input InviteMemberInput) (models.TeamMember, error) {
	if err := validateIdentifier(input.Identifier); err != nil {
		return models.TeamMember{}, err
	}
	if input.Role != "" && !input.Role.Valid() {
		return models.TeamMember{}, validationError("role", "Unknown team role")
	}
	return api.Do[models.TeamMember](ctx, s.client, fmt.Sprintf("/teams/%d/members/invite", teamID), api.Options{
		Method:   http.MethodPost,
		Body:     input,
		Fallback: "Failed to invite member",
	})
}

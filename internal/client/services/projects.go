package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/models"
)

// ProjectService manages the projects inside a team.
type ProjectService struct {
	client *api.Client
}

func NewProjectService(client *api.Client) *ProjectService {
	return &ProjectService{client: client}
}

type ProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (s *ProjectService) List(ctx context.Context, teamID int64) ([]models.Project, error) {
	return api.Do[[]models.Project](ctx, s.client, fmt.Sprintf("/teams/%d/projects", teamID), api.Options{
		Fallback: "Failed to load projects",
	})
}

func (s *ProjectService) Create(ctx context.Context, teamID int64, input ProjectInput) (models.Project, error) {
	if err := validateName("name", input.Name); err != nil {
		return models.Project{}, err
	}
	return api.Do[models.Project](ctx, s.client, fmt.Sprintf("/teams/%d/projects", teamID), api.Options{
		Method:   http.MethodPost,
		Body:     input,
		Fallback: "Failed to create project",
	})
}

func (s *ProjectService) Update(ctx context.Context, projectID int64, input ProjectInput) (models.Project, error) {
	if err := validateName("name", input.Name); err != nil {
		return models.Project{}, err
	}
	return api.Do[models.Project](ctx, s.client, fmt.Sprintf("/projects/%d", projectID), api.Options{
		Method:   http.MethodPatch,
		Body:     input,
		Fallback: "Failed to update project",
	})
}

func (s *ProjectService) Delete(ctx context.Context, projectID int64) error {
	_, err := s.client.Request(ctx, fmt.Sprintf("/projects/%d", projectID), api.Options{
		Method:   http.MethodDelete,
		Fallback: "Failed to delete project",
	})
	return err
}

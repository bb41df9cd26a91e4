package services

import (
	"fmt"

	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/utils"
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
	teamRepo    repository.TeamRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, teamRepo repository.TeamRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		teamRepo:    teamRepo,
	}
}

// ProjectInput represents input for creating or updating a project
type ProjectInput struct {
	Name   string
	TeamID *uint64
}

func (s *ProjectService) List(search string, params utils.PaginationParams) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.List(repository.ListFilter{
		Search:   cleanSearch(search),
		Page:     params.Page,
		PageSize: params.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// Get returns a project with its team and tasks
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id, "Team", "Tasks")
	if err != nil {
		return nil, translate("project", id, err)
	}
	return project, nil
}

func (s *ProjectService) Create(input ProjectInput) (*models.Project, error) {
	project := &models.Project{}
	if err := s.apply(project, input); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, translate("project", 0, err)
	}
	return s.Get(project.ID)
}

func (s *ProjectService) Update(id uint64, input ProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, translate("project", id, err)
	}
	if err := s.apply(project, input); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Update(project); err != nil {
		return nil, translate("project", id, err)
	}
	return s.Get(id)
}

// Delete removes the project; its tasks are kept without a project.
func (s *ProjectService) Delete(id uint64) error {
	return translate("project", id, s.projectRepo.Delete(id))
}

func (s *ProjectService) apply(project *models.Project, input ProjectInput) error {
	name, err := cleanName("name", input.Name, constants.MaxNameLength)
	if err != nil {
		return err
	}
	teamID := input.TeamID
	if teamID != nil && *teamID == 0 {
		teamID = nil
	}
	if teamID != nil {
		_, err := s.teamRepo.FindByID(*teamID)
		if err := checkExists("team", err); err != nil {
			return err
		}
	}

	project.Name = name
	project.TeamID = teamID
	project.Team = nil
	return nil
}

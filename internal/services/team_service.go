package services

import (
	"fmt"

	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/utils"
)

// TeamService handles team business logic
type TeamService struct {
	teamRepo   repository.TeamRepository
	workerRepo repository.WorkerRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository, workerRepo repository.WorkerRepository) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		workerRepo: workerRepo,
	}
}

// TeamInput represents input for creating or updating a team
type TeamInput struct {
	Name      string
	MemberIDs []uint64
}

func (s *TeamService) List(search string, params utils.PaginationParams) ([]models.Team, int64, error) {
	teams, total, err := s.teamRepo.List(repository.ListFilter{
		Search:   cleanSearch(search),
		Page:     params.Page,
		PageSize: params.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, total, nil
}

// Get returns a team with its members and projects
func (s *TeamService) Get(id uint64) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(id, "Members", "Projects")
	if err != nil {
		return nil, translate("team", id, err)
	}
	return team, nil
}

func (s *TeamService) Create(input TeamInput) (*models.Team, error) {
	name, memberIDs, err := s.clean(input)
	if err != nil {
		return nil, err
	}
	team := &models.Team{Name: name}
	if err := s.teamRepo.Create(team, memberIDs); err != nil {
		return nil, translate("team", 0, err)
	}
	return s.Get(team.ID)
}

func (s *TeamService) Update(id uint64, input TeamInput) (*models.Team, error) {
	name, memberIDs, err := s.clean(input)
	if err != nil {
		return nil, err
	}
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		return nil, translate("team", id, err)
	}
	team.Name = name
	if err := s.teamRepo.Update(team, memberIDs); err != nil {
		return nil, translate("team", id, err)
	}
	return s.Get(id)
}

// Delete removes the team, its memberships, and detaches its projects.
func (s *TeamService) Delete(id uint64) error {
	return translate("team", id, s.teamRepo.Delete(id))
}

func (s *TeamService) clean(input TeamInput) (string, []uint64, error) {
	name, err := cleanName("name", input.Name, constants.MaxNameLength)
	if err != nil {
		return "", nil, err
	}
	memberIDs := uniqueIDs(input.MemberIDs)
	if err := checkAllExist("members", memberIDs, s.workerRepo.CountByIDs); err != nil {
		return "", nil, err
	}
	return name, memberIDs, nil
}

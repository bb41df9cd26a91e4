package dto

import (
	"github.com/yukikurage/task-manager/internal/models"
)

// PositionDTO represents a position in API responses
type PositionDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// PositionDetailDTO adds the number of workers holding the position
type PositionDetailDTO struct {
	PositionDTO
	WorkerCount int64 `json:"worker_count"`
}

type TaskTypeDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TeamRefDTO is a team reference without its members
type TeamRefDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TeamDTO represents a team in API responses
type TeamDTO struct {
	ID       uint64          `json:"id"`
	Name     string          `json:"name"`
	Members  []WorkerRefDTO  `json:"members"`
	Projects []ProjectRefDTO `json:"projects,omitempty"`
}

// ProjectRefDTO is a project reference without relations
type ProjectRefDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID     uint64            `json:"id"`
	Name   string            `json:"name"`
	TeamID *uint64           `json:"team_id"`
	Team   *TeamRefDTO       `json:"team,omitempty"`
	Tasks  []TaskListItemDTO `json:"tasks,omitempty"`
}

func ToPositionDTO(position models.Position) PositionDTO {
	return PositionDTO{ID: position.ID, Name: position.Name}
}

func ToPositionDetailDTO(position models.Position, workerCount int64) PositionDetailDTO {
	return PositionDetailDTO{PositionDTO: ToPositionDTO(position), WorkerCount: workerCount}
}

func ToTaskTypeDTO(taskType models.TaskType) TaskTypeDTO {
	return TaskTypeDTO{ID: taskType.ID, Name: taskType.Name}
}

func ToTagDTO(tag models.Tag) TagDTO {
	return TagDTO{ID: tag.ID, Name: tag.Name}
}

func ToTeamRefDTO(team models.Team) TeamRefDTO {
	return TeamRefDTO{ID: team.ID, Name: team.Name}
}

// ToTeamDTO converts a Team model; members and projects are included when preloaded
func ToTeamDTO(team models.Team) TeamDTO {
	dto := TeamDTO{
		ID:      team.ID,
		Name:    team.Name,
		Members: make([]WorkerRefDTO, len(team.Members)),
	}
	for i, member := range team.Members {
		dto.Members[i] = ToWorkerRefDTO(member)
	}
	for _, project := range team.Projects {
		dto.Projects = append(dto.Projects, ProjectRefDTO{ID: project.ID, Name: project.Name})
	}
	return dto
}

// ToProjectDTO converts a Project model; team and tasks are included when preloaded
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:     project.ID,
		Name:   project.Name,
		TeamID: project.TeamID,
	}
	if project.Team != nil {
		team := ToTeamRefDTO(*project.Team)
		dto.Team = &team
	}
	for _, task := range project.Tasks {
		dto.Tasks = append(dto.Tasks, ToTaskListItemDTO(task))
	}
	return dto
}

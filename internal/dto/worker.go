package dto

import (
	"time"

	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/services"
)

// WorkerRefDTO is the short form of a worker used inside other resources
type WorkerRefDTO struct {
	ID          uint64 `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// WorkerDTO represents a worker in API responses
type WorkerDTO struct {
	ID          uint64       `json:"id"`
	Username    string       `json:"username"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Email       string       `json:"email"`
	DisplayName string       `json:"display_name"`
	PositionID  uint64       `json:"position_id"`
	Position    *PositionDTO `json:"position,omitempty"`
	LastLoginAt *time.Time   `json:"last_login_at"`
}

// WorkerDetailDTO is a worker with teams and assigned tasks split by completion
type WorkerDetailDTO struct {
	WorkerDTO
	Teams           []TeamRefDTO      `json:"teams"`
	CompletedTasks  []TaskListItemDTO `json:"completed_tasks"`
	IncompleteTasks []TaskListItemDTO `json:"incomplete_tasks"`
}

func ToWorkerRefDTO(worker models.Worker) WorkerRefDTO {
	return WorkerRefDTO{
		ID:          worker.ID,
		Username:    worker.Username,
		DisplayName: worker.DisplayName(),
	}
}

// ToWorkerDTO converts a Worker model to WorkerDTO
func ToWorkerDTO(worker models.Worker) WorkerDTO {
	dto := WorkerDTO{
		ID:          worker.ID,
		Username:    worker.Username,
		FirstName:   worker.FirstName,
		LastName:    worker.LastName,
		Email:       worker.Email,
		DisplayName: worker.DisplayName(),
		PositionID:  worker.PositionID,
		LastLoginAt: worker.LastLoginAt,
	}

	// Include position if preloaded
	if worker.Position.ID != 0 {
		position := ToPositionDTO(worker.Position)
		dto.Position = &position
	}
	return dto
}

// ToWorkerDetailDTO converts the aggregated worker detail
func ToWorkerDetailDTO(detail services.WorkerDetail) WorkerDetailDTO {
	dto := WorkerDetailDTO{
		WorkerDTO:       ToWorkerDTO(detail.Worker),
		Teams:           make([]TeamRefDTO, len(detail.Worker.Teams)),
		CompletedTasks:  toTaskListItems(detail.CompletedTasks),
		IncompleteTasks: toTaskListItems(detail.IncompleteTasks),
	}
	for i, team := range detail.Worker.Teams {
		dto.Teams[i] = ToTeamRefDTO(team)
	}
	return dto
}

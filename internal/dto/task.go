package dto

import (
	"time"

	"github.com/yukikurage/task-manager/internal/models"
)

// TaskListItemDTO represents a task in list responses
type TaskListItemDTO struct {
	ID            uint64              `json:"id"`
	Name          string              `json:"name"`
	DisplayName   string              `json:"display_name"`
	Deadline      *time.Time          `json:"deadline"`
	IsCompleted   bool                `json:"is_completed"`
	Priority      models.TaskPriority `json:"priority"`
	PriorityLabel string              `json:"priority_label"`
	TaskTypeID    uint64              `json:"task_type_id"`
	TaskType      *TaskTypeDTO        `json:"task_type,omitempty"`
	Assignees     []WorkerRefDTO      `json:"assignees,omitempty"`
	Tags          []TagDTO            `json:"tags,omitempty"`
}

// TaskDTO represents a task with all of its relations
type TaskDTO struct {
	TaskListItemDTO
	Description string         `json:"description"`
	ProjectID   *uint64        `json:"project_id"`
	Project     *ProjectRefDTO `json:"project,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ToTaskListItemDTO converts a Task model; relations are included when preloaded
func ToTaskListItemDTO(task models.Task) TaskListItemDTO {
	dto := TaskListItemDTO{
		ID:            task.ID,
		Name:          task.Name,
		DisplayName:   task.DisplayName(),
		Deadline:      task.Deadline,
		IsCompleted:   task.IsCompleted,
		Priority:      task.Priority,
		PriorityLabel: task.Priority.Label(),
		TaskTypeID:    task.TaskTypeID,
	}

	if task.TaskType.ID != 0 {
		taskType := ToTaskTypeDTO(task.TaskType)
		dto.TaskType = &taskType
	}
	for _, assignee := range task.Assignees {
		dto.Assignees = append(dto.Assignees, ToWorkerRefDTO(assignee))
	}
	for _, tag := range task.Tags {
		dto.Tags = append(dto.Tags, ToTagDTO(tag))
	}
	return dto
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		TaskListItemDTO: ToTaskListItemDTO(task),
		Description:     task.Description,
		ProjectID:       task.ProjectID,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
	if task.Project != nil {
		dto.Project = &ProjectRefDTO{ID: task.Project.ID, Name: task.Project.Name}
	}
	return dto
}

func toTaskListItems(tasks []models.Task) []TaskListItemDTO {
	items := make([]TaskListItemDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskListItemDTO(task)
	}
	return items
}

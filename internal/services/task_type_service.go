package services

import (
	"fmt"

	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/utils"
)

// TaskTypeService handles task type business logic
type TaskTypeService struct {
	taskTypeRepo repository.TaskTypeRepository
}

// NewTaskTypeService creates a new TaskTypeService
func NewTaskTypeService(taskTypeRepo repository.TaskTypeRepository) *TaskTypeService {
	return &TaskTypeService{taskTypeRepo: taskTypeRepo}
}

func (s *TaskTypeService) List(search string, params utils.PaginationParams) ([]models.TaskType, int64, error) {
	taskTypes, total, err := s.taskTypeRepo.List(repository.ListFilter{
		Search:   cleanSearch(search),
		Page:     params.Page,
		PageSize: params.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list task types: %w", err)
	}
	return taskTypes, total, nil
}

func (s *TaskTypeService) Get(id uint64) (*models.TaskType, error) {
	taskType, err := s.taskTypeRepo.FindByID(id)
	if err != nil {
		return nil, translate("task type", id, err)
	}
	return taskType, nil
}

func (s *TaskTypeService) Create(name string) (*models.TaskType, error) {
	name, err := cleanName("name", name, constants.MaxNameLength)
	if err != nil {
		return nil, err
	}
	taskType := &models.TaskType{Name: name}
	if err := s.taskTypeRepo.Create(taskType); err != nil {
		return nil, translate("task type", 0, err)
	}
	return taskType, nil
}

func (s *TaskTypeService) Update(id uint64, name string) (*models.TaskType, error) {
	name, err := cleanName("name", name, constants.MaxNameLength)
	if err != nil {
		return nil, err
	}
	taskType, err := s.taskTypeRepo.FindByID(id)
	if err != nil {
		return nil, translate("task type", id, err)
	}
	taskType.Name = name
	if err := s.taskTypeRepo.Update(taskType); err != nil {
		return nil, translate("task type", id, err)
	}
	return taskType, nil
}

// Delete removes a task type unless tasks still use it.
func (s *TaskTypeService) Delete(id uint64) error {
	return translate("task type", id, s.taskTypeRepo.Delete(id))
}

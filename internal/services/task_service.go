package services

import (
	"fmt"
	"time"

	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/utils"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo     repository.TaskRepository
	taskTypeRepo repository.TaskTypeRepository
	projectRepo  repository.ProjectRepository
	workerRepo   repository.WorkerRepository
	tagRepo      repository.TagRepository
	loc          *time.Location
	now          func() time.Time
}

// NewTaskService creates a new TaskService. Deadlines are compared by calendar
// date in loc.
func NewTaskService(
	taskRepo repository.TaskRepository,
	taskTypeRepo repository.TaskTypeRepository,
	projectRepo repository.ProjectRepository,
	workerRepo repository.WorkerRepository,
	tagRepo repository.TagRepository,
	loc *time.Location,
) *TaskService {
	if loc == nil {
		loc = time.UTC
	}
	return &TaskService{
		taskRepo:     taskRepo,
		taskTypeRepo: taskTypeRepo,
		projectRepo:  projectRepo,
		workerRepo:   workerRepo,
		tagRepo:      tagRepo,
		loc:          loc,
		now:          time.Now,
	}
}

// TaskInput represents input for creating or updating a task
type TaskInput struct {
	Name        string
	Description string
	Deadline    *time.Time
	Priority    models.TaskPriority
	TaskTypeID  uint64
	ProjectID   *uint64
	AssigneeIDs []uint64
	TagIDs      []uint64
}

// Location returns the time zone deadlines are evaluated in.
func (s *TaskService) Location() *time.Location {
	return s.loc
}

func (s *TaskService) List(search string, params utils.PaginationParams) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.List(repository.ListFilter{
		Search:   cleanSearch(search),
		Page:     params.Page,
		PageSize: params.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// Get returns a task with all of its relations
func (s *TaskService) Get(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id, "TaskType", "Project", "Assignees", "Tags")
	if err != nil {
		return nil, translate("task", id, err)
	}
	return task, nil
}

func (s *TaskService) Create(input TaskInput) (*models.Task, error) {
	task := &models.Task{}
	assigneeIDs, tagIDs, err := s.apply(task, input)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.Create(task, assigneeIDs, tagIDs); err != nil {
		return nil, translate("task", 0, err)
	}
	return s.Get(task.ID)
}

// Update replaces every editable field of the task, including its assignees and tags.
func (s *TaskService) Update(id uint64, input TaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, translate("task", id, err)
	}
	assigneeIDs, tagIDs, err := s.apply(task, input)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.Update(task, assigneeIDs, tagIDs); err != nil {
		return nil, translate("task", id, err)
	}
	return s.Get(id)
}

// ToggleCompleted flips the completion flag and leaves every other field alone.
func (s *TaskService) ToggleCompleted(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, translate("task", id, err)
	}
	if err := s.taskRepo.SetCompleted(id, !task.IsCompleted); err != nil {
		return nil, translate("task", id, err)
	}
	return s.Get(id)
}

func (s *TaskService) Delete(id uint64) error {
	return translate("task", id, s.taskRepo.Delete(id))
}

func (s *TaskService) apply(task *models.Task, input TaskInput) ([]uint64, []uint64, error) {
	name, err := cleanName("name", input.Name, constants.MaxNameLength)
	if err != nil {
		return nil, nil, err
	}
	if err := checkDeadline(input.Deadline, s.now(), s.loc); err != nil {
		return nil, nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, nil, invalid("priority", fmt.Sprintf("%q is not one of the available choices", priority))
	}

	if input.TaskTypeID == 0 {
		return nil, nil, invalid("task_type", "this field is required")
	}
	_, err = s.taskTypeRepo.FindByID(input.TaskTypeID)
	if err := checkExists("task_type", err); err != nil {
		return nil, nil, err
	}

	projectID := input.ProjectID
	if projectID != nil && *projectID == 0 {
		projectID = nil
	}
	if projectID != nil {
		_, err = s.projectRepo.FindByID(*projectID)
		if err := checkExists("project", err); err != nil {
			return nil, nil, err
		}
	}

	assigneeIDs := uniqueIDs(input.AssigneeIDs)
	if err := checkAllExist("assignees", assigneeIDs, s.workerRepo.CountByIDs); err != nil {
		return nil, nil, err
	}
	tagIDs := uniqueIDs(input.TagIDs)
	if err := checkAllExist("tags", tagIDs, s.tagRepo.CountByIDs); err != nil {
		return nil, nil, err
	}

	task.Name = name
	task.Description = input.Description
	task.Deadline = input.Deadline
	task.Priority = priority
	task.TaskTypeID = input.TaskTypeID
	task.ProjectID = projectID
	task.TaskType = models.TaskType{}
	task.Project = nil
	return assigneeIDs, tagIDs, nil
}

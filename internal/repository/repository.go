package repository

import (
	"github.com/yukikurage/task-manager/internal/models"
)

// ListFilter holds the search term and page for list queries
type ListFilter struct {
	Search   string
	Page     int
	PageSize int
}

// PositionRepository defines the interface for position data access
type PositionRepository interface {
	Create(position *models.Position) error
	FindByID(id uint64) (*models.Position, error)
	FindByName(name string) (*models.Position, error)
	List(filter ListFilter) ([]models.Position, int64, error)
	Update(position *models.Position) error

	// Delete fails with ErrHasDependents while workers hold the position
	Delete(id uint64) error

	CountWorkers(id uint64) (int64, error)
}

// WorkerRepository defines the interface for worker data access
type WorkerRepository interface {
	Create(worker *models.Worker) error
	FindByID(id uint64, preload ...string) (*models.Worker, error)
	FindByUsername(username string) (*models.Worker, error)
	List(filter ListFilter) ([]models.Worker, int64, error)
	Update(worker *models.Worker) error

	// Delete removes the worker together with its assignments and team memberships
	Delete(id uint64) error

	Count() (int64, error)

	// CountByIDs counts how many of the given worker IDs exist
	CountByIDs(ids []uint64) (int64, error)

	// ListAssignedTasks returns the worker's tasks with the given completion state, ordered by name
	ListAssignedTasks(workerID uint64, completed bool) ([]models.Task, error)

	TouchLastLogin(id uint64) error
}

// TaskTypeRepository defines the interface for task type data access
type TaskTypeRepository interface {
	Create(taskType *models.TaskType) error
	FindByID(id uint64) (*models.TaskType, error)
	List(filter ListFilter) ([]models.TaskType, int64, error)
	Update(taskType *models.TaskType) error

	// Delete fails with ErrHasDependents while tasks use the type
	Delete(id uint64) error

	CountTasks(id uint64) (int64, error)
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	Create(tag *models.Tag) error
	FindByID(id uint64) (*models.Tag, error)
	List(filter ListFilter) ([]models.Tag, int64, error)
	Update(tag *models.Tag) error
	Delete(id uint64) error
	CountByIDs(ids []uint64) (int64, error)
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	Create(team *models.Team, memberIDs []uint64) error
	FindByID(id uint64, preload ...string) (*models.Team, error)
	List(filter ListFilter) ([]models.Team, int64, error)
	Update(team *models.Team, memberIDs []uint64) error

	// Delete removes memberships and detaches the team's projects
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id uint64, preload ...string) (*models.Project, error)
	List(filter ListFilter) ([]models.Project, int64, error)
	Update(project *models.Project) error

	// Delete detaches the project's tasks before removing it
	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task, assigneeIDs, tagIDs []uint64) error
	FindByID(id uint64, preload ...string) (*models.Task, error)
	List(filter ListFilter) ([]models.Task, int64, error)

	// Update replaces the task row and its assignee and tag sets
	Update(task *models.Task, assigneeIDs, tagIDs []uint64) error

	SetCompleted(id uint64, completed bool) error
	Delete(id uint64) error
	Count() (int64, error)
}

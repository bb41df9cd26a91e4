package services

import (
	"time"

	"github.com/yukikurage/task-manager/internal/repository"
	"gorm.io/gorm"
)

// Registry holds one instance of every service, wired to a shared database.
type Registry struct {
	Auth      *AuthService
	Dashboard *DashboardService
	Positions *PositionService
	Workers   *WorkerService
	TaskTypes *TaskTypeService
	Tags      *TagService
	Teams     *TeamService
	Projects  *ProjectService
	Tasks     *TaskService
}

// NewRegistry builds the gorm repositories and the services on top of them.
// Task deadlines are evaluated in loc.
func NewRegistry(db *gorm.DB, loc *time.Location) *Registry {
	positionRepo := repository.NewPositionRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	taskTypeRepo := repository.NewTaskTypeRepository(db)
	tagRepo := repository.NewTagRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return &Registry{
		Auth:      NewAuthService(workerRepo, positionRepo),
		Dashboard: NewDashboardService(taskRepo, workerRepo),
		Positions: NewPositionService(positionRepo),
		Workers:   NewWorkerService(workerRepo, positionRepo),
		TaskTypes: NewTaskTypeService(taskTypeRepo),
		Tags:      NewTagService(tagRepo),
		Teams:     NewTeamService(teamRepo, workerRepo),
		Projects:  NewProjectService(projectRepo, teamRepo),
		Tasks:     NewTaskService(taskRepo, taskTypeRepo, projectRepo, workerRepo, tagRepo, loc),
	}
}

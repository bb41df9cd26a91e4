package services

import (
	"fmt"

	"github.com/yukikurage/task-manager/internal/repository"
)

// DashboardStats holds the totals shown on the index page.
type DashboardStats struct {
	NumTasks   int64
	NumWorkers int64
}

type DashboardService struct {
	taskRepo   repository.TaskRepository
	workerRepo repository.WorkerRepository
}

func NewDashboardService(taskRepo repository.TaskRepository, workerRepo repository.WorkerRepository) *DashboardService {
	return &DashboardService{
		taskRepo:   taskRepo,
		workerRepo: workerRepo,
	}
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	tasks, err := s.taskRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	workers, err := s.workerRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count workers: %w", err)
	}
	return &DashboardStats{NumTasks: tasks, NumWorkers: workers}, nil
}

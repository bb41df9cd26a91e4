package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrFailedToHashPassword = errors.New("failed to hash password")

// WorkerService handles worker business logic
type WorkerService struct {
	workerRepo   repository.WorkerRepository
	positionRepo repository.PositionRepository
	bcryptCost   int
}

// NewWorkerService creates a new WorkerService
func NewWorkerService(workerRepo repository.WorkerRepository, positionRepo repository.PositionRepository) *WorkerService {
	return &WorkerService{
		workerRepo:   workerRepo,
		positionRepo: positionRepo,
		bcryptCost:   bcrypt.DefaultCost,
	}
}

// CreateWorkerInput represents input for registering a worker
type CreateWorkerInput struct {
	Username   string
	FirstName  string
	LastName   string
	Email      string
	Password1  string
	Password2  string
	PositionID uint64
}

// UpdateWorkerInput represents the profile fields a worker update may change
type UpdateWorkerInput struct {
	FirstName  string
	LastName   string
	Email      string
	PositionID uint64
}

// WorkerDetail is a worker with its assigned tasks split by completion state.
type WorkerDetail struct {
	Worker          models.Worker
	CompletedTasks  []models.Task
	IncompleteTasks []models.Task
}

func (s *WorkerService) List(search string, params utils.PaginationParams) ([]models.Worker, int64, error) {
	workers, total, err := s.workerRepo.List(repository.ListFilter{
		Search:   cleanSearch(search),
		Page:     params.Page,
		PageSize: params.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, total, nil
}

// Get returns the worker with position, teams and both task partitions.
func (s *WorkerService) Get(id uint64) (*WorkerDetail, error) {
	worker, err := s.workerRepo.FindByID(id, "Position", "Teams")
	if err != nil {
		return nil, translate("worker", id, err)
	}

	completed, err := s.workerRepo.ListAssignedTasks(id, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed tasks: %w", err)
	}
	incomplete, err := s.workerRepo.ListAssignedTasks(id, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomplete tasks: %w", err)
	}

	return &WorkerDetail{
		Worker:          *worker,
		CompletedTasks:  completed,
		IncompleteTasks: incomplete,
	}, nil
}

func (s *WorkerService) Create(input CreateWorkerInput) (*models.Worker, error) {
	username, err := cleanUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if _, err := s.workerRepo.FindByUsername(username); err == nil {
		return nil, duplicate("username")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	worker := &models.Worker{Username: username}
	if err := s.applyProfile(worker, input.FirstName, input.LastName, input.Email, input.PositionID); err != nil {
		return nil, err
	}
	if err := checkPassword(username, input.Password1, input.Password2); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password1), s.bcryptCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}
	worker.PasswordHash = string(hash)

	if err := s.workerRepo.Create(worker); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, duplicate("username")
		}
		return nil, translate("worker", 0, err)
	}
	return worker, nil
}

func (s *WorkerService) Update(id uint64, input UpdateWorkerInput) (*models.Worker, error) {
	worker, err := s.workerRepo.FindByID(id)
	if err != nil {
		return nil, translate("worker", id, err)
	}
	if err := s.applyProfile(worker, input.FirstName, input.LastName, input.Email, input.PositionID); err != nil {
		return nil, err
	}
	if err := s.workerRepo.Update(worker); err != nil {
		return nil, translate("worker", id, err)
	}
	return worker, nil
}

// Delete removes the worker along with its task assignments and team memberships.
func (s *WorkerService) Delete(id uint64) error {
	return translate("worker", id, s.workerRepo.Delete(id))
}

func (s *WorkerService) applyProfile(worker *models.Worker, firstName, lastName, email string, positionID uint64) error {
	firstName, err := cleanOptional("first_name", firstName, constants.MaxPersonName)
	if err != nil {
		return err
	}
	lastName, err = cleanOptional("last_name", lastName, constants.MaxPersonName)
	if err != nil {
		return err
	}
	email, err = cleanEmail(email)
	if err != nil {
		return err
	}
	if positionID == 0 {
		return invalid("position", "this field is required")
	}
	_, err = s.positionRepo.FindByID(positionID)
	if err := checkExists("position", err); err != nil {
		return err
	}

	worker.FirstName = firstName
	worker.LastName = lastName
	worker.Email = email
	worker.PositionID = positionID
	worker.Position = models.Position{}
	return nil
}

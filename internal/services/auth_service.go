package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles authentication related business logic.
type AuthService struct {
	workerRepo   repository.WorkerRepository
	positionRepo repository.PositionRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(workerRepo repository.WorkerRepository, positionRepo repository.PositionRepository) *AuthService {
	return &AuthService{
		workerRepo:   workerRepo,
		positionRepo: positionRepo,
	}
}

// Login verifies credentials and returns the authenticated worker.
func (s *AuthService) Login(username, password string) (*models.Worker, error) {
	worker, err := s.workerRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find worker: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(worker.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.workerRepo.TouchLastLogin(worker.ID); err != nil {
		slog.Warn("failed to record last login", "worker_id", worker.ID, "error", err)
	}
	return worker, nil
}

// CurrentWorker retrieves the logged-in worker by ID.
func (s *AuthService) CurrentWorker(id uint64) (*models.Worker, error) {
	worker, err := s.workerRepo.FindByID(id, "Position")
	if err != nil {
		return nil, translate("worker", id, err)
	}
	return worker, nil
}

// WorkerExists reports whether the worker behind a session is still present.
func (s *AuthService) WorkerExists(id uint64) (bool, error) {
	count, err := s.workerRepo.CountByIDs([]uint64{id})
	if err != nil {
		return false, fmt.Errorf("failed to look up worker %d: %w", id, err)
	}
	return count == 1, nil
}

// Bootstrap creates the first worker when the database has none. The worker
// gets the default position, which is created if missing. Nothing happens when
// workers already exist or no password is given.
func (s *AuthService) Bootstrap(username, password string) (*models.Worker, error) {
	if password == "" {
		return nil, nil
	}
	count, err := s.workerRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count workers: %w", err)
	}
	if count > 0 {
		return nil, nil
	}

	username, err = cleanUsername(username)
	if err != nil {
		return nil, err
	}

	position, err := s.positionRepo.FindByName(constants.DefaultPositionName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		position = &models.Position{Name: constants.DefaultPositionName}
		err = s.positionRepo.Create(position)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to prepare default position: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	worker := &models.Worker{
		Username:     username,
		PasswordHash: string(hash),
		PositionID:   position.ID,
	}
	if err := s.workerRepo.Create(worker); err != nil {
		return nil, fmt.Errorf("failed to create initial worker: %w", err)
	}

	slog.Info("created initial worker", "username", worker.Username, "position", position.Name)
	return worker, nil
}

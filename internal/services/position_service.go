package services

import (
	"fmt"

	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/utils"
)

// PositionService handles position business logic
type PositionService struct {
	positionRepo repository.PositionRepository
}

// NewPositionService creates a new PositionService
func NewPositionService(positionRepo repository.PositionRepository) *PositionService {
	return &PositionService{positionRepo: positionRepo}
}

// PositionDetail is a position together with the number of workers holding it.
type PositionDetail struct {
	Position    models.Position
	WorkerCount int64
}

func (s *PositionService) List(search string, params utils.PaginationParams) ([]models.Position, int64, error) {
	positions, total, err := s.positionRepo.List(repository.ListFilter{
		Search:   cleanSearch(search),
		Page:     params.Page,
		PageSize: params.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list positions: %w", err)
	}
	return positions, total, nil
}

func (s *PositionService) Get(id uint64) (*PositionDetail, error) {
	position, err := s.positionRepo.FindByID(id)
	if err != nil {
		return nil, translate("position", id, err)
	}
	count, err := s.positionRepo.CountWorkers(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count workers: %w", err)
	}
	return &PositionDetail{Position: *position, WorkerCount: count}, nil
}

func (s *PositionService) Create(name string) (*models.Position, error) {
	name, err := cleanName("name", name, constants.MaxNameLength)
	if err != nil {
		return nil, err
	}
	position := &models.Position{Name: name}
	if err := s.positionRepo.Create(position); err != nil {
		return nil, translate("position", 0, err)
	}
	return position, nil
}

func (s *PositionService) Update(id uint64, name string) (*models.Position, error) {
	name, err := cleanName("name", name, constants.MaxNameLength)
	if err != nil {
		return nil, err
	}
	position, err := s.positionRepo.FindByID(id)
	if err != nil {
		return nil, translate("position", id, err)
	}
	position.Name = name
	if err := s.positionRepo.Update(position); err != nil {
		return nil, translate("position", id, err)
	}
	return position, nil
}

// Delete removes a position. It fails with ErrReferentialIntegrity while any
// worker still holds it.
func (s *PositionService) Delete(id uint64) error {
	return translate("position", id, s.positionRepo.Delete(id))
}

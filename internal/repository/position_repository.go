package repository

import (
	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
)

// GormPositionRepository is a GORM implementation of PositionRepository
type GormPositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new PositionRepository
func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &GormPositionRepository{db: db}
}

func (r *GormPositionRepository) Create(position *models.Position) error {
	return mapWriteError(r.db.Create(position).Error)
}

func (r *GormPositionRepository) FindByID(id uint64) (*models.Position, error) {
	return findByID[models.Position](r.db, id)
}

// FindByName returns the first position with exactly this name
func (r *GormPositionRepository) FindByName(name string) (*models.Position, error) {
	var position models.Position
	if err := r.db.Where("name = ?", name).Order("id").First(&position).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *GormPositionRepository) List(filter ListFilter) ([]models.Position, int64, error) {
	return listPage[models.Position](r.db, filter, "positions.name", "positions.name ASC, positions.id ASC")
}

func (r *GormPositionRepository) Update(position *models.Position) error {
	return updateLocked(r.db, position.ID, position)
}

func (r *GormPositionRepository) Delete(id uint64) error {
	return deleteProtected[models.Position](r.db, id, &models.Worker{}, "position_id")
}

// CountWorkers counts the workers holding the position
func (r *GormPositionRepository) CountWorkers(id uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Worker{}).Where("position_id = ?", id).Count(&count).Error
	return count, err
}

package repository

import (
	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) Create(project *models.Project) error {
	return mapWriteError(r.db.Omit(clause.Associations).Create(project).Error)
}

func (r *GormProjectRepository) FindByID(id uint64, preload ...string) (*models.Project, error) {
	return findByID[models.Project](r.db, id, preload...)
}

func (r *GormProjectRepository) List(filter ListFilter) ([]models.Project, int64, error) {
	return listPage[models.Project](r.db, filter, "projects.name", "projects.name ASC, projects.id ASC", "Team")
}

func (r *GormProjectRepository) Update(project *models.Project) error {
	return updateLocked(r.db, project.ID, project)
}

func (r *GormProjectRepository) Delete(id uint64) error {
	return deleteWith[models.Project](r.db, id, func(tx *gorm.DB) error {
		return tx.Model(&models.Task{}).Where("project_id = ?", id).Update("project_id", nil).Error
	})
}

package repository

import (
	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
)

// GormTagRepository is a GORM implementation of TagRepository
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &GormTagRepository{db: db}
}

func (r *GormTagRepository) Create(tag *models.Tag) error {
	return mapWriteError(r.db.Create(tag).Error)
}

func (r *GormTagRepository) FindByID(id uint64) (*models.Tag, error) {
	return findByID[models.Tag](r.db, id)
}

func (r *GormTagRepository) List(filter ListFilter) ([]models.Tag, int64, error) {
	return listPage[models.Tag](r.db, filter, "tags.name", "tags.name ASC, tags.id ASC")
}

func (r *GormTagRepository) Update(tag *models.Tag) error {
	return updateLocked(r.db, tag.ID, tag)
}

// Delete removes the tag and detaches it from every task
func (r *GormTagRepository) Delete(id uint64) error {
	return deleteWith[models.Tag](r.db, id, func(tx *gorm.DB) error {
		return tx.Where("tag_id = ?", id).Delete(&models.TaskTag{}).Error
	})
}

func (r *GormTagRepository) CountByIDs(ids []uint64) (int64, error) {
	return countByIDs(r.db, &models.Tag{}, ids)
}

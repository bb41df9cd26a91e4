package repository

import (
	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
)

// GormTaskTypeRepository is a GORM implementation of TaskTypeRepository
type GormTaskTypeRepository struct {
	db *gorm.DB
}

// NewTaskTypeRepository creates a new TaskTypeRepository
func NewTaskTypeRepository(db *gorm.DB) TaskTypeRepository {
	return &GormTaskTypeRepository{db: db}
}

func (r *GormTaskTypeRepository) Create(taskType *models.TaskType) error {
	return mapWriteError(r.db.Create(taskType).Error)
}

func (r *GormTaskTypeRepository) FindByID(id uint64) (*models.TaskType, error) {
	return findByID[models.TaskType](r.db, id)
}

func (r *GormTaskTypeRepository) List(filter ListFilter) ([]models.TaskType, int64, error) {
	return listPage[models.TaskType](r.db, filter, "task_types.name", "task_types.name ASC, task_types.id ASC")
}

func (r *GormTaskTypeRepository) Update(taskType *models.TaskType) error {
	return updateLocked(r.db, taskType.ID, taskType)
}

func (r *GormTaskTypeRepository) Delete(id uint64) error {
	return deleteProtected[models.TaskType](r.db, id, &models.Task{}, "task_type_id")
}

func (r *GormTaskTypeRepository) CountTasks(id uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("task_type_id = ?", id).Count(&count).Error
	return count, err
}

package repository

import (
	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a task with its assignees and tags in one transaction
func (r *GormTaskRepository) Create(task *models.Task, assigneeIDs, tagIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(task).Error; err != nil {
			return mapWriteError(err)
		}
		return replaceTaskRelations(tx, task.ID, assigneeIDs, tagIDs)
	})
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	return findByID[models.Task](r.db, id, preload...)
}

// List retrieves tasks matching the name search, ordered by name
func (r *GormTaskRepository) List(filter ListFilter) ([]models.Task, int64, error) {
	return listPage[models.Task](r.db, filter, "tasks.name", "tasks.name ASC, tasks.id ASC",
		"Assignees", "TaskType", "Tags")
}

func (r *GormTaskRepository) Update(task *models.Task, assigneeIDs, tagIDs []uint64) error {
	return updateLocked(r.db, task.ID, task, func(tx *gorm.DB) error {
		return replaceTaskRelations(tx, task.ID, assigneeIDs, tagIDs)
	})
}

// SetCompleted updates only the completion flag
func (r *GormTaskRepository) SetCompleted(id uint64, completed bool) error {
	result := r.db.Model(&models.Task{}).Where("id = ?", id).Update("is_completed", completed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a task and its join rows
func (r *GormTaskRepository) Delete(id uint64) error {
	return deleteWith[models.Task](r.db, id,
		func(tx *gorm.DB) error {
			return tx.Where("task_id = ?", id).Delete(&models.TaskAssignee{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Where("task_id = ?", id).Delete(&models.TaskTag{}).Error
		},
	)
}

func (r *GormTaskRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Count(&count).Error
	return count, err
}

func replaceTaskRelations(tx *gorm.DB, taskID uint64, assigneeIDs, tagIDs []uint64) error {
	if err := tx.Where("task_id = ?", taskID).Delete(&models.TaskAssignee{}).Error; err != nil {
		return err
	}
	if err := tx.Where("task_id = ?", taskID).Delete(&models.TaskTag{}).Error; err != nil {
		return err
	}

	if len(assigneeIDs) > 0 {
		assignees := make([]models.TaskAssignee, len(assigneeIDs))
		for i, workerID := range assigneeIDs {
			assignees[i] = models.TaskAssignee{TaskID: taskID, WorkerID: workerID}
		}
		if err := tx.Create(&assignees).Error; err != nil {
			return mapWriteError(err)
		}
	}

	if len(tagIDs) > 0 {
		tags := make([]models.TaskTag, len(tagIDs))
		for i, tagID := range tagIDs {
			tags[i] = models.TaskTag{TaskID: taskID, TagID: tagID}
		}
		if err := tx.Create(&tags).Error; err != nil {
			return mapWriteError(err)
		}
	}

	return nil
}

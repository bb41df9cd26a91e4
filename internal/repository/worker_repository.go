package repository

import (
	"time"

	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkerRepository is a GORM implementation of WorkerRepository
type GormWorkerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new WorkerRepository
func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &GormWorkerRepository{db: db}
}

func (r *GormWorkerRepository) Create(worker *models.Worker) error {
	return mapWriteError(r.db.Omit(clause.Associations).Create(worker).Error)
}

// FindByID finds a worker by ID with optional preloading
func (r *GormWorkerRepository) FindByID(id uint64, preload ...string) (*models.Worker, error) {
	return findByID[models.Worker](r.db, id, preload...)
}

// FindByUsername finds a worker by username
func (r *GormWorkerRepository) FindByUsername(username string) (*models.Worker, error) {
	var worker models.Worker
	if err := r.db.Where("username = ?", username).First(&worker).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *GormWorkerRepository) List(filter ListFilter) ([]models.Worker, int64, error) {
	return listPage[models.Worker](r.db, filter, "workers.username", "workers.username ASC, workers.id ASC", "Position")
}

func (r *GormWorkerRepository) Update(worker *models.Worker) error {
	return updateLocked(r.db, worker.ID, worker)
}

func (r *GormWorkerRepository) Delete(id uint64) error {
	return deleteWith[models.Worker](r.db, id,
		func(tx *gorm.DB) error {
			return tx.Where("worker_id = ?", id).Delete(&models.TaskAssignee{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Where("worker_id = ?", id).Delete(&models.TeamMember{}).Error
		},
	)
}

func (r *GormWorkerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Worker{}).Count(&count).Error
	return count, err
}

func (r *GormWorkerRepository) CountByIDs(ids []uint64) (int64, error) {
	return countByIDs(r.db, &models.Worker{}, ids)
}

func (r *GormWorkerRepository) ListAssignedTasks(workerID uint64, completed bool) ([]models.Task, error) {
	tasks := []models.Task{}
	err := r.db.Model(&models.Task{}).
		Joins("JOIN task_assignees ON task_assignees.task_id = tasks.id").
		Where("task_assignees.worker_id = ? AND tasks.is_completed = ?", workerID, completed).
		Order("tasks.name ASC, tasks.id ASC").
		Preload("TaskType").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormWorkerRepository) TouchLastLogin(id uint64) error {
	return r.db.Model(&models.Worker{}).Where("id = ?", id).Update("last_login_at", time.Now()).Error
}

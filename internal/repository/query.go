package repository

import (
	"fmt"

	"github.com/yukikurage/task-manager/internal/database"
	"github.com/yukikurage/task-manager/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate locks the selected rows until the surrounding transaction ends.
// SQLite ignores the clause.
var forUpdate = clause.Locking{Strength: "UPDATE"}

func findByID[T any](db *gorm.DB, id uint64, preload ...string) (*T, error) {
	var record T
	query := db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// listPage counts the rows matching the search on column, then fetches one page in order.
func listPage[T any](db *gorm.DB, filter ListFilter, column, order string, preload ...string) ([]T, int64, error) {
	base := func() *gorm.DB {
		return db.Model(new(T)).Scopes(database.ContainsFold(column, filter.Search))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params := utils.NewPaginationParams(filter.Page, filter.PageSize)
	query := base().Order(order).Scopes(database.Paginate(params))
	for _, p := range preload {
		query = query.Preload(p)
	}

	items := make([]T, 0, params.Limit)
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// updateLocked replaces the row with the given id inside a transaction, failing
// with gorm.ErrRecordNotFound when it no longer exists.
func updateLocked[T any](db *gorm.DB, id uint64, value *T, after ...func(tx *gorm.DB) error) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.Clauses(forUpdate).First(&existing, id).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(value).Error; err != nil {
			return mapWriteError(err)
		}
		for _, fn := range after {
			if err := fn(tx); err != nil {
				return err
			}
		}
		return nil
	})
}

// deleteProtected deletes the row with the given id unless rows of dependent
// reference it through fkColumn. The check and the delete share one
// transaction, and the parent row is locked first so no dependent can be
// inserted in between.
func deleteProtected[T any](db *gorm.DB, id uint64, dependent any, fkColumn string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var parent T
		if err := tx.Clauses(forUpdate).First(&parent, id).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(dependent).Where(fkColumn+" = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %d dependent record(s)", ErrHasDependents, count)
		}

		return mapDeleteError(tx.Delete(&parent).Error)
	})
}

// deleteWith deletes the row with the given id after running cleanup steps in
// the same transaction.
func deleteWith[T any](db *gorm.DB, id uint64, cleanup ...func(tx *gorm.DB) error) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var record T
		if err := tx.Clauses(forUpdate).First(&record, id).Error; err != nil {
			return err
		}
		for _, fn := range cleanup {
			if err := fn(tx); err != nil {
				return err
			}
		}
		return mapDeleteError(tx.Delete(&record).Error)
	})
}

func countByIDs(db *gorm.DB, model any, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := db.Model(model).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestPositionDelete_LocksCountsAndRollsBack(t *testing.T) {
	db, mock := newMockPostgres(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "positions" WHERE "positions"\."id" = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Developer"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "workers" WHERE position_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := NewPositionRepository(db).Delete(1)
	assert.ErrorIs(t, err, ErrHasDependents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPositionDelete_LocksCountsAndDeletes(t *testing.T) {
	db, mock := newMockPostgres(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "positions" WHERE "positions"\."id" = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Developer"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "workers" WHERE position_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM "positions" WHERE "positions"\."id" = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewPositionRepository(db).Delete(1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapWriteError(t *testing.T) {
	assert.Nil(t, mapWriteError(nil))
	assert.ErrorIs(t, mapWriteError(gorm.ErrDuplicatedKey), ErrDuplicate)
	assert.ErrorIs(t, mapWriteError(gorm.ErrForeignKeyViolated), ErrMissingReference)
	assert.ErrorIs(t, mapDeleteError(gorm.ErrForeignKeyViolated), ErrHasDependents)
}

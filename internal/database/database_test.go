package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-manager/internal/config"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/utils"
)

func TestDialector(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlite"} {
		dialector, err := Dialector(&config.Config{DBDriver: driver, DBName: "tasks"})
		require.NoError(t, err, driver)
		assert.Equal(t, driver, dialector.Name())
	}

	_, err := Dialector(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestOpenInMemory_CreatesSchema(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)

	for _, table := range []string{"positions", "workers", "task_types", "tags", "teams", "projects", "tasks", "task_assignees", "task_tags", "team_members"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestContainsFold(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)

	for _, name := range []string{"Alpha", "ALPHABET", "beta", "50% off", "500 off"} {
		require.NoError(t, db.Create(&models.Tag{Name: name}).Error)
	}

	count := func(search string) int64 {
		var n int64
		require.NoError(t, db.Model(&models.Tag{}).Scopes(ContainsFold("name", search)).Count(&n).Error)
		return n
	}

	assert.Equal(t, int64(5), count(""))
	assert.Equal(t, int64(2), count("alpha"))
	assert.Equal(t, int64(1), count("0%"))
	assert.Equal(t, int64(0), count("_lpha!"))
}

func TestContainsFold_NonASCII(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)

	for _, name := range []string{"Ärger", "ÜBERSICHT", "Straße", "plain"} {
		require.NoError(t, db.Create(&models.Tag{Name: name}).Error)
	}

	find := func(search string) []string {
		var names []string
		require.NoError(t, db.Model(&models.Tag{}).Scopes(ContainsFold("name", search)).Order("id").Pluck("name", &names).Error)
		return names
	}

	assert.Equal(t, []string{"Ärger"}, find("ä"))
	assert.Equal(t, []string{"Ärger"}, find("ÄRG"))
	assert.Equal(t, []string{"ÜBERSICHT"}, find("übersicht"))
	assert.Equal(t, []string{"Straße"}, find("STRAßE"))
}

func TestFoldLower(t *testing.T) {
	assert.Equal(t, "ärger", foldLower("ÄRGER"))
	assert.Equal(t, "abc", foldLower([]byte("ABC")))
	assert.Nil(t, foldLower(nil))
	assert.Equal(t, int64(3), foldLower(int64(3)))
}

func TestPaginate(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, db.Create(&models.Tag{Name: name}).Error)
	}

	var tags []models.Tag
	params := utils.NewPaginationParams(2, 2)
	require.NoError(t, db.Order("name").Scopes(Paginate(params)).Find(&tags).Error)
	require.Len(t, tags, 1)
	assert.Equal(t, "c", tags[0].Name)
}

package database

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm/schema"
)

func readMigrations(t *testing.T) string {
	t.Helper()
	entries, err := migrationFS.ReadDir("migrations")
	require.NoError(t, err)

	var sb strings.Builder
	for _, entry := range entries {
		raw, err := migrationFS.ReadFile("migrations/" + entry.Name())
		require.NoError(t, err)
		sb.Write(raw)
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestMigrations_CollectedByGoose(t *testing.T) {
	goose.SetBaseFS(migrationFS)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	migrations, err := goose.CollectMigrations("migrations", 0, goose.MaxVersion)
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, int64(1), migrations[0].Version)

	last, err := migrations.Last()
	require.NoError(t, err)
	assert.Equal(t, int64(len(migrations)), last.Version, "versions must be contiguous")

	sql := readMigrations(t)
	assert.Contains(t, sql, "-- +goose Up")
	assert.Contains(t, sql, "-- +goose Down")
}

// The postgres schema comes only from the SQL files, so every gorm column must
// have a matching column in them.
func TestMigrations_MatchModels(t *testing.T) {
	sql := readMigrations(t)

	tables := append(models.All(), &models.TaskAssignee{}, &models.TaskTag{}, &models.TeamMember{})
	cache := &sync.Map{}
	for _, model := range tables {
		s, err := schema.Parse(model, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		block := regexp.MustCompile(fmt.Sprintf(`(?s)CREATE TABLE %s \((.*?)\n\);`, regexp.QuoteMeta(s.Table))).FindStringSubmatch(sql)
		require.Len(t, block, 2, "no CREATE TABLE for %s", s.Table)

		for _, column := range s.DBNames {
			pattern := regexp.MustCompile(fmt.Sprintf(`(?m)^\s+%s\s`, regexp.QuoteMeta(column)))
			assert.True(t, pattern.MatchString(block[1]), "%s.%s missing from migrations", s.Table, column)
		}
		assert.Contains(t, sql, "DROP TABLE "+s.Table+";", "down migration must drop %s", s.Table)
	}

	assert.Equal(t, len(tables), strings.Count(sql, "CREATE TABLE "), "migrations create a table no model maps")
}

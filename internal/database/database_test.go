package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskflow-api/internal/config"
	"github.com/yukikurage/taskflow-api/internal/database"
	"github.com/yukikurage/taskflow-api/internal/logger"
	"github.com/yukikurage/taskflow-api/internal/models"
	"github.com/yukikurage/taskflow-api/internal/testutil"
)

func TestMigrate_CreatesSchemaAndIndexes(t *testing.T) {
	db := testutil.NewTestDB(t)

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable(&models.User{}))
	assert.True(t, migrator.HasTable(&models.Task{}))
	assert.True(t, migrator.HasColumn(&models.User{}, "notify_team_updates"))
	assert.True(t, migrator.HasColumn(&models.Task{}, "assignee_name"))
	assert.True(t, migrator.HasIndex("tasks", "idx_tasks_created_by_created_at"))
	assert.True(t, migrator.HasIndex("tasks", "idx_tasks_assignee_created_at"))

	// A second run must skip the existing indexes.
	require.NoError(t, database.Migrate(db, logger.Nop()))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{DB: config.DB{Driver: "mongo"}}

	_, err := database.Open(cfg, logger.Nop())
	assert.ErrorIs(t, err, config.ErrUnsupportedDriver)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{DB: config.DB{Driver: "sqlite", Name: "file:open_test?mode=memory&cache=shared"}}

	db, err := database.Open(cfg, logger.Nop())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	assert.NoError(t, sqlDB.Ping())
}

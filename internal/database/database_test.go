package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dangerclosesec/scholar/internal/config"
	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/dangerclosesec/scholar/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.URL = "sqlite://" + filepath.Join(t.TempDir(), "scholar.db")

	db, err := Open(context.Background(), cfg, logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })

	assert.Equal(t, "sqlite", db.Dialector.Name())
	require.NoError(t, repository.AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable(&model.Journal{}))
	assert.True(t, db.Migrator().HasTable(model.JournalUsersTable))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

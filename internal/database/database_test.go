package database

import (
	"context"
	"testing"
	"time"

	"fleet-dashboard/internal/config"
	"fleet-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestNew_UnsupportedDriver(t *testing.T) {
	db, err := New(&config.DatabaseConfig{Driver: "mysql"}, logger.Silent)

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNew_SQLite(t *testing.T) {
	db, err := New(&config.DatabaseConfig{
		Driver:         "sqlite",
		SQLitePath:     ":memory:",
		MaxConnections: 1,
		MaxIdleConns:   1,
	}, logger.Silent)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate())
	require.NoError(t, db.CreateIndexes())
	assert.True(t, db.Migrator().HasTable(&models.AuditLog{}))
	assert.True(t, db.Migrator().HasIndex(&models.AuditLog{}, "idx_audit_logs_resource_created_at"))
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)

	assert.NoError(t, db.HealthCheck(context.Background()))

	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck(context.Background()))
}

func TestInitialize_SQLite(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "testing"},
		Database: config.DatabaseConfig{
			Driver:         "sqlite",
			SQLitePath:     ":memory:",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	CreateTestAuditLog(t, db, models.AuditActionSummaryViewed, models.SectionBank, time.Now().UTC())

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCleanupTestDB(t *testing.T) {
	db := SetupTestDB(t)
	CreateTestAuditLog(t, db, models.AuditActionSummaryViewed, models.SectionSales, time.Now().UTC())

	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

package database

import (
	"fmt"
	"testing"
	"time"

	"fleet-dashboard/internal/config"
	"fleet-dashboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory sqlite audit store.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Every pooled connection to ":memory:" would be a separate database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         "sqlite",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestAuditLog inserts an audit row with the given timestamp.
func CreateTestAuditLog(t *testing.T, db *DB, action, resource string, createdAt time.Time) *models.AuditLog {
	t.Helper()

	log := &models.AuditLog{
		UserID:    "test-user",
		UserRole:  models.RoleViewer,
		Action:    action,
		Resource:  resource,
		CreatedAt: createdAt,
	}

	if err := db.Create(log).Error; err != nil {
		t.Fatalf("failed to create test audit log: %v", err)
	}

	return log
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range []string{"audit_logs"} {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bizmanager/infrastructure/database"
	"bizmanager/pkg/config"
)

// NewTestDB opens a migrated in-memory sqlite database closed at test end
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewDatabase(config.DatabaseConfig{
		Driver:     database.DriverSQLite,
		SQLitePath: ":memory:",
	}, logger.Silent)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

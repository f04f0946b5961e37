package testutil

import (
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"rowtrack/config"
	"rowtrack/database"
	"rowtrack/pkg/logger"
)

// ErrInjected is returned by the failure hooks installed with FailCreate / FailUpdate.
var ErrInjected = errors.New("injected store failure")

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.NewNop()
}

// DB opens a migrated SQLite database private to the test.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	cfg := config.AppConfig{
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(tb.TempDir(), "rowtrack_test.db"),
		LogMode:  "test",
	}
	db, err := database.Open(cfg, Logger(tb))
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	tb.Cleanup(func() { _ = database.Close(db) })
	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}

// FailCreate makes every INSERT into table fail with ErrInjected.
func FailCreate(tb testing.TB, db *gorm.DB, table string) {
	tb.Helper()
	name := "testutil:fail_create_" + table
	err := db.Callback().Create().Before("gorm:create").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == table {
			_ = tx.AddError(ErrInjected)
		}
	})
	if err != nil {
		tb.Fatalf("register %s: %v", name, err)
	}
}

// FailUpdate makes every UPDATE of table fail with ErrInjected.
func FailUpdate(tb testing.TB, db *gorm.DB, table string) {
	tb.Helper()
	name := "testutil:fail_update_" + table
	err := db.Callback().Update().Before("gorm:update").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == table {
			_ = tx.AddError(ErrInjected)
		}
	})
	if err != nil {
		tb.Fatalf("register %s: %v", name, err)
	}
}

func Count(tb testing.TB, db *gorm.DB, model any) int64 {
	tb.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		tb.Fatalf("count: %v", err)
	}
	return n
}

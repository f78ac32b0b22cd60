package database

import (
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := newTestDB(t)

	// Safe to call on every process start
	version, dirty, err := RunMigrations(db)
	if err != nil {
		t.Fatalf("Expected re-running migrations to succeed, got: %v", err)
	}
	if dirty {
		t.Error("Expected clean migration state")
	}
	if version == 0 {
		t.Error("Expected non-zero schema version")
	}
}

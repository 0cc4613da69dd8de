package sqlite

import (
	"path/filepath"
	"testing"
)

func TestConnect(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	database := New(&Config{Path: dbPath})

	err := database.Connect()
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer database.Close()

	if database.DB() == nil {
		t.Error("DB() returned nil after Connect()")
	}

	// Connecting again should error
	if err := database.Connect(); err == nil {
		t.Error("Connect() should return error when already connected")
	}
}

func TestClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	database := New(&Config{Path: dbPath})

	// Close without connecting should not error
	if err := database.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if err := database.Connect(); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	if err := database.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if database.DB() != nil {
		t.Error("DB() should return nil after Close()")
	}
}

func TestRunMigrations(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	database := New(&Config{Path: dbPath})
	if err := database.Connect(); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer database.Close()

	db := database.DB()

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_migrations'").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to check schema_migrations table: %v", err)
	}
	if count != 1 {
		t.Errorf("schema_migrations table not created")
	}

	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='kv'").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to check kv table: %v", err)
	}
	if count != 1 {
		t.Errorf("kv table not created")
	}

	var version int
	var name string
	err = db.QueryRow("SELECT version, name FROM schema_migrations WHERE version = 1").Scan(&version, &name)
	if err != nil {
		t.Fatalf("Failed to query schema_migrations: %v", err)
	}
	if name != "create_kv_table" {
		t.Errorf("migration name = %v, want create_kv_table", name)
	}

	// Running migrations twice is a no-op
	if err := runMigrations(db); err != nil {
		t.Fatalf("second runMigrations error = %v", err)
	}
}

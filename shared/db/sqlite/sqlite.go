package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Config carries the database location, resolved by the caller's
// configuration layer.
type Config struct {
	Path string
}

// DB wraps a SQLite connection and its schema lifecycle.
type DB struct {
	dbPath string
	db     *sql.DB
}

// New creates a new SQLite database instance at cfg.Path.
// It does not open the connection; call Connect.
func New(cfg *Config) *DB {
	return &DB{
		dbPath: cfg.Path,
	}
}

// Connect opens the connection, applies pragmas, and runs migrations.
func (s *DB) Connect() error {
	if s.db != nil {
		return fmt.Errorf("database already connected")
	}

	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Recommended SQLite pragmas for better performance and reliability
	pragmas := []string{
		"PRAGMA journal_mode=WAL",   // Write-Ahead Logging for better concurrency
		"PRAGMA synchronous=NORMAL", // Balance between safety and performance
		"PRAGMA foreign_keys=ON",    // Enable foreign key constraints
		"PRAGMA busy_timeout=5000",  // Wait up to 5 seconds if database is locked
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	s.db = db

	if err := runMigrations(db); err != nil {
		db.Close()
		s.db = nil
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *DB) Close() error {
	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}

// DB returns the underlying *sql.DB instance
func (s *DB) DB() *sql.DB {
	return s.db
}

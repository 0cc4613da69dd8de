package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Database is the contract the rest of the app uses to reach storage.
type Database interface {
	Connect() error
	Close() error
	DB() *sql.DB
}

// Executor is the subset of *sql.DB and *sql.Tx the repositories need.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// txKey is the key type for storing a transaction in context
type txKey struct{}

// WithTx returns a new context with the transaction attached
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTx retrieves the transaction from context if it exists
func GetTx(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// GetExecutor returns the transaction carried by ctx if there is one,
// otherwise the base connection. Store code always goes through this so
// multi-key updates (posts plus the liked-ids set) stay atomic when the
// caller opened a transaction.
func GetExecutor(ctx context.Context, db *sql.DB) Executor {
	if tx, ok := GetTx(ctx); ok {
		return tx
	}
	return db
}

// RunInTransaction executes fn within a database transaction.
// A transaction already present in ctx is reused and left for the outer
// caller to commit or roll back. Otherwise a new one is opened and
// committed on success, rolled back on error.
func RunInTransaction(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) error {
	if _, ok := GetTx(ctx); ok {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txCtx := WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback transaction after error %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
)

// DBTX is the querying surface shared by *sql.DB and *sql.Tx. Store
// implementations run their queries against it, so the same store works on
// a plain connection or inside RunInTransaction without code changes.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

package db

import (
	"context"
	"database/sql"
)

// DBTX is the read surface shared by *sql.DB and *sql.Tx. Table loaders
// depend on it so they run the same inside or outside a snapshot.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

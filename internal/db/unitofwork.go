package db

import (
	"context"
	"database/sql"
	"fmt"
)

// UnitOfWork gives a callback a consistent view of the database. The
// callback receives a DBTX backed by a *sql.Tx; callers create tx-scoped
// repositories from it.
type UnitOfWork interface {
	WithinSnapshot(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// SQLiteUnitOfWork implements UnitOfWork using database/sql transactions.
// Snapshots are read-only and always rolled back.
type SQLiteUnitOfWork struct {
	db *sql.DB
}

// NewSQLiteUnitOfWork creates a UnitOfWork backed by the given *sql.DB.
func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

func (u *SQLiteUnitOfWork) WithinSnapshot(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning snapshot: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	err = fn(ctx, tx)
	if rbErr := tx.Rollback(); rbErr != nil && err == nil {
		return fmt.Errorf("releasing snapshot: %w", rbErr)
	}
	return err
}

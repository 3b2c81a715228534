package repository

import (
	"context"

	"github.com/jjCode01/xer-pro/internal/importer"
)

// TableRepo reads P6 tables from a database in the same shape the .xer
// reader produces.
type TableRepo interface {
	ListTables(ctx context.Context) ([]string, error)
	LoadTables(ctx context.Context, names []string) (importer.Tables, error)
}

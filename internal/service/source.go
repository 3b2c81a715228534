package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/jjCode01/xer-pro/internal/db"
	"github.com/jjCode01/xer-pro/internal/importer"
	"github.com/jjCode01/xer-pro/internal/repository"
)

// TableSource loads the raw P6 tables behind a schedule file.
type TableSource interface {
	Load(ctx context.Context, src contract.Source) (importer.Tables, error)
}

// fileTableSource picks the reader by file extension: .xer exports are
// parsed as text, .db and .sqlite files are read as P6 Professional
// standalone databases.
type fileTableSource struct{}

func NewTableSource() TableSource {
	return fileTableSource{}
}

func (fileTableSource) Load(ctx context.Context, src contract.Source) (importer.Tables, error) {
	var (
		tables importer.Tables
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(src.Path)); ext {
	case ".xer":
		tables, err = importer.LoadFile(src.Path, src.Encoding)
	case ".db", ".sqlite", ".sqlite3":
		tables, err = loadDatabase(ctx, src.Path)
	default:
		return nil, &contract.ScheduleError{
			Code:    contract.ErrUnsupportedSource,
			Message: fmt.Sprintf("unsupported file type %q for %s", ext, src.Path),
		}
	}
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "loaded schedule tables", "path", src.Path, "tables", len(tables))
	return tables, nil
}

func loadDatabase(ctx context.Context, path string) (importer.Tables, error) {
	conn, err := db.OpenDB(path)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var tables importer.Tables
	uow := db.NewSQLiteUnitOfWork(conn)
	err = uow.WithinSnapshot(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		tables, err = repository.NewSQLiteTableRepo(tx).LoadTables(ctx, importer.KnownTables)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reading tables: %w", err)
	}
	return tables, nil
}

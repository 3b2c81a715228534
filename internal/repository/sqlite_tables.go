package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jjCode01/xer-pro/internal/db"
	"github.com/jjCode01/xer-pro/internal/importer"
)

// deletedMarker is set on rows P6 has soft-deleted.
const deletedMarker = "delete_session_id"

// SQLiteTableRepo implements TableRepo over a P6 Professional SQLite
// database.
type SQLiteTableRepo struct {
	db db.DBTX
}

// NewSQLiteTableRepo creates a new SQLiteTableRepo.
func NewSQLiteTableRepo(db db.DBTX) *SQLiteTableRepo {
	return &SQLiteTableRepo{db: db}
}

func (r *SQLiteTableRepo) ListTables(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// LoadTables reads the named tables. Names missing from the database are
// skipped and soft-deleted rows are dropped.
func (r *SQLiteTableRepo) LoadTables(ctx context.Context, names []string) (importer.Tables, error) {
	existing, err := r.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	present := make(map[string]string, len(existing))
	for _, n := range existing {
		present[strings.ToUpper(n)] = n
	}

	tables := make(importer.Tables, len(names))
	for _, name := range names {
		actual, ok := present[strings.ToUpper(name)]
		if !ok {
			continue
		}
		rows, err := r.loadTable(ctx, name, actual)
		if err != nil {
			return nil, err
		}
		tables[name] = rows
	}
	return tables, nil
}

func (r *SQLiteTableRepo) loadTable(ctx context.Context, name, actual string) ([]importer.Row, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT * FROM `+quoteIdent(actual))
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading %s columns: %w", name, err)
	}

	out := []importer.Row{}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", name, err)
		}

		raw := make(map[string]string, len(cols))
		deleted := false
		for i, c := range cols {
			field := strings.ToLower(c)
			raw[field] = rawString(values[i])
			if field == deletedMarker && values[i] != nil {
				deleted = true
			}
		}
		if deleted {
			continue
		}
		delete(raw, deletedMarker)

		row, err := importer.TypeRow(name, len(out)+1, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", name, err)
	}
	return out, nil
}

package testutil

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jjCode01/xer-pro/internal/db"
	"github.com/jjCode01/xer-pro/internal/importer"
)

// NewTestDB creates an in-memory SQLite database holding the given P6
// tables. Columns are untyped so values keep the storage class of their Go
// type. The database is closed when the test completes.
func NewTestDB(t *testing.T, tables importer.Tables) *sql.DB {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	SeedTables(t, database, tables)
	return database
}

// SeedTables creates and fills one SQLite table per P6 table.
func SeedTables(t *testing.T, database *sql.DB, tables importer.Tables) {
	t.Helper()
	for _, name := range TableNames(tables) {
		rows := tables[name]
		fields := fieldNames(rows)
		if len(fields) == 0 {
			fields = []string{"placeholder"}
		}

		quoted := make([]string, len(fields))
		marks := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = `"` + f + `"`
			marks[i] = "?"
		}
		if _, err := database.Exec(`CREATE TABLE "` + name + `" (` + strings.Join(quoted, ", ") + `)`); err != nil {
			t.Fatalf("failed to create table %s: %v", name, err)
		}

		insert := `INSERT INTO "` + name + `" (` + strings.Join(quoted, ", ") + `) VALUES (` + strings.Join(marks, ", ") + `)`
		for _, row := range rows {
			args := make([]any, len(fields))
			for i, f := range fields {
				args[i] = sqlValue(row[f])
			}
			if _, err := database.Exec(insert, args...); err != nil {
				t.Fatalf("failed to insert into %s: %v", name, err)
			}
		}
	}
}

func sqlValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	case bool:
		if x {
			return "Y"
		}
		return "N"
	default:
		return x
	}
}

// WriteDB writes tables to a SQLite file in a test temp dir and returns its
// path.
func WriteDB(t *testing.T, tables importer.Tables) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.db")
	database, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create database file: %v", err)
	}
	defer database.Close()
	database.SetMaxOpenConns(1)
	SeedTables(t, database, tables)
	return path
}

package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jjCode01/xer-pro/internal/importer"
)

// FormatXER renders tables in .xer text form. Field order within a table
// is sorted so output is stable.
func FormatXER(tables importer.Tables) string {
	var b strings.Builder
	b.WriteString("ERMHDR\t19.12\t2024-01-08\tProject\tadmin\tadmin\tdbxDatabaseNoName\tProject Management\tUSD\r\n")
	for _, name := range TableNames(tables) {
		rows := tables[name]
		fields := fieldNames(rows)
		b.WriteString("%T\t" + name + "\r\n")
		b.WriteString("%F\t" + strings.Join(fields, "\t") + "\r\n")
		for _, row := range rows {
			values := make([]string, len(fields))
			for i, f := range fields {
				values[i] = formatValue(row[f])
			}
			b.WriteString("%R\t" + strings.Join(values, "\t") + "\r\n")
		}
	}
	b.WriteString("%E\r\n")
	return b.String()
}

// WriteXER writes tables to a .xer file in a test temp dir and returns its path.
func WriteXER(t *testing.T, tables importer.Tables) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.xer")
	if err := os.WriteFile(path, []byte(FormatXER(tables)), 0o644); err != nil {
		t.Fatalf("failed to write xer fixture: %v", err)
	}
	return path
}

func fieldNames(rows []importer.Row) []string {
	seen := make(map[string]bool)
	var fields []string
	for _, r := range rows {
		for f := range r {
			if !seen[f] {
				seen[f] = true
				fields = append(fields, f)
			}
		}
	}
	sort.Strings(fields)
	return fields
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format("2006-01-02 15:04")
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		if x {
			return "Y"
		}
		return "N"
	default:
		return ""
	}
}

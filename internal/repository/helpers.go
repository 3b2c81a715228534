package repository

import (
	"strconv"
	"time"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// rawString converts a driver value to the text form used in .xer files,
// so both sources share one typing path. NULL maps to "".
func rawString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "Y"
		}
		return "N"
	case time.Time:
		return x.Format(sqliteTimeLayout)
	default:
		return ""
	}
}

// quoteIdent quotes a table or column name for SQLite.
func quoteIdent(name string) string {
	return `"` + name + `"`
}

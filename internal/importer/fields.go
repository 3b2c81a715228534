package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04"

var timeLayouts = []string{timeLayout, "2006-01-02 15:04:05", time.DateOnly}

// FieldError reports a raw value that cannot be typed for its field.
type FieldError struct {
	Table string
	Row   int
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s row %d: field %s: invalid value %q: %v", e.Table, e.Row, e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// TypeValue converts a raw field value by the suffix of its field name:
// _date and _date2 are timestamps, _num integers, _cnt _qty _cost and _pct
// floats, and _flag booleans ("Y" is true). Empty values return nil.
func TypeValue(field, raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	switch {
	case strings.HasSuffix(field, "_date"), strings.HasSuffix(field, "_date2"):
		return parseTime(raw)
	case strings.HasSuffix(field, "_num"):
		return strconv.Atoi(strings.TrimSpace(raw))
	case strings.HasSuffix(field, "_cnt"),
		strings.HasSuffix(field, "_qty"),
		strings.HasSuffix(field, "_cost"),
		strings.HasSuffix(field, "_pct"):
		return strconv.ParseFloat(strings.TrimSpace(raw), 64)
	case strings.HasSuffix(field, "_flag"):
		return raw == "Y", nil
	default:
		return raw, nil
	}
}

func parseTime(raw string) (time.Time, error) {
	var firstErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(raw))
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// TypeRow types every raw value of a record. row is the 1-based record
// number used in error messages.
func TypeRow(table string, row int, raw map[string]string) (Row, error) {
	out := make(Row, len(raw))
	for field, value := range raw {
		v, err := TypeValue(field, value)
		if err != nil {
			return nil, &FieldError{Table: table, Row: row, Field: field, Value: value, Err: err}
		}
		if v != nil {
			out[field] = v
		}
	}
	return out, nil
}

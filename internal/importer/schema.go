package importer

import (
	"fmt"
	"time"
)

// P6 table names used by the analytics engine.
const (
	TableAccount  = "ACCOUNT"
	TableActvCode = "ACTVCODE"
	TableActvType = "ACTVTYPE"
	TableCalendar = "CALENDAR"
	TableFinDates = "FINDATES"
	TableMemoType = "MEMOTYPE"
	TableProject  = "PROJECT"
	TableProjWBS  = "PROJWBS"
	TableRsrc     = "RSRC"
	TableTask     = "TASK"
	TableTaskActv = "TASKACTV"
	TableTaskFin  = "TASKFIN"
	TableTaskMemo = "TASKMEMO"
	TableTaskPred = "TASKPRED"
	TableTaskRsrc = "TASKRSRC"
	TableTrsrcFin = "TRSRCFIN"
)

// ScheduleTables lists the tables a schedule is built from.
var ScheduleTables = []string{
	TableProject, TableCalendar, TableProjWBS, TableTask, TableTaskPred,
	TableRsrc, TableAccount, TableTaskRsrc, TableFinDates, TableTrsrcFin,
}

// Row is one table record keyed by field name. Values are typed by
// TypeValue; empty fields are absent.
type Row map[string]any

// Tables maps a table name to its rows in file order.
type Tables map[string][]Row

// Has reports whether the table was present in the source, even if empty.
func (t Tables) Has(name string) bool {
	_, ok := t[name]
	return ok
}

func (r Row) String(field string) string {
	switch v := r[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(timeLayout)
	default:
		return fmt.Sprint(v)
	}
}

func (r Row) Time(field string) *time.Time {
	if v, ok := r[field].(time.Time); ok {
		return &v
	}
	return nil
}

func (r Row) Float(field string) float64 {
	if p := r.FloatPtr(field); p != nil {
		return *p
	}
	return 0
}

func (r Row) FloatPtr(field string) *float64 {
	switch v := r[field].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func (r Row) Int(field string) int {
	switch v := r[field].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func (r Row) Bool(field string) bool {
	v, _ := r[field].(bool)
	return v
}

// KnownTables is every table the importer reads or validates.
var KnownTables = append([]string{
	TableTaskFin, TableTaskMemo, TableMemoType, TableActvCode, TableActvType, TableTaskActv,
}, ScheduleTables...)

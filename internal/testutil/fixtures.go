package testutil

import (
	"fmt"
	"sort"
	"time"

	"github.com/jjCode01/xer-pro/internal/importer"
)

const (
	DefaultProjectID  = "100"
	DefaultCalendarID = "1"
	DefaultRootWbsID  = "1000"
)

// DefaultDataDate is the data date of fixture projects (a Monday).
var DefaultDataDate = At(2024, time.January, 8, 8, 0)

// ScheduleBuilder assembles typed P6 tables for one project.
type ScheduleBuilder struct {
	projectID string
	tables    importer.Tables
}

// ProjectOption customizes the PROJECT row.
type ProjectOption func(importer.Row)

func WithDataDate(t time.Time) ProjectOption {
	return func(r importer.Row) { r["last_recalc_date"] = t }
}

func WithProjectName(shortName string) ProjectOption {
	return func(r importer.Row) { r["proj_short_name"] = shortName }
}

func WithMustFinish(t time.Time) ProjectOption {
	return func(r importer.Row) { r["plan_end_date"] = t }
}

func NotExported() ProjectOption {
	return func(r importer.Row) { r["export_flag"] = false }
}

// NewSchedule starts a project with a root WBS node named after the project
// and a standard five day calendar.
func NewSchedule(projectID string, opts ...ProjectOption) *ScheduleBuilder {
	b := &ScheduleBuilder{
		projectID: projectID,
		tables: importer.Tables{
			importer.TableProject:  {},
			importer.TableCalendar: {},
			importer.TableProjWBS:  {},
			importer.TableTask:     {},
			importer.TableTaskPred: {},
		},
	}

	project := importer.Row{
		"proj_id":          projectID,
		"proj_short_name":  "PRJ-" + projectID,
		"last_recalc_date": DefaultDataDate,
		"plan_start_date":  Date(2024, time.January, 1),
		"scd_end_date":     At(2024, time.June, 28, 17, 0),
		"export_flag":      true,
	}
	for _, opt := range opts {
		opt(project)
	}
	b.tables[importer.TableProject] = append(b.tables[importer.TableProject], project)

	b.AddWbs(DefaultRootWbsID+projectID, "", "PRJ", "Project "+projectID, func(r importer.Row) {
		r["proj_node_flag"] = true
	})
	b.AddCalendar(DefaultCalendarID, "Standard 5x8", "CA_Base", StandardCalendarData())
	return b
}

// RootWbsID returns the id of the project's root WBS node.
func (b *ScheduleBuilder) RootWbsID() string {
	return DefaultRootWbsID + b.projectID
}

func (b *ScheduleBuilder) AddCalendar(id, name, typeCode, data string) *ScheduleBuilder {
	b.tables[importer.TableCalendar] = append(b.tables[importer.TableCalendar], importer.Row{
		"clndr_id":   id,
		"clndr_name": name,
		"clndr_type": typeCode,
		"clndr_data": data,
	})
	return b
}

// RowOption adjusts a row after the builder fills in its defaults.
type RowOption func(importer.Row)

// Set assigns a raw field value.
func Set(field string, v any) RowOption {
	return func(r importer.Row) {
		if v == nil {
			delete(r, field)
			return
		}
		r[field] = v
	}
}

func (b *ScheduleBuilder) AddWbs(id, parentID, shortName, name string, opts ...RowOption) *ScheduleBuilder {
	row := importer.Row{
		"wbs_id":         id,
		"proj_id":        b.projectID,
		"wbs_short_name": shortName,
		"wbs_name":       name,
		"proj_node_flag": false,
	}
	if parentID != "" {
		row["parent_wbs_id"] = parentID
	}
	apply(row, opts)
	b.tables[importer.TableProjWBS] = append(b.tables[importer.TableProjWBS], row)
	return b
}

// TaskOption customizes a TASK row.
type TaskOption = RowOption

func WithStatus(code string) TaskOption { return Set("status_code", code) }
func WithTaskType(code string) TaskOption { return Set("task_type", code) }
func WithWbs(id string) TaskOption { return Set("wbs_id", id) }
func WithCalendar(id string) TaskOption { return Set("clndr_id", id) }

// WithDurationDays sets original and remaining duration in work days.
func WithDurationDays(original, remaining int) TaskOption {
	return func(r importer.Row) {
		r["target_drtn_hr_cnt"] = float64(original * 8)
		r["remain_drtn_hr_cnt"] = float64(remaining * 8)
	}
}

// WithFloatDays sets total and free float in work days.
func WithFloatDays(total, free int) TaskOption {
	return func(r importer.Row) {
		r["total_float_hr_cnt"] = float64(total * 8)
		r["free_float_hr_cnt"] = float64(free * 8)
	}
}

func WithEarlyDates(start, finish time.Time) TaskOption {
	return func(r importer.Row) {
		r["early_start_date"] = start
		r["early_end_date"] = finish
		r["restart_date"] = start
		r["reend_date"] = finish
	}
}

func WithActualDates(start time.Time, finish *time.Time) TaskOption {
	return func(r importer.Row) {
		r["act_start_date"] = start
		if finish != nil {
			r["act_end_date"] = *finish
		}
	}
}

func WithConstraint(code string, date time.Time) TaskOption {
	return func(r importer.Row) {
		r["cstr_type"] = code
		r["cstr_date"] = date
	}
}

// AddTask adds a not started, task dependent activity of five days on the
// default calendar under the root WBS node.
func (b *ScheduleBuilder) AddTask(id, code, name string, opts ...TaskOption) *ScheduleBuilder {
	row := importer.Row{
		"task_id":            id,
		"proj_id":            b.projectID,
		"wbs_id":             b.RootWbsID(),
		"clndr_id":           DefaultCalendarID,
		"task_code":          code,
		"task_name":          name,
		"task_type":          "TT_Task",
		"status_code":        "TK_NotStart",
		"complete_pct_type":  "CP_Drtn",
		"target_drtn_hr_cnt": 40.0,
		"remain_drtn_hr_cnt": 40.0,
		"total_float_hr_cnt": 0.0,
		"free_float_hr_cnt":  0.0,
		"early_start_date":   DefaultDataDate,
		"early_end_date":     At(2024, time.January, 12, 17, 0),
		"late_start_date":    DefaultDataDate,
		"late_end_date":      At(2024, time.January, 12, 17, 0),
	}
	apply(row, opts)
	b.tables[importer.TableTask] = append(b.tables[importer.TableTask], row)
	return b
}

// AddLogic links two tasks by id. link is FS, FF, SS or SF.
func (b *ScheduleBuilder) AddLogic(predID, succID, link string, lagDays int, opts ...RowOption) *ScheduleBuilder {
	n := len(b.tables[importer.TableTaskPred]) + 1
	row := importer.Row{
		"task_pred_id": fmt.Sprintf("%s-%d", b.projectID, n),
		"task_id":      succID,
		"pred_task_id": predID,
		"proj_id":      b.projectID,
		"pred_proj_id": b.projectID,
		"pred_type":    "PR_" + link,
		"lag_hr_cnt":   float64(lagDays * 8),
	}
	apply(row, opts)
	b.tables[importer.TableTaskPred] = append(b.tables[importer.TableTaskPred], row)
	return b
}

func (b *ScheduleBuilder) AddResource(id, name, typeCode string, opts ...RowOption) *ScheduleBuilder {
	row := importer.Row{
		"rsrc_id":         id,
		"rsrc_name":       name,
		"rsrc_short_name": name,
		"rsrc_type":       typeCode,
	}
	apply(row, opts)
	b.tables[importer.TableRsrc] = append(b.tables[importer.TableRsrc], row)
	return b
}

func (b *ScheduleBuilder) AddAccount(id, name string) *ScheduleBuilder {
	b.tables[importer.TableAccount] = append(b.tables[importer.TableAccount], importer.Row{
		"acct_id":         id,
		"acct_name":       name,
		"acct_short_name": name,
	})
	return b
}

// AddAssignment assigns a resource to a task with the given budget and
// remaining cost.
func (b *ScheduleBuilder) AddAssignment(id, taskID, rsrcID string, budget, remaining float64, opts ...RowOption) *ScheduleBuilder {
	row := importer.Row{
		"taskrsrc_id": id,
		"task_id":     taskID,
		"proj_id":     b.projectID,
		"rsrc_id":     rsrcID,
		"rsrc_type":   "RT_Labor",
		"target_cost": budget,
		"remain_cost": remaining,
		"target_qty":  budget / 100,
		"remain_qty":  remaining / 100,
	}
	apply(row, opts)
	b.tables[importer.TableTaskRsrc] = append(b.tables[importer.TableTaskRsrc], row)
	return b
}

func (b *ScheduleBuilder) AddFinancialPeriod(id, name string, start, finish time.Time) *ScheduleBuilder {
	b.tables[importer.TableFinDates] = append(b.tables[importer.TableFinDates], importer.Row{
		"fin_dates_id":   id,
		"fin_dates_name": name,
		"start_date":     start,
		"end_date":       finish,
	})
	return b
}

func (b *ScheduleBuilder) AddPeriodActual(periodID, taskRsrcID, taskID string, cost float64) *ScheduleBuilder {
	b.tables[importer.TableTrsrcFin] = append(b.tables[importer.TableTrsrcFin], importer.Row{
		"fin_dates_id": periodID,
		"taskrsrc_id":  taskRsrcID,
		"task_id":      taskID,
		"proj_id":      b.projectID,
		"act_cost":     cost,
	})
	return b
}

// Merge appends the rows of another builder, for multi-project files.
func (b *ScheduleBuilder) Merge(other *ScheduleBuilder) *ScheduleBuilder {
	for name, rows := range other.tables {
		b.tables[name] = append(b.tables[name], rows...)
	}
	return b
}

// Tables returns the assembled tables.
func (b *ScheduleBuilder) Tables() importer.Tables {
	return b.tables
}

// TableNames returns the table names in sorted order.
func TableNames(tables importer.Tables) []string {
	names := make([]string, 0, len(tables))
	for n := range tables {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func apply(row importer.Row, opts []RowOption) {
	for _, opt := range opts {
		opt(row)
	}
}

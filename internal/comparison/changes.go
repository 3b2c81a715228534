// Package comparison reports what changed between two updates of the same
// schedule. Tasks are matched by activity code, logic by predecessor,
// successor and link type, WBS nodes by short-name path and calendars by
// name and type.
package comparison

import (
	"github.com/jjCode01/xer-pro/internal/schedule"
)

type Category string

const (
	CategoryAddedTasks         Category = "added_tasks"
	CategoryDeletedTasks       Category = "deleted_tasks"
	CategoryTaskName           Category = "name"
	CategoryOriginalDuration   Category = "orig_duration"
	CategoryRemainingDuration  Category = "rem_duration"
	CategoryActualStart        Category = "act_start"
	CategoryActualFinish       Category = "act_finish"
	CategoryTaskCalendar       Category = "act_calendar"
	CategoryTaskWbs            Category = "act_wbs"
	CategoryTaskType           Category = "act_type"
	CategoryAddedConstraints   Category = "added_constraint"
	CategoryDeletedConstraints Category = "deleted_constraint"
	CategoryRevisedConstraints Category = "revised_constraint"
	CategoryNewlyStarted       Category = "newly_started"
	CategoryNewlyFinished      Category = "newly_finished"
	CategoryAddedLogic         Category = "added_logic"
	CategoryDeletedLogic       Category = "deleted_logic"
	CategoryRevisedLogic       Category = "revised_logic"
	CategoryAddedResources     Category = "added_resources"
	CategoryDeletedResources   Category = "deleted_resources"
	CategoryRevisedResources   Category = "revised_resources"
	CategoryAddedWbs           Category = "added_wbs"
	CategoryDeletedWbs         Category = "deleted_wbs"
	CategoryRenamedWbs         Category = "revised_wbs"
	CategoryAddedCalendars     Category = "added_calendars"
	CategoryDeletedCalendars   Category = "deleted_calendars"
	CategoryAddedHolidays      Category = "added_holidays"
	CategoryDeletedHolidays    Category = "deleted_holidays"
	CategoryAddedExceptions    Category = "added_exceptions"
	CategoryDeletedExceptions  Category = "deleted_exceptions"
)

// Categories lists every change category in report order.
var Categories = []Category{
	CategoryAddedTasks, CategoryDeletedTasks, CategoryTaskName,
	CategoryOriginalDuration, CategoryRemainingDuration,
	CategoryActualStart, CategoryActualFinish,
	CategoryTaskCalendar, CategoryTaskWbs, CategoryTaskType,
	CategoryAddedConstraints, CategoryDeletedConstraints, CategoryRevisedConstraints,
	CategoryNewlyStarted, CategoryNewlyFinished,
	CategoryAddedLogic, CategoryDeletedLogic, CategoryRevisedLogic,
	CategoryAddedResources, CategoryDeletedResources, CategoryRevisedResources,
	CategoryAddedWbs, CategoryDeletedWbs, CategoryRenamedWbs,
	CategoryAddedCalendars, CategoryDeletedCalendars,
	CategoryAddedHolidays, CategoryDeletedHolidays,
	CategoryAddedExceptions, CategoryDeletedExceptions,
}

// Changes groups every difference between a current and a previous
// schedule.
type Changes struct {
	Tasks     *TaskDiff
	Logic     *LogicDiff
	Resources *ResourceDiff
	Wbs       *WbsDiff
	Calendars *CalendarDiff
}

// Compare runs every sub-comparison of current against previous.
func Compare(current, previous *schedule.Schedule) *Changes {
	return &Changes{
		Tasks:     TaskChanges(current, previous),
		Logic:     LogicChanges(current, previous),
		Resources: ResourceChanges(current, previous),
		Wbs:       WbsChanges(current, previous),
		Calendars: CalendarChanges(current, previous),
	}
}

// Counts returns the number of records per category. Every category is
// present, zero or not.
func (c *Changes) Counts() map[Category]int {
	t, l, r, w, cal := c.Tasks, c.Logic, c.Resources, c.Wbs, c.Calendars
	return map[Category]int{
		CategoryAddedTasks:         len(t.Added),
		CategoryDeletedTasks:       len(t.Deleted),
		CategoryTaskName:           len(t.Name),
		CategoryOriginalDuration:   len(t.OriginalDuration),
		CategoryRemainingDuration:  len(t.RemainingDuration),
		CategoryActualStart:        len(t.ActualStart),
		CategoryActualFinish:       len(t.ActualFinish),
		CategoryTaskCalendar:       len(t.Calendar),
		CategoryTaskWbs:            len(t.Wbs),
		CategoryTaskType:           len(t.Type),
		CategoryAddedConstraints:   len(t.AddedConstraints),
		CategoryDeletedConstraints: len(t.DeletedConstraints),
		CategoryRevisedConstraints: len(t.RevisedConstraints),
		CategoryNewlyStarted:       len(t.NewlyStarted),
		CategoryNewlyFinished:      len(t.NewlyFinished),
		CategoryAddedLogic:         len(l.Added),
		CategoryDeletedLogic:       len(l.Deleted),
		CategoryRevisedLogic:       len(l.Revised),
		CategoryAddedResources:     len(r.Added),
		CategoryDeletedResources:   len(r.Deleted),
		CategoryRevisedResources:   len(r.Revised),
		CategoryAddedWbs:           len(w.Added),
		CategoryDeletedWbs:         len(w.Deleted),
		CategoryRenamedWbs:         len(w.Renamed),
		CategoryAddedCalendars:     len(cal.Added),
		CategoryDeletedCalendars:   len(cal.Deleted),
		CategoryAddedHolidays:      len(cal.AddedHolidays),
		CategoryDeletedHolidays:    len(cal.DeletedHolidays),
		CategoryAddedExceptions:    len(cal.AddedExceptions),
		CategoryDeletedExceptions:  len(cal.DeletedExceptions),
	}
}

// Empty reports whether no category has any record.
func (c *Changes) Empty() bool {
	for _, n := range c.Counts() {
		if n > 0 {
			return false
		}
	}
	return true
}

package formatter

import (
	"github.com/jjCode01/xer-pro/internal/comparison"
	"github.com/jjCode01/xer-pro/internal/warning"
)

var warningLabels = map[warning.Kind]string{
	warning.KindDuplicateNames: "Duplicate Names",
	warning.KindDuplicateLogic: "Duplicate Logic",
	warning.KindRedundantLogic: "Redundant Logic",
	warning.KindOpenEnds:       "Open Ends",
	warning.KindLags:           "Lags",
	warning.KindStartToFinish:  "Start to Finish Logic",
	warning.KindCosts:          "Cost Errors",
	warning.KindLongDurations:  "Long Durations",
}

// WarningLabel returns the display name of a warning kind.
func WarningLabel(k warning.Kind) string {
	if l, ok := warningLabels[k]; ok {
		return l
	}
	return string(k)
}

var categoryLabels = map[comparison.Category]string{
	comparison.CategoryAddedTasks:         "Added Activities",
	comparison.CategoryDeletedTasks:       "Deleted Activities",
	comparison.CategoryTaskName:           "Revised Activity Names",
	comparison.CategoryOriginalDuration:   "Revised Original Durations",
	comparison.CategoryRemainingDuration:  "Revised Remaining Durations",
	comparison.CategoryActualStart:        "Revised Actual Starts",
	comparison.CategoryActualFinish:       "Revised Actual Finishes",
	comparison.CategoryTaskCalendar:       "Revised Activity Calendars",
	comparison.CategoryTaskWbs:            "Revised Activity WBS",
	comparison.CategoryTaskType:           "Revised Activity Types",
	comparison.CategoryAddedConstraints:   "Added Constraints",
	comparison.CategoryDeletedConstraints: "Deleted Constraints",
	comparison.CategoryRevisedConstraints: "Revised Constraints",
	comparison.CategoryNewlyStarted:       "Started Activities",
	comparison.CategoryNewlyFinished:      "Finished Activities",
	comparison.CategoryAddedLogic:         "Added Logic",
	comparison.CategoryDeletedLogic:       "Deleted Logic",
	comparison.CategoryRevisedLogic:       "Revised Logic",
	comparison.CategoryAddedResources:     "Added Resources",
	comparison.CategoryDeletedResources:   "Deleted Resources",
	comparison.CategoryRevisedResources:   "Revised Resources",
	comparison.CategoryAddedWbs:           "Added WBS",
	comparison.CategoryDeletedWbs:         "Deleted WBS",
	comparison.CategoryRenamedWbs:         "Revised WBS Names",
	comparison.CategoryAddedCalendars:     "Added Calendars",
	comparison.CategoryDeletedCalendars:   "Deleted Calendars",
	comparison.CategoryAddedHolidays:      "Added Holidays",
	comparison.CategoryDeletedHolidays:    "Deleted Holidays",
	comparison.CategoryAddedExceptions:    "Added Work Exceptions",
	comparison.CategoryDeletedExceptions:  "Deleted Work Exceptions",
}

// CategoryLabel returns the display name of a change category.
func CategoryLabel(c comparison.Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

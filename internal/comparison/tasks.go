package comparison

import (
	"time"

	"github.com/jjCode01/xer-pro/internal/calendar"
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

// TaskPair is the same activity in the current and previous schedule.
type TaskPair struct {
	Current  *domain.Task
	Previous *domain.Task
}

type NameChange struct {
	TaskPair
	Similarity NameSimilarity
}

// CalendarChange records a task moved to a calendar with a different name.
type CalendarChange struct {
	TaskPair
	CurrentCalendar  string
	PreviousCalendar string
}

// WbsMove records a task whose WBS short-name path changed.
type WbsMove struct {
	TaskPair
	CurrentPath  string
	PreviousPath string
}

type ConstraintSlot string

const (
	SlotPrimary   ConstraintSlot = "Primary"
	SlotSecondary ConstraintSlot = "Secondary"
)

// ConstraintChange records a constraint slot difference. Added records carry
// only Current, deleted records only Previous and revisions both.
type ConstraintChange struct {
	Task     *domain.Task
	Slot     ConstraintSlot
	Current  *domain.Constraint
	Previous *domain.Constraint
}

type TaskDiff struct {
	Added   []*domain.Task
	Deleted []*domain.Task

	Name              []NameChange
	OriginalDuration  []TaskPair
	RemainingDuration []TaskPair
	ActualStart       []TaskPair
	ActualFinish      []TaskPair
	Calendar          []CalendarChange
	Wbs               []WbsMove
	Type              []TaskPair

	AddedConstraints   []ConstraintChange
	DeletedConstraints []ConstraintChange
	RevisedConstraints []ConstraintChange

	NewlyStarted  []*domain.Task
	NewlyFinished []*domain.Task
}

// TaskChanges matches tasks by activity code and records every attribute
// difference of the matched pairs. Records follow activity code order.
func TaskChanges(current, previous *schedule.Schedule) *TaskDiff {
	c := &TaskDiff{}

	for _, t := range previous.Tasks(schedule.TaskFilter{}) {
		if current.TaskByCode(t.Code) == nil {
			c.Deleted = append(c.Deleted, t)
		}
	}

	for _, cur := range current.Tasks(schedule.TaskFilter{}) {
		prev := previous.TaskByCode(cur.Code)
		if prev == nil {
			c.Added = append(c.Added, cur)
			continue
		}
		pair := TaskPair{Current: cur, Previous: prev}

		if cur.Name != prev.Name {
			c.Name = append(c.Name, NameChange{TaskPair: pair, Similarity: Similarity(cur.Name, prev.Name)})
		}

		if cur.OriginalDuration() != prev.OriginalDuration() {
			c.OriginalDuration = append(c.OriginalDuration, pair)
		} else if cur.IsNotStarted() && prev.IsNotStarted() && cur.RemainingDuration() != prev.RemainingDuration() {
			c.RemainingDuration = append(c.RemainingDuration, pair)
		}

		if !prev.IsNotStarted() && !sameDate(cur.Start(), prev.Start()) {
			c.ActualStart = append(c.ActualStart, pair)
		}
		if prev.IsCompleted() && !sameDate(cur.Finish(), prev.Finish()) {
			c.ActualFinish = append(c.ActualFinish, pair)
		}

		curCal, prevCal := calendarName(current, cur), calendarName(previous, prev)
		if curCal != prevCal {
			c.Calendar = append(c.Calendar, CalendarChange{TaskPair: pair, CurrentCalendar: curCal, PreviousCalendar: prevCal})
		}

		curPath, prevPath := current.WbsPathString(cur.WbsID), previous.WbsPathString(prev.WbsID)
		if curPath != prevPath {
			c.Wbs = append(c.Wbs, WbsMove{TaskPair: pair, CurrentPath: curPath, PreviousPath: prevPath})
		}

		if cur.Type != prev.Type {
			c.Type = append(c.Type, pair)
		}

		c.compareConstraint(cur, SlotPrimary, cur.PrimaryConstraint, prev.PrimaryConstraint)
		c.compareConstraint(cur, SlotSecondary, cur.SecondaryConstraint, prev.SecondaryConstraint)

		if prev.IsNotStarted() && !cur.IsNotStarted() {
			c.NewlyStarted = append(c.NewlyStarted, cur)
		}
		if !prev.IsCompleted() && cur.IsCompleted() {
			c.NewlyFinished = append(c.NewlyFinished, cur)
		}
	}
	return c
}

// compareConstraint records a new constraint as added, a removed one as
// deleted, a type change as both, and a date change on the same type as a
// revision.
func (c *TaskDiff) compareConstraint(t *domain.Task, slot ConstraintSlot, cur, prev *domain.Constraint) {
	switch {
	case sameConstraint(cur, prev):
	case prev == nil:
		c.AddedConstraints = append(c.AddedConstraints, ConstraintChange{Task: t, Slot: slot, Current: cur})
	case cur == nil:
		c.DeletedConstraints = append(c.DeletedConstraints, ConstraintChange{Task: t, Slot: slot, Previous: prev})
	case cur.Type != prev.Type:
		c.AddedConstraints = append(c.AddedConstraints, ConstraintChange{Task: t, Slot: slot, Current: cur})
		c.DeletedConstraints = append(c.DeletedConstraints, ConstraintChange{Task: t, Slot: slot, Previous: prev})
	default:
		c.RevisedConstraints = append(c.RevisedConstraints, ConstraintChange{Task: t, Slot: slot, Current: cur, Previous: prev})
	}
}

func sameConstraint(a, b *domain.Constraint) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	if a.Date == nil || b.Date == nil {
		return a.Date == b.Date
	}
	return a.Date.Equal(*b.Date)
}

// calendarName identifies a task's calendar across files, where ids are not
// stable. A missing calendar falls back to its id.
func calendarName(s *schedule.Schedule, t *domain.Task) string {
	if cal := s.Calendar(t.CalendarID); cal != nil {
		return cal.Name
	}
	return t.CalendarID
}

func sameDate(a, b time.Time) bool {
	return calendar.DateOf(a).Equal(calendar.DateOf(b))
}

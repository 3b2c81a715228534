package domain

import (
	"fmt"
	"time"
)

// HoursPerDay converts stored work hours to the work days P6 displays.
const HoursPerDay = 8

// Constraint is a scheduling constraint slot on a task.
type Constraint struct {
	Type ConstraintType
	Date *time.Time
}

func (c Constraint) String() string {
	if c.Date == nil {
		return c.Type.String()
	}
	return fmt.Sprintf("%s %s", c.Type, c.Date.Format("02-Jan-06"))
}

// Task is one activity. Identity within and across schedules is Code.
type Task struct {
	ID         string
	ProjectID  string
	WbsID      string
	CalendarID string
	Code       string
	Name       string
	Type       TaskType
	Status     TaskStatus

	PercentType PercentType
	PhysicalPct float64

	OriginalDurationHrs  float64
	RemainingDurationHrs float64
	TotalFloatHrs        *float64
	FreeFloatHrs         *float64

	ActualWorkQty    float64
	RemainingWorkQty float64

	ActualStart     *time.Time
	ActualFinish    *time.Time
	EarlyStart      *time.Time
	EarlyFinish     *time.Time
	LateStart       *time.Time
	LateFinish      *time.Time
	RemainingStart  *time.Time
	RemainingFinish *time.Time
	TargetStart     *time.Time
	TargetFinish    *time.Time

	PrimaryConstraint   *Constraint
	SecondaryConstraint *Constraint

	LongestPath bool
}

func (t *Task) IsNotStarted() bool { return t.Status == StatusNotStarted }
func (t *Task) IsInProgress() bool { return t.Status == StatusInProgress }
func (t *Task) IsCompleted() bool  { return t.Status == StatusComplete }

// IsOpen reports whether the task still has work remaining.
func (t *Task) IsOpen() bool { return !t.IsCompleted() }

func (t *Task) IsLOE() bool { return t.Type == TaskLOE }

func (t *Task) IsMilestone() bool {
	return t.Type == TaskStartMilestone || t.Type == TaskFinishMilestone
}

// IsCritical reports an open task with zero or negative total float.
func (t *Task) IsCritical() bool {
	tf := t.TotalFloat()
	return tf != nil && *tf <= 0
}

// OriginalDuration is the original duration in work days.
func (t *Task) OriginalDuration() int {
	return hoursToDays(t.OriginalDurationHrs)
}

// RemainingDuration is the remaining duration in work days.
func (t *Task) RemainingDuration() int {
	return hoursToDays(t.RemainingDurationHrs)
}

// TotalFloat is the total float in work days, nil for completed tasks or
// when P6 did not compute it.
func (t *Task) TotalFloat() *int {
	return floatDays(t, t.TotalFloatHrs)
}

// FreeFloat is the free float in work days, nil for completed tasks.
func (t *Task) FreeFloat() *int {
	return floatDays(t, t.FreeFloatHrs)
}

func floatDays(t *Task, hrs *float64) *int {
	if t.IsCompleted() || hrs == nil {
		return nil
	}
	d := hoursToDays(*hrs)
	return &d
}

func hoursToDays(hrs float64) int {
	return int(hrs / HoursPerDay)
}

// Start is the actual start once started, else the early start.
func (t *Task) Start() time.Time {
	if t.IsNotStarted() {
		return deref(t.EarlyStart)
	}
	return deref(t.ActualStart)
}

// Finish is the actual finish once complete, else the early finish.
func (t *Task) Finish() time.Time {
	if t.IsCompleted() {
		return deref(t.ActualFinish)
	}
	return deref(t.EarlyFinish)
}

// PercentComplete follows the task's percent complete type and returns a
// value between 0 and 100.
func (t *Task) PercentComplete() float64 {
	switch t.PercentType {
	case PercentPhysical:
		return t.PhysicalPct
	case PercentDuration:
		if t.IsCompleted() {
			return 100
		}
		if t.OriginalDurationHrs == 0 || t.IsNotStarted() {
			return 0
		}
		pct := (t.OriginalDurationHrs - t.RemainingDurationHrs) / t.OriginalDurationHrs * 100
		return min(max(pct, 0), 100)
	case PercentUnits:
		total := t.ActualWorkQty + t.RemainingWorkQty
		if total == 0 {
			return 0
		}
		return t.ActualWorkQty / total * 100
	default:
		return 0
	}
}

func (t *Task) String() string {
	return fmt.Sprintf("%s - %s", t.Code, t.Name)
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrTime(t time.Time) *time.Time { return &t }

func TestTask_DurationsTruncateToWorkDays(t *testing.T) {
	task := &Task{Status: StatusNotStarted, OriginalDurationHrs: 44, RemainingDurationHrs: 4}
	assert.Equal(t, 5, task.OriginalDuration())
	assert.Equal(t, 0, task.RemainingDuration())
}

func TestTask_FloatUndefinedWhenComplete(t *testing.T) {
	task := &Task{Status: StatusInProgress, TotalFloatHrs: ptrFloat(-16), FreeFloatHrs: ptrFloat(40)}
	require.NotNil(t, task.TotalFloat())
	assert.Equal(t, -2, *task.TotalFloat())
	assert.Equal(t, 5, *task.FreeFloat())
	assert.True(t, task.IsCritical())

	task.Status = StatusComplete
	assert.Nil(t, task.TotalFloat())
	assert.Nil(t, task.FreeFloat())
	assert.False(t, task.IsCritical())
}

func TestTask_StartFinishByStatus(t *testing.T) {
	early := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	earlyEnd := time.Date(2024, 3, 8, 17, 0, 0, 0, time.UTC)
	actual := time.Date(2024, 2, 26, 8, 0, 0, 0, time.UTC)
	actualEnd := time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC)

	task := &Task{
		Status:       StatusNotStarted,
		EarlyStart:   &early,
		EarlyFinish:  &earlyEnd,
		ActualStart:  &actual,
		ActualFinish: &actualEnd,
	}
	assert.Equal(t, early, task.Start())
	assert.Equal(t, earlyEnd, task.Finish())

	task.Status = StatusInProgress
	assert.Equal(t, actual, task.Start())
	assert.Equal(t, earlyEnd, task.Finish())

	task.Status = StatusComplete
	assert.Equal(t, actualEnd, task.Finish())
}

func TestTask_PercentComplete(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want float64
	}{
		{"physical", Task{PercentType: PercentPhysical, PhysicalPct: 35}, 35},
		{"duration in progress", Task{PercentType: PercentDuration, Status: StatusInProgress, OriginalDurationHrs: 80, RemainingDurationHrs: 20}, 75},
		{"duration not started", Task{PercentType: PercentDuration, Status: StatusNotStarted, OriginalDurationHrs: 80, RemainingDurationHrs: 80}, 0},
		{"duration complete", Task{PercentType: PercentDuration, Status: StatusComplete, OriginalDurationHrs: 80}, 100},
		{"units", Task{PercentType: PercentUnits, ActualWorkQty: 30, RemainingWorkQty: 90}, 25},
		{"units empty", Task{PercentType: PercentUnits}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.task.PercentComplete(), 1e-9)
		})
	}
}

func TestTask_TypeHelpers(t *testing.T) {
	assert.True(t, (&Task{Type: TaskFinishMilestone}).IsMilestone())
	assert.True(t, (&Task{Type: TaskLOE}).IsLOE())
	assert.False(t, (&Task{Type: TaskDependent}).IsMilestone())
	assert.Equal(t, "Level of Effort", TaskLOE.String())
	assert.Equal(t, "Resource Dependent", TaskResourceDependent.String())
	assert.Equal(t, TaskResourceDependent, TaskType("TT_Rsrc"))
	assert.Equal(t, "In Progress", StatusInProgress.String())
}

func TestConstraint_String(t *testing.T) {
	c := Constraint{Type: ConstraintMSOA, Date: ptrTime(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC))}
	assert.Equal(t, "Start On or After 06-May-24", c.String())
	assert.Equal(t, "As Late As Possible", Constraint{Type: ConstraintALAP}.String())
}

func TestParseLinkType(t *testing.T) {
	assert.Equal(t, LinkFS, ParseLinkType("PR_FS"))
	assert.Equal(t, LinkSF, ParseLinkType("PR_SF"))
	assert.Equal(t, LinkType("X"), ParseLinkType("X"))
}

func TestRelationship_KeyAndLag(t *testing.T) {
	r := &Relationship{PredecessorCode: "A100", SuccessorCode: "A200", Link: LinkSS, LagHrs: -24}
	assert.Equal(t, RelationshipKey{Predecessor: "A100", Successor: "A200", Link: LinkSS}, r.Key())
	assert.Equal(t, -3, r.Lag())
}

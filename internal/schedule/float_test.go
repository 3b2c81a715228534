package schedule

import (
	"testing"
	"time"

	"github.com/jjCode01/xer-pro/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	th := DefaultFloatThresholds()
	tests := []struct {
		tf   int
		want FloatGroup
	}{
		{-5, FloatCritical},
		{0, FloatCritical},
		{1, FloatNearCritical},
		{20, FloatNearCritical},
		{21, FloatNormal},
		{49, FloatNormal},
		{50, FloatHigh},
		{400, FloatHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, th.Classify(tt.tf), "tf=%d", tt.tf)
	}
}

func TestGroupByFloat_PartitionsOpenTasks(t *testing.T) {
	finish := testutil.At(2024, time.January, 5, 17, 0)
	s := build(t, testutil.NewSchedule("100").
		AddTask("1", "A1", "Negative", testutil.WithFloatDays(-1, 0)).
		AddTask("2", "A2", "Zero", testutil.WithFloatDays(0, 0)).
		AddTask("3", "A3", "Uncomputed", testutil.Set("total_float_hr_cnt", nil)).
		AddTask("4", "A4", "One", testutil.WithFloatDays(1, 0)).
		AddTask("5", "A5", "Twenty", testutil.WithFloatDays(20, 0)).
		AddTask("6", "A6", "Twenty One", testutil.WithFloatDays(21, 0)).
		AddTask("7", "A7", "Forty Nine", testutil.WithFloatDays(49, 0)).
		AddTask("8", "A8", "Fifty", testutil.WithFloatDays(50, 0)).
		AddTask("9", "A9", "Done", testutil.WithFloatDays(90, 0), testutil.WithStatus("TK_Complete"),
			testutil.WithActualDates(testutil.At(2024, time.January, 1, 8, 0), &finish)))

	groups := s.GroupByFloat(DefaultFloatThresholds())
	total := 0
	for _, ts := range groups {
		total += len(ts)
	}
	assert.Equal(t, len(s.OpenTasks()), total, "every open task lands in exactly one group")
	assert.Len(t, groups[FloatCritical], 3)
	assert.Len(t, groups[FloatNearCritical], 2)
	assert.Len(t, groups[FloatNormal], 2)
	assert.Len(t, groups[FloatHigh], 1)

	dist := s.FloatDistribution(DefaultFloatThresholds())
	assert.Equal(t, []FloatGroup{FloatCritical, FloatNearCritical, FloatNormal, FloatHigh},
		[]FloatGroup{dist[0].Group, dist[1].Group, dist[2].Group, dist[3].Group})
	assert.InDelta(t, 37.5, dist[0].Percent, 1e-9)
	assert.InDelta(t, 12.5, dist[3].Percent, 1e-9)
}

func TestFloatDistribution_EmptySchedule(t *testing.T) {
	s := build(t, testutil.NewSchedule("100"))
	for _, share := range s.FloatDistribution(DefaultFloatThresholds()) {
		assert.Zero(t, share.Count)
		assert.Zero(t, share.Percent)
	}
}

func TestGroupByFloat_CustomThresholds(t *testing.T) {
	s := build(t, testutil.NewSchedule("100").
		AddTask("1", "A1", "Ten", testutil.WithFloatDays(10, 0)))

	groups := s.GroupByFloat(FloatThresholds{NearCritical: 5, HighFloat: 10})
	assert.Len(t, groups[FloatHigh], 1)
}

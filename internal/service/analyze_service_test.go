package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/jjCode01/xer-pro/internal/schedule"
	"github.com/jjCode01/xer-pro/internal/testutil"
	"github.com/jjCode01/xer-pro/internal/warning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzeService(observers ...UseCaseObserver) AnalyzeService {
	return NewAnalyzeService(NewScheduleService(NewTableSource()), observers...)
}

func TestAnalyze_FullReport(t *testing.T) {
	tables := baseSchedule(testutil.DefaultProjectID).
		AddTask("3", "A1020", "Pour Footings").
		Tables()
	path := testutil.WriteXER(t, tables)
	obs := &recordingObserver{}

	resp, err := newAnalyzeService(obs).Analyze(context.Background(), contract.NewAnalyzeRequest(path))
	require.NoError(t, err)

	_, err = uuid.Parse(resp.RunID)
	assert.NoError(t, err)
	assert.Equal(t, 3, resp.Summary.TaskTotal)
	require.Len(t, resp.Float, len(schedule.FloatGroups))
	assert.Equal(t, 3, resp.Float[0].Count, "zero float tasks are critical")

	require.NotNil(t, resp.Warnings)
	assert.Len(t, resp.Warnings.DuplicateNames, 1)
	require.NoError(t, resp.CashFlowErr)
	require.NotNil(t, resp.CashFlow)
	assert.InDelta(t, 1000.0, resp.CashFlow.EarlyRemaining.Total(), 1e-6)
	require.NotNil(t, resp.WorkFlow)
	require.NotNil(t, resp.Schedule)

	events := obs.named("analyze")
	require.Len(t, events, 1)
	assert.Equal(t, resp.RunID, events[0].RunID)
	assert.Equal(t, resp.Warnings.Total(), events[0].Fields["warnings"])
}

func TestAnalyze_OptionalReportsSkipped(t *testing.T) {
	path := testutil.WriteXER(t, baseSchedule(testutil.DefaultProjectID).Tables())
	req := contract.NewAnalyzeRequest(path)
	req.IncludeWarnings = false
	req.IncludeCashFlow = false
	req.IncludeWorkFlow = false

	resp, err := newAnalyzeService().Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.Warnings)
	assert.Nil(t, resp.CashFlow)
	assert.NoError(t, resp.CashFlowErr)
	assert.Nil(t, resp.WorkFlow)
}

func TestAnalyze_CashFlowMismatchKeepsOtherReports(t *testing.T) {
	tables := testutil.NewSchedule(testutil.DefaultProjectID).
		AddTask("1", "A1000", "Short Task", testutil.WithDurationDays(5, 3)).
		AddResource("7", "Carpenter", "RT_Labor").
		AddAssignment("55", "1", "7", 1000, 1000,
			testutil.Set("restart_date", testutil.At(2024, time.January, 8, 8, 0)),
			testutil.Set("reend_date", testutil.At(2024, time.January, 12, 17, 0))).
		Tables()
	path := testutil.WriteXER(t, tables)
	obs := &recordingObserver{}

	resp, err := newAnalyzeService(obs).Analyze(context.Background(), contract.NewAnalyzeRequest(path))
	require.NoError(t, err)
	assert.ErrorIs(t, resp.CashFlowErr, schedule.ErrRemainingHoursMismatch)
	assert.Nil(t, resp.CashFlow)
	assert.NotNil(t, resp.Warnings)
	assert.Contains(t, obs.named("analyze")[0].Fields, "cash_flow_error")
}

func TestAnalyze_ThresholdsFlowThrough(t *testing.T) {
	tables := testutil.NewSchedule(testutil.DefaultProjectID).
		AddTask("1", "A1000", "Install Duct", testutil.WithDurationDays(15, 15), testutil.WithFloatDays(5, 5)).
		Tables()
	path := testutil.WriteXER(t, tables)

	req := contract.NewAnalyzeRequest(path)
	req.Warnings = warning.Options{LongDurationDays: 10, LongLagDays: 10, Classifier: warning.DefaultClassifier()}
	req.FloatThresholds = schedule.FloatThresholds{NearCritical: 3, HighFloat: 4}

	resp, err := newAnalyzeService().Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Warnings.LongDurations, 1)
	assert.Equal(t, schedule.FloatHigh, resp.Float[3].Group)
	assert.Equal(t, 1, resp.Float[3].Count)
}

func TestAnalyze_OpenErrorIsReturned(t *testing.T) {
	obs := &recordingObserver{}
	_, err := newAnalyzeService(obs).Analyze(context.Background(), contract.NewAnalyzeRequest("missing.xer"))
	require.Error(t, err)

	events := obs.named("analyze")
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
}

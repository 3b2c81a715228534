package service

import (
	"context"
	"testing"
	"time"

	"github.com/jjCode01/xer-pro/internal/comparison"
	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/jjCode01/xer-pro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompareService(observers ...UseCaseObserver) CompareService {
	return NewCompareService(NewScheduleService(NewTableSource()), observers...)
}

func comparePair(t *testing.T) (previous, current string) {
	t.Helper()
	previous = testutil.WriteXER(t, baseSchedule(testutil.DefaultProjectID).Tables())
	current = testutil.WriteXER(t, baseSchedule(testutil.DefaultProjectID,
		testutil.WithDataDate(testutil.At(2024, time.February, 5, 8, 0))).
		AddTask("3", "A1020", "Backfill").
		AddLogic("2", "3", "FS", 0).
		Tables())
	return previous, current
}

func TestCompare_OrdersByDataDate(t *testing.T) {
	previous, current := comparePair(t)
	obs := &recordingObserver{}

	resp, err := newCompareService(obs).Compare(context.Background(), contract.NewCompareRequest(previous, current))
	require.NoError(t, err)

	assert.True(t, resp.Swapped)
	assert.Equal(t, testutil.At(2024, time.February, 5, 8, 0), resp.Current.DataDate)
	assert.Equal(t, testutil.DefaultDataDate, resp.Previous.DataDate)
	assert.Equal(t, 1, resp.Counts[comparison.CategoryAddedTasks])
	assert.Equal(t, 1, resp.Counts[comparison.CategoryAddedLogic])
	assert.Equal(t, 0, resp.Counts[comparison.CategoryDeletedTasks])
	require.Len(t, resp.Changes.Tasks.Added, 1)
	assert.Equal(t, "A1020", resp.Changes.Tasks.Added[0].Code)
	assert.NotEmpty(t, resp.CurrentFloat)
	assert.NotEmpty(t, resp.PreviousFloat)

	events := obs.named("compare")
	require.Len(t, events, 1)
	assert.Equal(t, resp.RunID, events[0].RunID)
	assert.Equal(t, 2, events[0].Fields["changes"])
}

func TestCompare_ArgumentOrderDoesNotMatter(t *testing.T) {
	previous, current := comparePair(t)
	svc := newCompareService()

	forward, err := svc.Compare(context.Background(), contract.NewCompareRequest(current, previous))
	require.NoError(t, err)
	reverse, err := svc.Compare(context.Background(), contract.NewCompareRequest(previous, current))
	require.NoError(t, err)

	assert.False(t, forward.Swapped)
	assert.True(t, reverse.Swapped)
	assert.Equal(t, forward.Counts, reverse.Counts)
}

func TestCompare_SameFileHasNoChanges(t *testing.T) {
	previous, _ := comparePair(t)

	resp, err := newCompareService().Compare(context.Background(), contract.NewCompareRequest(previous, previous))
	require.NoError(t, err)
	assert.True(t, resp.Changes.Empty())
	assert.False(t, resp.Swapped)
}

func TestCompare_OpenFailureNamesTheFile(t *testing.T) {
	previous, _ := comparePair(t)

	_, err := newCompareService().Compare(context.Background(), contract.NewCompareRequest(previous, "missing.xer"))
	assert.ErrorContains(t, err, "opening missing.xer")
}

package warning_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
	"github.com/jjCode01/xer-pro/internal/testutil"
	"github.com/jjCode01/xer-pro/internal/warning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, b *testutil.ScheduleBuilder) *schedule.Schedule {
	t.Helper()
	s, err := schedule.Build(testutil.DefaultProjectID, b.Tables())
	require.NoError(t, err)
	return s
}

func newSchedule() *testutil.ScheduleBuilder {
	return testutil.NewSchedule(testutil.DefaultProjectID)
}

func codes(ts []*domain.Task) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Code
	}
	return out
}

func TestDuplicateNames(t *testing.T) {
	s := build(t, newSchedule().
		AddTask("2", "A2", "Pour Slab").
		AddTask("3", "A3", "Frame Wall").
		AddTask("1", "A1", "Pour Slab"))

	groups := warning.DuplicateNames(s)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"A1", "A2"}, codes(groups[0]))
}

func TestDuplicateNames_GroupsSortedByName(t *testing.T) {
	s := build(t, newSchedule().
		AddTask("1", "A1", "Set Forms").
		AddTask("2", "A2", "Set Forms").
		AddTask("3", "A3", "Cure").
		AddTask("4", "A4", "Cure"))

	groups := warning.DuplicateNames(s)
	require.Len(t, groups, 2)
	assert.Equal(t, "Cure", groups[0][0].Name)
	assert.Equal(t, "Set Forms", groups[1][0].Name)
}

func TestDuplicateLogic(t *testing.T) {
	s := build(t, newSchedule().
		AddTask("1", "A1", "One").
		AddTask("2", "A2", "Two").
		AddTask("3", "A3", "Three").
		AddLogic("1", "2", "FS", 0).
		AddLogic("1", "2", "SS", 0).
		AddLogic("2", "3", "SS", 0).
		AddLogic("2", "3", "FF", 0).
		AddLogic("1", "3", "FS", 0))

	groups := warning.DuplicateLogic(s)
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 2)
	assert.Equal(t, "A1", groups[0][0].PredecessorCode)
	assert.Equal(t, "A2", groups[0][0].SuccessorCode)
}

func TestRedundantLogic_Trivial(t *testing.T) {
	s := build(t, newSchedule().
		AddTask("1", "X", "Origin").
		AddTask("2", "Y", "Target").
		AddTask("3", "Z", "Middle").
		AddLogic("1", "2", "FS", 0).
		AddLogic("1", "3", "FS", 0).
		AddLogic("3", "2", "FS", 0))

	found := warning.RedundantLogic(s)
	require.Len(t, found, 1)
	assert.Equal(t, domain.RelationshipKey{Predecessor: "X", Successor: "Y", Link: domain.LinkFS}, found[0].Implied.Key())
	assert.Equal(t, domain.RelationshipKey{Predecessor: "X", Successor: "Z", Link: domain.LinkFS}, found[0].Epoch.Key())
	assert.Equal(t, 2, found[0].Depth)
}

func TestRedundantLogic_LinkTypeAndLOE(t *testing.T) {
	mismatch := build(t, newSchedule().
		AddTask("1", "X", "Origin").
		AddTask("2", "Y", "Target").
		AddTask("3", "Z", "Middle").
		AddLogic("1", "2", "SS", 0).
		AddLogic("1", "3", "FS", 0).
		AddLogic("3", "2", "FS", 0))
	assert.Empty(t, warning.RedundantLogic(mismatch), "an SS tie is not implied by an FS path")

	loe := build(t, newSchedule().
		AddTask("1", "X", "Origin").
		AddTask("2", "Y", "Level of Effort", testutil.WithTaskType("TT_LOE")).
		AddTask("3", "Z", "Middle").
		AddLogic("1", "2", "FS", 0).
		AddLogic("1", "3", "FS", 0).
		AddLogic("3", "2", "FS", 0))
	assert.Empty(t, warning.RedundantLogic(loe))
}

func TestRedundantLogic_DeepFanTerminates(t *testing.T) {
	const levels, width = 5, 4
	b := newSchedule().AddTask("0", "S", "Start").AddTask("999", "F", "Finish")
	id := func(level, i int) string { return fmt.Sprintf("%d%02d", level, i) }
	for l := 1; l <= levels; l++ {
		for i := 0; i < width; i++ {
			b.AddTask(id(l, i), fmt.Sprintf("L%d-%d", l, i), "Fan")
		}
	}
	for i := 0; i < width; i++ {
		b.AddLogic("0", id(1, i), "FS", 0)
		b.AddLogic(id(levels, i), "999", "FS", 0)
		for l := 1; l < levels; l++ {
			for j := 0; j < width; j++ {
				b.AddLogic(id(l, i), id(l+1, j), "FS", 0)
			}
		}
	}
	b.AddLogic("0", "999", "FS", 0)
	b.AddLogic("0", id(3, 0), "FS", 0)
	s := build(t, b)

	done := make(chan []warning.RedundantLink, 1)
	go func() { done <- warning.RedundantLogic(s) }()

	select {
	case found := <-done:
		require.Len(t, found, 2)
		depths := map[string]int{}
		for _, f := range found {
			assert.Equal(t, "S", f.Implied.PredecessorCode)
			depths[f.Implied.SuccessorCode] = f.Depth
		}
		assert.Equal(t, map[string]int{"F": levels + 1, "L3-0": 3}, depths)
	case <-time.After(5 * time.Second):
		t.Fatal("redundant logic search did not terminate")
	}
}

func TestOpenEnds(t *testing.T) {
	s := build(t, newSchedule().
		AddTask("1", "A1", "Start").
		AddTask("2", "A2", "Middle").
		AddTask("3", "A3", "Only SF In").
		AddTask("4", "A4", "Isolated").
		AddLogic("1", "2", "FS", 0).
		AddLogic("2", "3", "SF", 0))

	ends := warning.OpenEnds(s)
	assert.Equal(t, []string{"A1", "A4"}, codes(ends[warning.OpenPredecessor]))
	assert.Equal(t, []string{"A3"}, codes(ends[warning.OpenStart]))
	assert.Equal(t, []string{"A3", "A4"}, codes(ends[warning.OpenSuccessor]))
	assert.Equal(t, []string{"A2"}, codes(ends[warning.OpenFinish]))
	assert.Equal(t, 6, ends.Count())
}

func TestLagWarnings(t *testing.T) {
	s := build(t, newSchedule().
		AddTask("1", "A1", "One").
		AddTask("2", "A2", "Two", testutil.WithDurationDays(5, 5)).
		AddTask("3", "A3", "Three").
		AddTask("4", "A4", "Four", testutil.WithDurationDays(5, 5)).
		AddTask("5", "A5", "Five").
		AddLogic("1", "2", "FS", 2).
		AddLogic("2", "3", "SS", 5).
		AddLogic("3", "4", "FF", 12).
		AddLogic("4", "5", "FS", -1).
		AddLogic("1", "5", "SS", 1))

	got := warning.LagWarnings(s, 10)
	type finding struct {
		kind warning.LagKind
		tie  string
	}
	var findings []finding
	for _, w := range got {
		findings = append(findings, finding{w.Kind, w.Relationship.PredecessorCode + w.Relationship.SuccessorCode})
	}
	assert.Equal(t, []finding{
		{warning.LagOnFS, "A1A2"},
		{warning.LagSSExceedsDur, "A2A3"},
		{warning.LagLong, "A3A4"},
		{warning.LagFFExceedsDur, "A3A4"},
		{warning.LagNegative, "A4A5"},
	}, findings)
}

func TestStartToFinish(t *testing.T) {
	s := build(t, newSchedule().
		AddTask("1", "A1", "One").
		AddTask("2", "A2", "Two").
		AddLogic("1", "2", "SF", 0).
		AddLogic("1", "2", "FS", 0))

	sf := warning.StartToFinish(s)
	require.Len(t, sf, 1)
	assert.Equal(t, domain.LinkSF, sf[0].Link)
}

func TestCostWarnings(t *testing.T) {
	active := []testutil.TaskOption{
		testutil.WithStatus("TK_Active"),
		testutil.WithActualDates(testutil.At(2024, time.January, 2, 8, 0), nil),
		testutil.WithDurationDays(10, 5),
	}
	s := build(t, newSchedule().
		AddTask("1", "A1", "Over Budget", active...).
		AddTask("2", "A2", "Behind Earned", active...).
		AddTask("3", "A3", "Untouched").
		AddResource("7", "Carpenter", "RT_Labor").
		AddAssignment("51", "1", "7", 1000, 600, testutil.Set("act_reg_cost", 500.0)).
		AddAssignment("52", "2", "7", 1000, 700, testutil.Set("act_reg_cost", 300.0)).
		AddAssignment("53", "3", "7", 100, 100))

	got := warning.CostWarnings(s)
	require.Len(t, got, 2)

	assert.Equal(t, warning.CostVariance, got[0].Kind)
	assert.Equal(t, "A1", got[0].Resource.TaskCode)
	assert.Equal(t, 1000.0, got[0].Expected)
	assert.Equal(t, 1100.0, got[0].Actual)

	assert.Equal(t, warning.CostEarnedValue, got[1].Kind)
	assert.Equal(t, "A2", got[1].Resource.TaskCode)
	assert.Equal(t, 500.0, got[1].Expected)
	assert.Equal(t, 300.0, got[1].Actual)
}

func TestLongDurations(t *testing.T) {
	root := testutil.DefaultRootWbsID + testutil.DefaultProjectID
	s := build(t, newSchedule().
		AddWbs("11", root, "PRC", "Procurement").
		AddTask("1", "A1", "Install Duct", testutil.WithDurationDays(30, 30)).
		AddTask("2", "A2", "Submit Shop Drawings", testutil.WithDurationDays(30, 30)).
		AddTask("3", "A3", "Install Anchors", testutil.WithDurationDays(30, 30), testutil.WithWbs("11")).
		AddTask("4", "A4", "Site Supervision", testutil.WithDurationDays(40, 40), testutil.WithTaskType("TT_LOE")).
		AddTask("5", "A5", "Pour Slab", testutil.WithDurationDays(20, 20)).
		AddTask("6", "A6", "Misc Work", testutil.WithDurationDays(25, 25)))

	assert.Equal(t, []string{"A1", "A6"}, codes(warning.LongDurations(s, 20, warning.DefaultClassifier())))
}

func TestCheck_MatchesIndividualChecks(t *testing.T) {
	s := build(t, newSchedule().
		AddTask("1", "X", "Pour Slab").
		AddTask("2", "Y", "Pour Slab").
		AddTask("3", "Z", "Middle", testutil.WithDurationDays(30, 30)).
		AddLogic("1", "2", "FS", 0).
		AddLogic("1", "3", "FS", 0).
		AddLogic("3", "2", "SF", 0))

	w := warning.Check(s, warning.DefaultOptions())

	assert.Equal(t, warning.DuplicateNames(s), w.DuplicateNames)
	assert.Equal(t, warning.OpenEnds(s), w.OpenEnds)
	assert.Equal(t, warning.StartToFinish(s), w.StartToFinish)
	assert.Equal(t, codes(warning.LongDurations(s, 20, warning.DefaultClassifier())), codes(w.LongDurations))

	counts := w.Counts()
	assert.Len(t, counts, len(warning.Kinds))
	assert.Equal(t, 1, counts[warning.KindDuplicateNames])
	assert.Equal(t, 1, counts[warning.KindStartToFinish])
	assert.Equal(t, 1, counts[warning.KindLongDurations])
	assert.Equal(t, 1, counts[warning.KindRedundantLogic], "an FS tie is implied by any path")
}

func TestWarnings_Entries(t *testing.T) {
	s := build(t, newSchedule().
		AddTask("1", "A1", "Pour Slab").
		AddTask("2", "A2", "Pour Slab").
		AddLogic("1", "2", "SF", 0))

	entries := warning.Check(s, warning.DefaultOptions()).Entries()
	assert.Equal(t, []warning.Entry{
		{Kind: warning.KindDuplicateNames, Item: "A1, A2", Detail: "Pour Slab"},
		{Kind: warning.KindOpenEnds, Item: "A1", Detail: string(warning.OpenPredecessor)},
		{Kind: warning.KindOpenEnds, Item: "A2", Detail: string(warning.OpenStart)},
		{Kind: warning.KindOpenEnds, Item: "A2", Detail: string(warning.OpenSuccessor)},
		{Kind: warning.KindOpenEnds, Item: "A1", Detail: string(warning.OpenFinish)},
		{Kind: warning.KindStartToFinish, Item: "A1 -> A2 [SF 0]"},
	}, entries)
}

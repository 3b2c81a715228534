// Package warning runs quality checks over a single schedule: duplicated
// names and logic, redundant and open-ended logic, lags, costs and long
// durations.
package warning

import (
	"sync"

	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

type Kind string

const (
	KindDuplicateNames Kind = "duplicate_names"
	KindDuplicateLogic Kind = "duplicate_logic"
	KindRedundantLogic Kind = "redundant_logic"
	KindOpenEnds       Kind = "open_ends"
	KindLags           Kind = "lags"
	KindStartToFinish  Kind = "sf_logic"
	KindCosts          Kind = "costs"
	KindLongDurations  Kind = "long_durations"
)

var Kinds = []Kind{
	KindDuplicateNames, KindDuplicateLogic, KindRedundantLogic, KindOpenEnds,
	KindLags, KindStartToFinish, KindCosts, KindLongDurations,
}

// Options holds the thresholds of the checks, in work days.
type Options struct {
	LongLagDays      int
	LongDurationDays int
	Classifier       Classifier
}

func DefaultOptions() Options {
	return Options{
		LongLagDays:      10,
		LongDurationDays: 20,
		Classifier:       DefaultClassifier(),
	}
}

type Warnings struct {
	DuplicateNames [][]*domain.Task
	DuplicateLogic [][]*domain.Relationship
	RedundantLogic []RedundantLink
	OpenEnds       OpenEndGroups
	Lags           []LagWarning
	StartToFinish  []*domain.Relationship
	Costs          []CostWarning
	LongDurations  []*domain.Task
}

// Check runs every check concurrently. The schedule is only read.
func Check(s *schedule.Schedule, opts Options) *Warnings {
	w := &Warnings{}
	var wg sync.WaitGroup
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(func() { w.DuplicateNames = DuplicateNames(s) })
	run(func() { w.DuplicateLogic = DuplicateLogic(s) })
	run(func() { w.RedundantLogic = RedundantLogic(s) })
	run(func() { w.OpenEnds = OpenEnds(s) })
	run(func() { w.Lags = LagWarnings(s, opts.LongLagDays) })
	run(func() { w.StartToFinish = StartToFinish(s) })
	run(func() { w.Costs = CostWarnings(s) })
	run(func() { w.LongDurations = LongDurations(s, opts.LongDurationDays, opts.Classifier) })
	wg.Wait()
	return w
}

// Counts returns the number of findings per kind. Duplicate groups count
// once per group.
func (w *Warnings) Counts() map[Kind]int {
	return map[Kind]int{
		KindDuplicateNames: len(w.DuplicateNames),
		KindDuplicateLogic: len(w.DuplicateLogic),
		KindRedundantLogic: len(w.RedundantLogic),
		KindOpenEnds:       w.OpenEnds.Count(),
		KindLags:           len(w.Lags),
		KindStartToFinish:  len(w.StartToFinish),
		KindCosts:          len(w.Costs),
		KindLongDurations:  len(w.LongDurations),
	}
}

func (w *Warnings) Total() int {
	n := 0
	for _, c := range w.Counts() {
		n += c
	}
	return n
}

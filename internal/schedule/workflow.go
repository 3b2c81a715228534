package schedule

import (
	"time"

	"github.com/jjCode01/xer-pro/internal/calendar"
)

const (
	LabelPlannedStarts   = "Planned Starts"
	LabelPlannedFinishes = "Planned Finishes"
	LabelActualStarts    = "Actual Starts"
	LabelActualFinishes  = "Actual Finishes"
)

// WorkFlowReport counts task starts and finishes per month.
type WorkFlowReport struct {
	PlannedStarts   MonthlySeries
	PlannedFinishes MonthlySeries
	ActualStarts    MonthlySeries
	ActualFinishes  MonthlySeries
}

// Points returns every series as labelled samples.
func (r *WorkFlowReport) Points() []SeriesPoint {
	var out []SeriesPoint
	out = append(out, r.PlannedStarts.Points(LabelPlannedStarts)...)
	out = append(out, r.PlannedFinishes.Points(LabelPlannedFinishes)...)
	out = append(out, r.ActualStarts.Points(LabelActualStarts)...)
	out = append(out, r.ActualFinishes.Points(LabelActualFinishes)...)
	return out
}

type WorkFlowRow struct {
	Month           time.Time
	PlannedStarts   int
	PlannedFinishes int
	ActualStarts    int
	ActualFinishes  int
}

// Table returns one row per month with any count.
func (r *WorkFlowReport) Table() []WorkFlowRow {
	months := MonthsOf(r.PlannedStarts, r.PlannedFinishes, r.ActualStarts, r.ActualFinishes)
	out := make([]WorkFlowRow, len(months))
	for i, m := range months {
		out[i] = WorkFlowRow{
			Month:           m,
			PlannedStarts:   int(r.PlannedStarts[m]),
			PlannedFinishes: int(r.PlannedFinishes[m]),
			ActualStarts:    int(r.ActualStarts[m]),
			ActualFinishes:  int(r.ActualFinishes[m]),
		}
	}
	return out
}

// WorkFlow counts planned (early) starts and finishes of open tasks and
// actual starts and finishes of all tasks between two dates inclusive.
// Zero bounds default to the schedule start and finish.
func (s *Schedule) WorkFlow(start, end time.Time) *WorkFlowReport {
	if start.IsZero() {
		start = s.Start()
	}
	if end.IsZero() {
		end = s.Finish()
	}
	from, to := calendar.DateOf(start), calendar.DateOf(end)
	within := func(t *time.Time) bool {
		if t == nil {
			return false
		}
		d := calendar.DateOf(*t)
		return !d.Before(from) && !d.After(to)
	}

	r := &WorkFlowReport{
		PlannedStarts:   MonthlySeries{},
		PlannedFinishes: MonthlySeries{},
		ActualStarts:    MonthlySeries{},
		ActualFinishes:  MonthlySeries{},
	}
	for _, t := range s.tasks {
		if t.IsNotStarted() && within(t.EarlyStart) {
			r.PlannedStarts.Add(*t.EarlyStart, 1)
		}
		if t.IsOpen() && within(t.EarlyFinish) {
			r.PlannedFinishes.Add(*t.EarlyFinish, 1)
		}
		if !t.IsNotStarted() && within(t.ActualStart) {
			r.ActualStarts.Add(*t.ActualStart, 1)
		}
		if t.IsCompleted() && within(t.ActualFinish) {
			r.ActualFinishes.Add(*t.ActualFinish, 1)
		}
	}
	return r
}

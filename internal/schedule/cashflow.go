package schedule

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jjCode01/xer-pro/internal/calendar"
	"github.com/jjCode01/xer-pro/internal/domain"
)

// ErrRemainingHoursMismatch is returned by CashFlow when the work hours in
// a resource's remaining window disagree with its task's remaining
// duration.
var ErrRemainingHoursMismatch = errors.New("remaining hours do not match task remaining duration")

const (
	LabelActual         = "Actual"
	LabelThisPeriod     = "This Period"
	LabelEarlyRemaining = "Remaining Early"
	LabelLateRemaining  = "Remaining Late"
)

// CashFlowReport is cost bucketed by month.
type CashFlowReport struct {
	Actual         MonthlySeries
	ThisPeriod     MonthlySeries
	EarlyRemaining MonthlySeries
	LateRemaining  MonthlySeries
}

// Points returns every series as labelled samples.
func (r *CashFlowReport) Points() []SeriesPoint {
	var out []SeriesPoint
	out = append(out, r.Actual.Points(LabelActual)...)
	out = append(out, r.ThisPeriod.Points(LabelThisPeriod)...)
	out = append(out, r.EarlyRemaining.Points(LabelEarlyRemaining)...)
	out = append(out, r.LateRemaining.Points(LabelLateRemaining)...)
	return out
}

// CumulativeEarly is spent cost plus remaining cost on early dates, as a
// running total.
func (r *CashFlowReport) CumulativeEarly() []SeriesPoint {
	return Cumulative("Cumulative Early", r.Actual, r.ThisPeriod, r.EarlyRemaining)
}

// CumulativeLate is spent cost plus remaining cost on late dates, as a
// running total.
func (r *CashFlowReport) CumulativeLate() []SeriesPoint {
	return Cumulative("Cumulative Late", r.Actual, r.ThisPeriod, r.LateRemaining)
}

// CashFlowRow is one month of the cash-flow table. The cumulative columns
// carry spent cost plus remaining cost on early or late dates.
type CashFlowRow struct {
	Month           time.Time
	Actual          float64
	ThisPeriod      float64
	EarlyRemaining  float64
	LateRemaining   float64
	CumulativeEarly float64
	CumulativeLate  float64
}

// Table returns one row per month with any value, with running totals.
func (r *CashFlowReport) Table() []CashFlowRow {
	months := MonthsOf(r.Actual, r.ThisPeriod, r.EarlyRemaining, r.LateRemaining)
	out := make([]CashFlowRow, len(months))
	var early, late float64
	for i, m := range months {
		booked := r.Actual[m] + r.ThisPeriod[m]
		early += booked + r.EarlyRemaining[m]
		late += booked + r.LateRemaining[m]
		out[i] = CashFlowRow{
			Month:           m,
			Actual:          r.Actual[m],
			ThisPeriod:      r.ThisPeriod[m],
			EarlyRemaining:  r.EarlyRemaining[m],
			LateRemaining:   r.LateRemaining[m],
			CumulativeEarly: early,
			CumulativeLate:  late,
		}
	}
	return out
}

// CashFlow distributes resource cost over time. Booked period actuals go
// to the month their period ends. This-period cost is spread over the work
// hours since the last closed period. Remaining cost is spread over the
// work hours of the early and late remaining windows. An open assignment
// whose early window disagrees with its task's remaining duration fails
// with ErrRemainingHoursMismatch.
func (s *Schedule) CashFlow() (*CashFlowReport, error) {
	r := &CashFlowReport{
		Actual:         MonthlySeries{},
		ThisPeriod:     MonthlySeries{},
		EarlyRemaining: MonthlySeries{},
		LateRemaining:  MonthlySeries{},
	}

	for _, f := range s.Financials() {
		p := s.periods[f.PeriodID]
		if p == nil {
			continue
		}
		month := p.Finish
		if month.IsZero() {
			month = p.Start
		}
		r.Actual.Add(month, f.ActualCost)
	}

	lastClose := s.lastPeriodClose()
	for _, tr := range s.Resources() {
		task := s.tasks[tr.TaskID]
		cal := s.calendars[tr.CalendarID]

		if tr.Cost.Remaining != 0 {
			if err := s.checkRemainingHours(tr, task); err != nil {
				return nil, err
			}
			if err := spread(r.EarlyRemaining, cal, tr.RemainingStart, tr.RemainingFinish, tr.Cost.Remaining, s.DataDate()); err != nil {
				return nil, fmt.Errorf("cash flow %s: %w", tr, err)
			}
			if err := spread(r.LateRemaining, cal, tr.RemainingLateStart, tr.RemainingLateFinish, tr.Cost.Remaining, s.DataDate()); err != nil {
				return nil, fmt.Errorf("cash flow %s: %w", tr, err)
			}
		}

		if tr.Cost.ThisPeriod != 0 {
			if err := s.spreadThisPeriod(r.ThisPeriod, cal, tr, lastClose); err != nil {
				return nil, fmt.Errorf("cash flow %s: %w", tr, err)
			}
		}
	}
	return r, nil
}

// lastPeriodClose is the latest financial period end on or before the
// data date, or zero when no period has closed.
func (s *Schedule) lastPeriodClose() time.Time {
	var last time.Time
	for _, p := range s.periods {
		if !p.Finish.After(s.DataDate()) && p.Finish.After(last) {
			last = p.Finish
		}
	}
	return last
}

func (s *Schedule) spreadThisPeriod(series MonthlySeries, cal *calendar.Calendar, tr *domain.TaskResource, lastClose time.Time) error {
	end := s.DataDate()
	if tr.ActualFinish != nil && tr.ActualFinish.Before(end) {
		end = *tr.ActualFinish
	}
	start := lastClose
	if tr.ActualStart != nil && tr.ActualStart.After(start) {
		start = *tr.ActualStart
	}

	if start.IsZero() || !start.Before(end) || MonthOf(start).Equal(MonthOf(end)) {
		series.Add(end, tr.Cost.ThisPeriod)
		return nil
	}
	return spread(series, cal, &start, &end, tr.Cost.ThisPeriod, end)
}

// spread distributes amount over the work hours between start and end.
// Without a calendar, a window or any work hours the whole amount goes to
// the month of the first available date.
func spread(series MonthlySeries, cal *calendar.Calendar, start, end *time.Time, amount float64, fallback time.Time) error {
	if cal == nil || start == nil || end == nil {
		series.Add(firstDate(fallback, start, end), amount)
		return nil
	}

	days, err := cal.RemainingHoursPerDay(*start, *end)
	if err != nil {
		return err
	}
	total := 0.0
	for _, d := range days {
		total += d.Hours
	}
	if total == 0 {
		series.Add(*start, amount)
		return nil
	}
	for _, d := range days {
		series.Add(d.Date, amount*d.Hours/total)
	}
	return nil
}

func firstDate(fallback time.Time, ptrs ...*time.Time) time.Time {
	if t := domain.CoalesceTime(ptrs...); t != nil {
		return *t
	}
	return fallback
}

// checkRemainingHours measures an open assignment's early remaining window
// on its task's calendar. The window plus the remaining lag must match the
// task's remaining duration. A missing window or calendar measures zero
// hours.
func (s *Schedule) checkRemainingHours(tr *domain.TaskResource, task *domain.Task) error {
	if task == nil || task.IsCompleted() {
		return nil
	}

	var hours float64
	var days int
	cal := s.calendars[task.CalendarID]
	if cal != nil && tr.RemainingStart != nil && tr.RemainingFinish != nil {
		perDay, err := cal.RemainingHoursPerDay(*tr.RemainingStart, *tr.RemainingFinish)
		if err != nil {
			return fmt.Errorf("cash flow %s: %w", tr, err)
		}
		for _, d := range perDay {
			hours += d.Hours
		}
		days = len(perDay)
	}
	hours += tr.RemainingLagHrs

	// Each day is rounded to 3 decimals.
	tolerance := 0.0005*float64(days) + 0.01
	if math.Abs(hours-task.RemainingDurationHrs) > tolerance {
		return fmt.Errorf("%s %s: window has %.3f hrs, task has %.3f hrs: %w",
			task.Code, tr.ResourceName, hours, task.RemainingDurationHrs, ErrRemainingHoursMismatch)
	}
	return nil
}

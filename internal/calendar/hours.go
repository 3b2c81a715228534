package calendar

import (
	"math"
	"time"
)

// DayHours is the work available on one date within a queried window.
type DayHours struct {
	Date  time.Time
	Hours float64
}

// Day returns the effective work definition for a date: a work exception,
// an empty day for a holiday, or the standard weekday.
func (c *Calendar) Day(t time.Time) WorkDay {
	d := DateOf(t)
	if wd, ok := c.WorkExceptions[d]; ok {
		return wd
	}
	if c.Holidays[d] {
		return NewWorkDay(d.Weekday(), nil)
	}
	return c.WorkWeek[d.Weekday()]
}

// IsWorkday reports whether any work is scheduled on the date of t.
func (c *Calendar) IsWorkday(t time.Time) bool {
	return c.Day(t).IsWorkday()
}

// Workdays lists the workdays between two dates inclusive, ascending.
func (c *Calendar) Workdays(start, end time.Time) []time.Time {
	var out []time.Time
	eachDate(start, end, func(d time.Time) {
		if c.IsWorkday(d) {
			out = append(out, d)
		}
	})
	return out
}

// NonworkExceptions lists the holidays between two dates inclusive.
func (c *Calendar) NonworkExceptions(start, end time.Time) []time.Time {
	var out []time.Time
	eachDate(start, end, func(d time.Time) {
		if c.Holidays[d] {
			if _, overridden := c.WorkExceptions[d]; !overridden {
				out = append(out, d)
			}
		}
	})
	return out
}

func eachDate(start, end time.Time, fn func(time.Time)) {
	from, to := DateOf(start), DateOf(end)
	if to.Before(from) {
		from, to = to, from
	}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// WorkHours returns the work hours on date between two clock times.
// Each shift loses the part of it lying outside the window.
func (c *Calendar) WorkHours(date time.Time, from, to Clock) float64 {
	wd := c.Day(date)
	if !wd.IsWorkday() {
		return 0
	}
	if from > to {
		from, to = to, from
	}
	from = max(from, wd.Start)
	to = min(to, wd.Finish)
	if from == wd.Start && to == wd.Finish {
		return round3(wd.Hours)
	}
	if to <= from {
		return 0
	}

	minutes := wd.minutes()
	for _, s := range wd.Shifts {
		minutes -= s.minutes() - s.overlap(from, to)
	}
	return round3(float64(minutes) / 60)
}

// RemainingHoursPerDay breaks the window between start and end into the
// work hours available on each date. The first and last dates contribute
// partial hours; dates in between contribute their full hours. Non-work
// dates are omitted.
func (c *Calendar) RemainingHoursPerDay(start, end time.Time) ([]DayHours, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrZeroTime
	}
	start, end = start.Truncate(time.Minute), end.Truncate(time.Minute)
	if end.Before(start) {
		start, end = end, start
	}

	startDate, endDate := DateOf(start), DateOf(end)
	if start.Equal(end) {
		return []DayHours{{Date: startDate, Hours: 0}}, nil
	}
	if startDate.Equal(endDate) {
		return []DayHours{{Date: startDate, Hours: c.WorkHours(startDate, ClockOf(start), ClockOf(end))}}, nil
	}

	var out []DayHours
	if c.IsWorkday(startDate) {
		out = append(out, DayHours{Date: startDate, Hours: c.WorkHours(startDate, ClockOf(start), EndOfDay)})
	}
	for d := startDate.AddDate(0, 0, 1); d.Before(endDate); d = d.AddDate(0, 0, 1) {
		if wd := c.Day(d); wd.IsWorkday() {
			out = append(out, DayHours{Date: d, Hours: round3(wd.Hours)})
		}
	}
	if c.IsWorkday(endDate) {
		out = append(out, DayHours{Date: endDate, Hours: c.WorkHours(endDate, Midnight, ClockOf(end))})
	}
	return out, nil
}

// WorkHoursBetween totals RemainingHoursPerDay.
func (c *Calendar) WorkHoursBetween(start, end time.Time) (float64, error) {
	days, err := c.RemainingHoursPerDay(start, end)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, d := range days {
		total += d.Hours
	}
	return round3(total), nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

package comparison

import (
	"time"

	"github.com/jjCode01/xer-pro/internal/calendar"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

// CalendarDates lists dates added to or removed from one calendar.
type CalendarDates struct {
	Calendar *calendar.Calendar
	Dates    []time.Time
}

type CalendarDiff struct {
	Added   []*calendar.Calendar
	Deleted []*calendar.Calendar

	AddedHolidays     []CalendarDates
	DeletedHolidays   []CalendarDates
	AddedExceptions   []CalendarDates
	DeletedExceptions []CalendarDates
}

// CalendarChanges matches calendars by name and type and diffs the holiday
// and work exception dates of the calendars present in both.
func CalendarChanges(current, previous *schedule.Schedule) *CalendarDiff {
	prevIndex := make(map[calendar.Key]*calendar.Calendar)
	for _, c := range previous.Calendars() {
		if _, ok := prevIndex[c.Key()]; !ok {
			prevIndex[c.Key()] = c
		}
	}
	curIndex := make(map[calendar.Key]*calendar.Calendar)
	for _, c := range current.Calendars() {
		if _, ok := curIndex[c.Key()]; !ok {
			curIndex[c.Key()] = c
		}
	}

	d := &CalendarDiff{}
	for _, c := range current.Calendars() {
		if curIndex[c.Key()] != c {
			continue
		}
		old := prevIndex[c.Key()]
		if old == nil {
			d.Added = append(d.Added, c)
			continue
		}
		d.AddedHolidays = appendDates(d.AddedHolidays, c, dateDiff(c.HolidayDates(), old.HolidayDates()))
		d.DeletedHolidays = appendDates(d.DeletedHolidays, c, dateDiff(old.HolidayDates(), c.HolidayDates()))
		d.AddedExceptions = appendDates(d.AddedExceptions, c, dateDiff(c.ExceptionDates(), old.ExceptionDates()))
		d.DeletedExceptions = appendDates(d.DeletedExceptions, c, dateDiff(old.ExceptionDates(), c.ExceptionDates()))
	}
	for _, c := range previous.Calendars() {
		if prevIndex[c.Key()] == c && curIndex[c.Key()] == nil {
			d.Deleted = append(d.Deleted, c)
		}
	}
	return d
}

func appendDates(list []CalendarDates, c *calendar.Calendar, dates []time.Time) []CalendarDates {
	if len(dates) == 0 {
		return list
	}
	return append(list, CalendarDates{Calendar: c, Dates: dates})
}

// dateDiff returns the dates of a missing from b, in the order of a.
func dateDiff(a, b []time.Time) []time.Time {
	in := make(map[time.Time]bool, len(b))
	for _, t := range b {
		in[t] = true
	}
	var out []time.Time
	for _, t := range a {
		if !in[t] {
			out = append(out, t)
		}
	}
	return out
}

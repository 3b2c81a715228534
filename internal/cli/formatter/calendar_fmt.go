package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jjCode01/xer-pro/internal/calendar"
)

// FormatCalendars lists the calendars of a schedule with their weekly
// hours and how many activities use them.
func FormatCalendars(cals []*calendar.Calendar) string {
	if len(cals) == 0 {
		return RenderBox("Calendars", Dim("No calendars."))
	}
	rows := make([][]string, len(cals))
	for i, c := range cals {
		name := c.Name
		if c.Assignments == 0 {
			name = Dim(name)
		}
		rows[i] = []string{
			name,
			string(c.Type),
			strconv.Itoa(c.Assignments),
			fmt.Sprintf("%.1f", WeeklyHours(c)),
			strconv.Itoa(len(c.Holidays)),
			strconv.Itoa(len(c.WorkExceptions)),
		}
	}
	headers := []string{"NAME", "TYPE", "ACTIVITIES", "HRS/WEEK", "HOLIDAYS", "EXCEPTIONS"}
	return RenderBox("Calendars", RenderTable(headers, rows, 2, 3, 4, 5))
}

// FormatCalendar renders one calendar's work week, holidays and work
// exceptions. Dates before from are left out when from is set.
func FormatCalendar(c *calendar.Calendar, from time.Time) string {
	var b strings.Builder
	b.WriteString(RenderFields([][2]string{
		{"Type", string(c.Type)},
		{"Activities", strconv.Itoa(c.Assignments)},
		{"Hours/Week", fmt.Sprintf("%.1f", WeeklyHours(c))},
	}))

	b.WriteString("\n" + Header("Work Week") + "\n")
	for d := time.Sunday; d <= time.Saturday; d++ {
		wd, ok := c.WorkWeek[d]
		if !ok {
			wd = calendar.NewWorkDay(d, nil)
		}
		line := wd.String()
		if !wd.IsWorkday() {
			line = Dim(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + Header("Holidays") + "\n")
	b.WriteString(dateList(c.HolidayDates(), from, nil))

	b.WriteString("\n" + Header("Work Exceptions") + "\n")
	b.WriteString(dateList(c.ExceptionDates(), from, func(d time.Time) string {
		return c.WorkExceptions[d].String()
	}))

	return RenderBox(c.Name, b.String())
}

// WeeklyHours sums the standard work week.
func WeeklyHours(c *calendar.Calendar) float64 {
	total := 0.0
	for _, wd := range c.WorkWeek {
		total += wd.Hours
	}
	return total
}

func dateList(dates []time.Time, from time.Time, detail func(time.Time) string) string {
	var b strings.Builder
	for _, d := range dates {
		if !from.IsZero() && d.Before(calendar.DateOf(from)) {
			continue
		}
		line := d.Format("Mon ") + d.Format(DateLayout)
		if detail != nil {
			line += Dim("  " + detail(d))
		}
		b.WriteString(line + "\n")
	}
	if b.Len() == 0 {
		return Dim("None") + "\n"
	}
	return b.String()
}

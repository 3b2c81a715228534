package testutil

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jjCode01/xer-pro/internal/calendar"
)

// CalendarDef describes a calendar to encode as P6 clndr_data. Shifts are
// written "HH:MM-HH:MM".
type CalendarDef struct {
	Week       map[time.Weekday][]string
	Holidays   []time.Time
	Exceptions map[time.Time][]string
}

// StandardWeek is Monday through Friday, 08:00-12:00 and 13:00-17:00.
func StandardWeek() map[time.Weekday][]string {
	day := []string{"08:00-12:00", "13:00-17:00"}
	return map[time.Weekday][]string{
		time.Monday:    day,
		time.Tuesday:   day,
		time.Wednesday: day,
		time.Thursday:  day,
		time.Friday:    day,
	}
}

// StandardCalendarData returns clndr_data for a five day, eight hour week.
func StandardCalendarData() string {
	return CalendarData(CalendarDef{Week: StandardWeek()})
}

// CalendarData encodes a CalendarDef in the nested clndr_data format.
func CalendarData(def CalendarDef) string {
	var b strings.Builder
	b.WriteString("(0||CalendarData()((0||DaysOfWeek()(")
	for d := time.Sunday; d <= time.Saturday; d++ {
		fmt.Fprintf(&b, "(0||%d()(", int(d)+1)
		writeShifts(&b, def.Week[d])
		b.WriteString("))")
	}
	b.WriteString("))(0||VIEW(ShowTotal|Y)())(0||Exceptions()(")

	n := 0
	for _, h := range def.Holidays {
		fmt.Fprintf(&b, "(0||%d(d|%d)())", n, calendar.ToSerial(h))
		n++
	}
	dates := make([]time.Time, 0, len(def.Exceptions))
	for d := range def.Exceptions {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	for _, d := range dates {
		fmt.Fprintf(&b, "(0||%d(d|%d)(", n, calendar.ToSerial(d))
		writeShifts(&b, def.Exceptions[d])
		b.WriteString("))")
		n++
	}
	b.WriteString(")))")
	return b.String()
}

func writeShifts(b *strings.Builder, shifts []string) {
	for i, s := range shifts {
		start, finish, _ := strings.Cut(s, "-")
		fmt.Fprintf(b, "(0||%d(s|%s|f|%s)())", i, start, finish)
	}
}

// Date returns midnight UTC on the given day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// At returns the given day and clock time in UTC.
func At(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

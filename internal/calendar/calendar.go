package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Type is the scope of a calendar.
type Type string

const (
	TypeGlobal   Type = "Global"
	TypeResource Type = "Resource"
	TypeProject  Type = "Project"
)

var typeCodes = map[string]Type{
	"CA_Base":    TypeGlobal,
	"CA_Rsrc":    TypeResource,
	"CA_Project": TypeProject,
}

// ParseType maps a P6 clndr_type code to a Type. Unknown codes pass through.
func ParseType(code string) Type {
	if t, ok := typeCodes[code]; ok {
		return t
	}
	return Type(code)
}

// ErrZeroTime is returned when a work-hour query is given an unset time.
var ErrZeroTime = errors.New("calendar: zero time")

// Key identifies a calendar across two schedules.
type Key struct {
	Name string
	Type Type
}

// Calendar is a parsed P6 work calendar. It is immutable after New; the
// Assignments count is filled in by the schedule that owns it.
type Calendar struct {
	ID             string
	Name           string
	Type           Type
	WorkWeek       map[time.Weekday]WorkDay
	Holidays       map[time.Time]bool
	WorkExceptions map[time.Time]WorkDay
	Assignments    int
}

var (
	dayPattern       = regexp.MustCompile(`\(0\|\|([1-7])\(\)`)
	shiftPattern     = regexp.MustCompile(`\(0\|\|\d+\(([^()]*)\)\(\)\)`)
	clockPattern     = regexp.MustCompile(`([sf])\|(\d{1,2}:\d{2})`)
	exceptionPattern = regexp.MustCompile(`d\|(\d+)\)\(`)
)

// New parses a calendar from its clndr_data blob.
func New(id, name, typeCode, data string) (*Calendar, error) {
	c := &Calendar{
		ID:             id,
		Name:           name,
		Type:           ParseType(typeCode),
		WorkWeek:       make(map[time.Weekday]WorkDay, 7),
		Holidays:       make(map[time.Time]bool),
		WorkExceptions: make(map[time.Time]WorkDay),
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		c.WorkWeek[d] = NewWorkDay(d, nil)
	}

	if err := c.parseWorkWeek(data); err != nil {
		return nil, fmt.Errorf("calendar %s work week: %w", name, err)
	}
	if err := c.parseExceptions(data); err != nil {
		return nil, fmt.Errorf("calendar %s exceptions: %w", name, err)
	}
	return c, nil
}

// section returns the text between start and the first of the terminators.
func section(data, start string, terminators ...string) string {
	i := strings.Index(data, start)
	if i < 0 {
		return ""
	}
	rest := data[i+len(start):]
	end := len(rest)
	for _, term := range terminators {
		if j := strings.Index(rest, term); j >= 0 && j < end {
			end = j
		}
	}
	return rest[:end]
}

func (c *Calendar) parseWorkWeek(data string) error {
	week := section(data, "DaysOfWeek()", "VIEW", "Exceptions")
	matches := dayPattern.FindAllStringSubmatchIndex(week, -1)
	for i, m := range matches {
		end := len(week)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		// P6 numbers days 1 (Sunday) through 7 (Saturday).
		n, _ := strconv.Atoi(week[m[2]:m[3]])
		weekday := time.Weekday(n - 1)

		shifts, err := parseShifts(week[m[1]:end])
		if err != nil {
			return fmt.Errorf("%s: %w", weekday, err)
		}
		c.WorkWeek[weekday] = NewWorkDay(weekday, shifts)
	}
	return nil
}

func (c *Calendar) parseExceptions(data string) error {
	body := section(data, "Exceptions()", "Resources")
	matches := exceptionPattern.FindAllStringSubmatchIndex(body, -1)
	for i, m := range matches {
		end := len(body)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		serial, err := strconv.Atoi(body[m[2]:m[3]])
		if err != nil {
			return fmt.Errorf("exception date %q: %w", body[m[2]:m[3]], err)
		}
		date := FromSerial(serial)
		standard := c.WorkWeek[date.Weekday()]

		entry := body[m[1]:end]
		if strings.HasPrefix(entry, ")") {
			// Holidays on standard non-work days carry no information.
			if standard.IsWorkday() {
				c.Holidays[date] = true
			}
			continue
		}

		shifts, err := parseShifts(entry)
		if err != nil {
			return fmt.Errorf("%s: %w", date.Format(time.DateOnly), err)
		}
		wd := NewWorkDay(date.Weekday(), shifts)
		if wd.sameShifts(standard) {
			continue
		}
		c.WorkExceptions[date] = wd
	}
	return nil
}

// parseShifts reads the labeled start and finish of each shift in a day
// entry. A finish of 00:00 is the end of the day.
func parseShifts(entry string) ([]Shift, error) {
	groups := shiftPattern.FindAllStringSubmatch(entry, -1)
	shifts := make([]Shift, 0, len(groups))
	for _, g := range groups {
		var start, finish *Clock
		for _, m := range clockPattern.FindAllStringSubmatch(g[1], -1) {
			c, err := ParseClock(m[2])
			if err != nil {
				return nil, err
			}
			if m[1] == "s" {
				start = &c
			} else {
				finish = &c
			}
		}
		if start == nil || finish == nil {
			return nil, fmt.Errorf("unpaired shift times %q", g[1])
		}
		if *finish == 0 {
			*finish = EndOfDay
		}
		if *finish < *start {
			return nil, fmt.Errorf("shift %s-%s finishes before it starts", *start, *finish)
		}
		shifts = append(shifts, Shift{Start: *start, Finish: *finish})
	}
	sort.Slice(shifts, func(i, j int) bool { return shifts[i].Start < shifts[j].Start })
	return shifts, nil
}

// serialEpoch is day zero of the spreadsheet serial date system used by P6.
var serialEpoch = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)

// FromSerial converts a spreadsheet serial date to a calendar date. Serials
// from 60 on are shifted back one day for the fictitious 1900-02-29.
func FromSerial(serial int) time.Time {
	if serial >= 60 {
		serial--
	}
	return serialEpoch.AddDate(0, 0, serial)
}

// ToSerial is the inverse of FromSerial.
func ToSerial(date time.Time) int {
	d := DateOf(date)
	serial := int(d.Sub(serialEpoch).Hours() / 24)
	if serial >= 60 {
		serial++
	}
	return serial
}

// DateOf returns the calendar date of t at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Key returns the identity used to match calendars across schedules.
func (c *Calendar) Key() Key {
	return Key{Name: c.Name, Type: c.Type}
}

// HolidayDates returns the holiday dates in ascending order.
func (c *Calendar) HolidayDates() []time.Time {
	return sortedDates(c.Holidays)
}

// ExceptionDates returns the work exception dates in ascending order.
func (c *Calendar) ExceptionDates() []time.Time {
	return sortedDates(c.WorkExceptions)
}

func sortedDates[V any](m map[time.Time]V) []time.Time {
	out := make([]time.Time, 0, len(m))
	for d := range m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (c *Calendar) String() string {
	return fmt.Sprintf("%s [%s]", c.Name, c.Type)
}

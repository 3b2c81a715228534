package calendar

import (
	"fmt"
	"slices"
	"time"
)

// Clock is a time of day expressed in minutes after midnight (0..1440).
type Clock int

const (
	Midnight Clock = 0
	EndOfDay Clock = 24 * 60
)

// ClockOf returns the wall-clock time of t truncated to the minute.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// ParseClock parses "HH:MM" (hours may be a single digit, "24:00" is allowed).
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parsing clock %q: %w", s, err)
	}
	c := Clock(h*60 + m)
	if h < 0 || m < 0 || m > 59 || c > EndOfDay {
		return 0, fmt.Errorf("clock %q out of range", s)
	}
	return c, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Hours returns the clock as fractional hours after midnight.
func (c Clock) Hours() float64 {
	return float64(c) / 60
}

// Shift is a [Start, Finish) work interval within one day.
type Shift struct {
	Start  Clock
	Finish Clock
}

func (s Shift) minutes() int {
	if s.Finish < s.Start {
		return 0
	}
	return int(s.Finish - s.Start)
}

// overlap returns the minutes of the shift that fall inside [from, to).
func (s Shift) overlap(from, to Clock) int {
	lo := max(s.Start, from)
	hi := min(s.Finish, to)
	if hi <= lo {
		return 0
	}
	return int(hi - lo)
}

// WorkDay is the work definition for a day of the week or a specific date.
// Hours, Start and Finish are derived from Shifts by NewWorkDay.
type WorkDay struct {
	Weekday time.Weekday
	Shifts  []Shift
	Hours   float64
	Start   Clock
	Finish  Clock
}

// NewWorkDay builds a WorkDay and derives its total hours and work window.
func NewWorkDay(weekday time.Weekday, shifts []Shift) WorkDay {
	wd := WorkDay{Weekday: weekday, Shifts: shifts}
	if len(shifts) == 0 {
		return wd
	}

	minutes := 0
	wd.Start, wd.Finish = shifts[0].Start, shifts[0].Finish
	for _, s := range shifts {
		minutes += s.minutes()
		wd.Start = min(wd.Start, s.Start)
		wd.Finish = max(wd.Finish, s.Finish)
	}
	wd.Hours = float64(minutes) / 60
	return wd
}

// IsWorkday reports whether the day carries any work hours.
func (w WorkDay) IsWorkday() bool {
	return w.Hours != 0
}

func (w WorkDay) minutes() int {
	total := 0
	for _, s := range w.Shifts {
		total += s.minutes()
	}
	return total
}

// sameShifts reports whether two work days describe identical shifts.
func (w WorkDay) sameShifts(o WorkDay) bool {
	return slices.Equal(w.Shifts, o.Shifts)
}

func (w WorkDay) String() string {
	day := w.Weekday.String()[:3]
	if !w.IsWorkday() {
		return fmt.Sprintf("%s |    - hrs | Non-work day", day)
	}
	return fmt.Sprintf("%s | %04.1f hrs | %s to %s", day, w.Hours, w.Start, w.Finish)
}

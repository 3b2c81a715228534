package schedule

import (
	"time"

	"github.com/jjCode01/xer-pro/internal/calendar"
	"github.com/jjCode01/xer-pro/internal/domain"
)

// Cost sums the cost values of every resource assignment.
func (s *Schedule) Cost() domain.ResourceValues {
	total := domain.NewResourceValues(0, 0, 0, 0)
	for _, r := range s.taskResources {
		total = total.Add(r.Cost)
	}
	return total
}

// UnitQty sums the unit quantities of every resource assignment.
func (s *Schedule) UnitQty() domain.ResourceValues {
	total := domain.NewResourceValues(0, 0, 0, 0)
	for _, r := range s.taskResources {
		total = total.Add(r.Qty)
	}
	return total
}

// PercentComplete averages a duration based estimate and a status based
// estimate, as a value between 0 and 100. An empty schedule is 0; when the
// original durations sum to zero only the status estimate is used.
func (s *Schedule) PercentComplete() float64 {
	if len(s.tasks) == 0 {
		return 0
	}

	var original, remaining float64
	var active, done int
	for _, t := range s.tasks {
		original += t.OriginalDurationHrs
		remaining += t.RemainingDurationHrs
		switch {
		case t.IsInProgress():
			active++
		case t.IsCompleted():
			done++
		}
	}

	byStatus := (float64(active)/2 + float64(done)) / float64(len(s.tasks))
	if original == 0 {
		return byStatus * 100
	}
	byDuration := 1 - remaining/original
	return (byDuration + byStatus) / 2 * 100
}

// Start is the earliest task start.
func (s *Schedule) Start() time.Time {
	var start time.Time
	for _, t := range s.tasks {
		if ts := t.Start(); !ts.IsZero() && (start.IsZero() || ts.Before(start)) {
			start = ts
		}
	}
	return start
}

// Finish is the latest task finish.
func (s *Schedule) Finish() time.Time {
	var finish time.Time
	for _, t := range s.tasks {
		if tf := t.Finish(); tf.After(finish) {
			finish = tf
		}
	}
	return finish
}

// Duration is the calendar days from Start to Finish.
func (s *Schedule) Duration() int {
	return calendarDays(s.Start(), s.Finish())
}

// RemainingDuration is the calendar days from the data date to Finish.
func (s *Schedule) RemainingDuration() int {
	return calendarDays(s.DataDate(), s.Finish())
}

func calendarDays(from, to time.Time) int {
	if from.IsZero() || to.IsZero() {
		return 0
	}
	return int(calendar.DateOf(to).Sub(calendar.DateOf(from)).Hours() / 24)
}

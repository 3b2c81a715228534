package warning

import (
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

// LongDurations returns construction tasks, other than LOE, whose original
// duration exceeds maxDays work days.
func LongDurations(s *schedule.Schedule, maxDays int, c Classifier) []*domain.Task {
	var out []*domain.Task
	for _, t := range s.Tasks(schedule.TaskFilter{}) {
		if t.IsLOE() || t.OriginalDuration() <= maxDays {
			continue
		}
		if c.IsConstructionTask(s, t) {
			out = append(out, t)
		}
	}
	return out
}

package app

import (
	"time"

	"github.com/jjCode01/xer-pro/internal/comparison"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

// CompareRequest names two versions of a schedule in any order; the one
// with the later data date is treated as current.
type CompareRequest struct {
	First           Source
	Second          Source
	FloatThresholds schedule.FloatThresholds
}

func NewCompareRequest(first, second string) CompareRequest {
	return CompareRequest{
		First:           NewSource(first),
		Second:          NewSource(second),
		FloatThresholds: schedule.DefaultFloatThresholds(),
	}
}

type CompareResponse struct {
	RunID         string
	GeneratedAt   time.Time
	Current       ScheduleSummary
	Previous      ScheduleSummary
	CurrentFloat  []schedule.FloatShare
	PreviousFloat []schedule.FloatShare
	Changes       *comparison.Changes
	Counts        map[comparison.Category]int
	// Swapped is true when the second source turned out to be current.
	Swapped bool

	CurrentSchedule  *schedule.Schedule
	PreviousSchedule *schedule.Schedule
}

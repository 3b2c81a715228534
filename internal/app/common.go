package app

import (
	"time"

	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/importer"
)

// Source names a schedule file. Project selects one project from a
// standalone database by id or short name; .xer files carry their own
// export flag and leave it empty.
type Source struct {
	Path     string
	Project  string
	Encoding importer.Encoding
}

func NewSource(path string) Source {
	return Source{
		Path:     path,
		Encoding: importer.EncodingCP1252,
	}
}

// ScheduleSummary is the headline view of one schedule. Durations are in
// calendar days.
type ScheduleSummary struct {
	ProjectID         string
	ShortName         string
	Name              string
	DataDate          time.Time
	PlanStart         *time.Time
	MustFinish        *time.Time
	ScheduledFinish   *time.Time
	Start             time.Time
	Finish            time.Time
	Duration          int
	RemainingDuration int
	PercentComplete   float64
	TaskCounts        map[domain.TaskStatus]int
	TaskTotal         int
	LogicCount        int
	LinkCounts        map[domain.LinkType]int
	ResourceCount     int
	CalendarCount     int
	Cost              domain.ResourceValues
	UnitQty           domain.ResourceValues
}

type ScheduleErrorCode string

const (
	ErrUnsupportedSource ScheduleErrorCode = "UNSUPPORTED_SOURCE"
	ErrInvalidSchedule   ScheduleErrorCode = "INVALID_SCHEDULE"
	ErrAmbiguousProject  ScheduleErrorCode = "AMBIGUOUS_PROJECT"
)

type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
}

func (e *ScheduleError) Error() string {
	return string(e.Code) + ": " + e.Message
}

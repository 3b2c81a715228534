package contract

import "github.com/jjCode01/xer-pro/internal/app"

type Source = app.Source

func NewSource(path string) Source {
	return app.NewSource(path)
}

type ScheduleSummary = app.ScheduleSummary

type ScheduleErrorCode = app.ScheduleErrorCode

const (
	ErrUnsupportedSource ScheduleErrorCode = app.ErrUnsupportedSource
	ErrInvalidSchedule   ScheduleErrorCode = app.ErrInvalidSchedule
	ErrAmbiguousProject  ScheduleErrorCode = app.ErrAmbiguousProject
)

type ScheduleError = app.ScheduleError

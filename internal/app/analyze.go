package app

import (
	"time"

	"github.com/jjCode01/xer-pro/internal/schedule"
	"github.com/jjCode01/xer-pro/internal/warning"
)

type AnalyzeRequest struct {
	Source          Source
	FloatThresholds schedule.FloatThresholds
	Warnings        warning.Options
	IncludeWarnings bool
	IncludeCashFlow bool
	IncludeWorkFlow bool
	// Zero bounds default to the schedule start and finish.
	WorkFlowStart time.Time
	WorkFlowEnd   time.Time
}

func NewAnalyzeRequest(path string) AnalyzeRequest {
	return AnalyzeRequest{
		Source:          NewSource(path),
		FloatThresholds: schedule.DefaultFloatThresholds(),
		Warnings:        warning.DefaultOptions(),
		IncludeWarnings: true,
		IncludeCashFlow: true,
		IncludeWorkFlow: true,
	}
}

// AnalyzeResponse holds the reports for one schedule. CashFlowErr is set
// when the cash-flow projection was aborted; the other reports stand.
type AnalyzeResponse struct {
	RunID       string
	GeneratedAt time.Time
	Summary     ScheduleSummary
	Float       []schedule.FloatShare
	Warnings    *warning.Warnings
	CashFlow    *schedule.CashFlowReport
	CashFlowErr error
	WorkFlow    *schedule.WorkFlowReport
	Schedule    *schedule.Schedule
}

// Package export writes analysis and comparison reports as Excel
// workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary   = "Summary"
	SheetFloat     = "Float"
	SheetTasks     = "Tasks"
	SheetWarnings  = "Warnings"
	SheetCashFlow  = "Cash Flow"
	SheetWorkFlow  = "Work Flow"
	SheetChanges   = "Changes"
	SheetChangeLog = "Change Log"
)

// Analysis builds the workbook for one schedule. Sheets for reports the
// response does not carry are left out.
func Analysis(resp *contract.AnalyzeResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	style, err := headerStyle(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	sheets := []*sheet{
		summarySheet(f, style, resp),
		floatSheet(f, style, SheetFloat, resp.Float, nil),
		taskSheet(f, style, resp.Schedule),
	}
	if resp.Warnings != nil {
		sheets = append(sheets, warningSheet(f, style, resp))
	}
	if resp.CashFlow != nil {
		sheets = append(sheets, cashFlowSheet(f, style, resp.CashFlow))
	}
	if resp.WorkFlow != nil {
		sheets = append(sheets, workFlowSheet(f, style, resp.WorkFlow))
	}
	for _, s := range sheets {
		if s.err != nil {
			f.Close()
			return nil, fmt.Errorf("building %s sheet: %w", s.name, s.err)
		}
	}
	return f, nil
}

// WriteAnalysis streams the analysis workbook to w.
func WriteAnalysis(w io.Writer, resp *contract.AnalyzeResponse) error {
	f, err := Analysis(resp)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func summarySheet(f *excelize.File, style int, resp *contract.AnalyzeResponse) *sheet {
	s := newSheet(f, SheetSummary)
	s.widths(28, 36)
	s.header(style, "Field", "Value")
	s.write("Run ID", resp.RunID)
	s.write("Generated", resp.GeneratedAt)
	summaryRows(s, resp.Summary, nil)
	if resp.CashFlowErr != nil {
		s.write("Cash Flow", resp.CashFlowErr.Error())
	}
	return s
}

// summaryRows writes one column per summary; prev may be nil.
func summaryRows(s *sheet, cur contract.ScheduleSummary, prev *contract.ScheduleSummary) {
	type field struct {
		label string
		value func(contract.ScheduleSummary) any
	}
	fields := []field{
		{"Project", func(x contract.ScheduleSummary) any { return x.ShortName }},
		{"Name", func(x contract.ScheduleSummary) any { return x.Name }},
		{"Data Date", func(x contract.ScheduleSummary) any { return x.DataDate }},
		{"Start", func(x contract.ScheduleSummary) any { return x.Start }},
		{"Finish", func(x contract.ScheduleSummary) any { return x.Finish }},
		{"Scheduled Finish", func(x contract.ScheduleSummary) any { return valueOrNil(x.ScheduledFinish) }},
		{"Must Finish", func(x contract.ScheduleSummary) any { return valueOrNil(x.MustFinish) }},
		{"Duration (days)", func(x contract.ScheduleSummary) any { return x.Duration }},
		{"Remaining Duration (days)", func(x contract.ScheduleSummary) any { return x.RemainingDuration }},
		{"Percent Complete", func(x contract.ScheduleSummary) any { return x.PercentComplete }},
		{"Tasks", func(x contract.ScheduleSummary) any { return x.TaskTotal }},
		{"Not Started", func(x contract.ScheduleSummary) any { return x.TaskCounts[domain.StatusNotStarted] }},
		{"In Progress", func(x contract.ScheduleSummary) any { return x.TaskCounts[domain.StatusInProgress] }},
		{"Complete", func(x contract.ScheduleSummary) any { return x.TaskCounts[domain.StatusComplete] }},
		{"Relationships", func(x contract.ScheduleSummary) any { return x.LogicCount }},
		{"Resource Assignments", func(x contract.ScheduleSummary) any { return x.ResourceCount }},
		{"Calendars", func(x contract.ScheduleSummary) any { return x.CalendarCount }},
		{"Budgeted Cost", func(x contract.ScheduleSummary) any { return x.Cost.Budget }},
		{"Actual Cost", func(x contract.ScheduleSummary) any { return x.Cost.Actual }},
		{"Remaining Cost", func(x contract.ScheduleSummary) any { return x.Cost.Remaining }},
		{"Cost at Completion", func(x contract.ScheduleSummary) any { return x.Cost.AtCompletion }},
		{"Cost Variance", func(x contract.ScheduleSummary) any { return x.Cost.Variance }},
	}
	for _, fl := range fields {
		if prev == nil {
			s.write(fl.label, fl.value(cur))
			continue
		}
		s.write(fl.label, fl.value(cur), fl.value(*prev))
	}
}

func floatSheet(f *excelize.File, style int, name string, cur, prev []schedule.FloatShare) *sheet {
	s := newSheet(f, name)
	s.widths(18, 12, 12, 12, 12)
	if prev == nil {
		s.header(style, "Float Group", "Tasks", "Percent")
		for _, sh := range cur {
			s.write(string(sh.Group), sh.Count, sh.Percent)
		}
		return s
	}
	s.header(style, "Float Group", "Current", "Current %", "Previous", "Previous %")
	for i, sh := range cur {
		p := schedule.FloatShare{}
		if i < len(prev) {
			p = prev[i]
		}
		s.write(string(sh.Group), sh.Count, sh.Percent, p.Count, p.Percent)
	}
	return s
}

func taskSheet(f *excelize.File, style int, sched *schedule.Schedule) *sheet {
	s := newSheet(f, SheetTasks)
	s.widths(14, 40, 12, 18, 20, 18, 10, 10, 10, 18, 18, 10, 9, 9)
	s.header(style, "Activity ID", "Name", "Status", "Type", "WBS", "Calendar",
		"Orig Dur", "Rem Dur", "Total Float", "Start", "Finish", "% Complete", "Critical", "Longest Path")
	if sched == nil {
		return s
	}
	for _, t := range sched.Tasks(schedule.TaskFilter{}) {
		cal := ""
		if c := sched.Calendar(t.CalendarID); c != nil {
			cal = c.Name
		}
		s.write(t.Code, t.Name, t.Status.String(), t.Type.String(), sched.WbsPathString(t.WbsID), cal,
			t.OriginalDuration(), t.RemainingDuration(), valueOrNil(t.TotalFloat()),
			t.Start(), t.Finish(), t.PercentComplete(), t.IsCritical(), t.LongestPath)
	}
	return s
}

func warningSheet(f *excelize.File, style int, resp *contract.AnalyzeResponse) *sheet {
	s := newSheet(f, SheetWarnings)
	s.widths(18, 40, 60)
	s.header(style, "Check", "Item", "Detail")
	for _, e := range resp.Warnings.Entries() {
		s.write(string(e.Kind), e.Item, e.Detail)
	}
	return s
}

func cashFlowSheet(f *excelize.File, style int, r *schedule.CashFlowReport) *sheet {
	s := newSheet(f, SheetCashFlow)
	s.widths(12, 14, 14, 16, 16, 18, 18)
	s.header(style, "Month", schedule.LabelActual, schedule.LabelThisPeriod,
		schedule.LabelEarlyRemaining, schedule.LabelLateRemaining, "Cumulative Early", "Cumulative Late")

	for _, row := range r.Table() {
		s.write(row.Month.Format("Jan 2006"), row.Actual, row.ThisPeriod, row.EarlyRemaining, row.LateRemaining,
			row.CumulativeEarly, row.CumulativeLate)
	}
	return s
}

func workFlowSheet(f *excelize.File, style int, r *schedule.WorkFlowReport) *sheet {
	s := newSheet(f, SheetWorkFlow)
	s.widths(12, 16, 16, 16, 16)
	s.header(style, "Month", schedule.LabelPlannedStarts, schedule.LabelPlannedFinishes,
		schedule.LabelActualStarts, schedule.LabelActualFinishes)
	for _, row := range r.Table() {
		s.write(row.Month.Format("Jan 2006"), row.PlannedStarts, row.PlannedFinishes, row.ActualStarts, row.ActualFinishes)
	}
	return s
}

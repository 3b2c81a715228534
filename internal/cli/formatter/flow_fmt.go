package formatter

import (
	"strconv"
	"strings"

	"github.com/jjCode01/xer-pro/internal/schedule"
)

// FormatCashFlow renders cost per month with running early and late
// totals. A projection error replaces the table.
func FormatCashFlow(r *schedule.CashFlowReport, err error) string {
	if err != nil {
		return RenderBox("Cash Flow", StyleRed.Render("Cash flow unavailable: "+err.Error()))
	}

	table := r.Table()
	if len(table) == 0 {
		return RenderBox("Cash Flow", Dim("No cost loaded resources."))
	}

	rows := make([][]string, len(table))
	for i, row := range table {
		rows[i] = []string{
			FormatMonth(row.Month),
			FormatMoney(row.Actual),
			FormatMoney(row.ThisPeriod),
			FormatMoney(row.EarlyRemaining),
			FormatMoney(row.LateRemaining),
			FormatMoney(row.CumulativeEarly),
			FormatMoney(row.CumulativeLate),
		}
	}
	headers := []string{"MONTH", "ACTUAL", "THIS PERIOD", "EARLY", "LATE", "CUM EARLY", "CUM LATE"}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows, 1, 2, 3, 4, 5, 6))
	return RenderBox("Cash Flow", b.String())
}

// FormatWorkFlow renders task starts and finishes per month.
func FormatWorkFlow(r *schedule.WorkFlowReport) string {
	table := r.Table()
	if len(table) == 0 {
		return RenderBox("Work Flow", Dim("No starts or finishes in range."))
	}

	rows := make([][]string, len(table))
	for i, row := range table {
		rows[i] = []string{
			FormatMonth(row.Month),
			strconv.Itoa(row.PlannedStarts),
			strconv.Itoa(row.PlannedFinishes),
			strconv.Itoa(row.ActualStarts),
			strconv.Itoa(row.ActualFinishes),
		}
	}
	headers := []string{"MONTH", "PLANNED STARTS", "PLANNED FINISHES", "ACTUAL STARTS", "ACTUAL FINISHES"}
	return RenderBox("Work Flow", RenderTable(headers, rows, 1, 2, 3, 4))
}

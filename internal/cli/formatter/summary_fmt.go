package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

const summaryProgressBarWidth = 20

var (
	statusOrder = []domain.TaskStatus{domain.StatusNotStarted, domain.StatusInProgress, domain.StatusComplete}
	linkOrder   = []domain.LinkType{domain.LinkFS, domain.LinkSS, domain.LinkFF, domain.LinkSF}
)

// FormatSummary renders the headline view of one schedule with its float
// distribution and a pointer to any warnings.
func FormatSummary(resp *contract.AnalyzeResponse) string {
	s := resp.Summary
	var b strings.Builder

	b.WriteString(RenderFields([][2]string{
		{"Project", Bold(s.ShortName) + "  " + s.Name},
		{"Data Date", FormatDate(s.DataDate)},
		{"Start", FormatDate(s.Start)},
		{"Finish", FormatDate(s.Finish)},
		{"Must Finish", FormatDatePtr(s.MustFinish)},
		{"Duration", FormatDays(s.Duration)},
		{"Remaining", FormatDays(s.RemainingDuration)},
		{"Progress", RenderProgress(s.PercentComplete, summaryProgressBarWidth)},
	}))

	b.WriteString("\n" + Header("Activities") + "\n")
	b.WriteString(statusTable(s))

	b.WriteString("\n" + Header("Logic") + "\n")
	b.WriteString(linkTable(s))

	b.WriteString("\n" + Header("Float") + "\n")
	b.WriteString(FloatTable(resp.Float, nil))

	b.WriteString("\n" + Header("Cost") + "\n")
	b.WriteString(RenderFields(valueFields(s.Cost, FormatMoney)))

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s, %s", Plural(s.ResourceCount, "resource assignment"), Plural(s.CalendarCount, "calendar"))) + "\n")

	if resp.Warnings != nil {
		if n := resp.Warnings.Total(); n > 0 {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  %s found, run `xerpro warnings` for details", Plural(n, "warning"))) + "\n")
		}
	}
	if resp.CashFlowErr != nil {
		b.WriteString(StyleYellow.Render("  WARNING: cash flow unavailable: "+resp.CashFlowErr.Error()) + "\n")
	}

	return RenderBox("Schedule Summary", b.String())
}

func statusTable(s contract.ScheduleSummary) string {
	rows := make([][]string, 0, len(statusOrder)+1)
	for _, st := range statusOrder {
		rows = append(rows, []string{StatusPill(st), strconv.Itoa(s.TaskCounts[st]), share(s.TaskCounts[st], s.TaskTotal)})
	}
	rows = append(rows, []string{Bold("Total"), strconv.Itoa(s.TaskTotal), ""})
	return RenderTable([]string{"STATUS", "COUNT", "SHARE"}, rows, 1, 2)
}

func linkTable(s contract.ScheduleSummary) string {
	rows := make([][]string, 0, len(linkOrder)+1)
	for _, lt := range linkOrder {
		rows = append(rows, []string{string(lt), strconv.Itoa(s.LinkCounts[lt]), share(s.LinkCounts[lt], s.LogicCount)})
	}
	rows = append(rows, []string{Bold("Total"), strconv.Itoa(s.LogicCount), ""})
	return RenderTable([]string{"TYPE", "COUNT", "SHARE"}, rows, 1, 2)
}

// FloatTable renders the float distribution. With a previous distribution
// the counts are shown side by side.
func FloatTable(cur, prev []schedule.FloatShare) string {
	headers := []string{"GROUP", "COUNT", "SHARE"}
	if prev != nil {
		headers = append(headers, "PREV COUNT", "PREV SHARE")
	}
	rows := make([][]string, 0, len(cur))
	for i, fs := range cur {
		row := []string{FloatIndicator(fs.Group), strconv.Itoa(fs.Count), FormatPercent(fs.Percent)}
		if prev != nil && i < len(prev) {
			row = append(row, strconv.Itoa(prev[i].Count), FormatPercent(prev[i].Percent))
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows, 1, 2, 3, 4)
}

func valueFields(v domain.ResourceValues, format func(float64) string) [][2]string {
	return [][2]string{
		{"Budget", format(v.Budget)},
		{"Actual", format(v.Actual)},
		{"This Period", format(v.ThisPeriod)},
		{"Remaining", format(v.Remaining)},
		{"At Completion", format(v.AtCompletion)},
		{"Variance", format(v.Variance)},
	}
}

func share(n, total int) string {
	if total == 0 {
		return Dim("--")
	}
	return FormatPercent(float64(n) / float64(total) * 100)
}

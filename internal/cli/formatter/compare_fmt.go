package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jjCode01/xer-pro/internal/comparison"
	"github.com/jjCode01/xer-pro/internal/contract"
)

// FormatComparison renders two versions side by side with the count of
// every change category that has entries. With detail the individual
// changes are listed per category.
func FormatComparison(resp *contract.CompareResponse, detail bool) string {
	cur, prev := resp.Current, resp.Previous
	var b strings.Builder

	rows := [][]string{
		{"Project", cur.ShortName, prev.ShortName},
		{"Data Date", FormatDate(cur.DataDate), FormatDate(prev.DataDate)},
		{"Start", FormatDate(cur.Start), FormatDate(prev.Start)},
		{"Finish", FormatDate(cur.Finish), FormatDate(prev.Finish)},
		{"Remaining", FormatDays(cur.RemainingDuration), FormatDays(prev.RemainingDuration)},
		{"Complete", FormatPercent(cur.PercentComplete), FormatPercent(prev.PercentComplete)},
		{"Activities", strconv.Itoa(cur.TaskTotal), strconv.Itoa(prev.TaskTotal)},
		{"Relationships", strconv.Itoa(cur.LogicCount), strconv.Itoa(prev.LogicCount)},
		{"Budget", FormatMoney(cur.Cost.Budget), FormatMoney(prev.Cost.Budget)},
		{"Actual Cost", FormatMoney(cur.Cost.Actual), FormatMoney(prev.Cost.Actual)},
	}
	b.WriteString(RenderTable([]string{"", "CURRENT", "PREVIOUS"}, rows))

	if slip := cur.Finish.Sub(prev.Finish).Hours() / 24; slip != 0 {
		style := StyleRed
		if slip < 0 {
			style = StyleGreen
		}
		b.WriteString("\n" + style.Render(fmt.Sprintf("  Finish moved %+.0f calendar days", slip)) + "\n")
	}

	b.WriteString("\n" + Header("Float") + "\n")
	b.WriteString(FloatTable(resp.CurrentFloat, resp.PreviousFloat))

	b.WriteString("\n" + Header("Changes") + "\n")
	total := 0
	var counts [][]string
	for _, cat := range comparison.Categories {
		n := resp.Counts[cat]
		total += n
		if n > 0 {
			counts = append(counts, []string{CategoryLabel(cat), strconv.Itoa(n)})
		}
	}
	if total == 0 {
		b.WriteString(StyleGreen.Render("No changes found.") + "\n")
	} else {
		b.WriteString(RenderTable([]string{"CATEGORY", "COUNT"}, counts, 1))
	}

	if detail && total > 0 {
		byCat := make(map[comparison.Category][][]string)
		for _, e := range resp.Changes.Entries() {
			byCat[e.Category] = append(byCat[e.Category], []string{e.Item, e.Current, e.Previous})
		}
		for _, cat := range comparison.Categories {
			if len(byCat[cat]) == 0 {
				continue
			}
			b.WriteString("\n" + Header(CategoryLabel(cat)) + "\n")
			b.WriteString(RenderTable([]string{"ITEM", "CURRENT", "PREVIOUS"}, byCat[cat]))
		}
	}

	if resp.Swapped {
		b.WriteString("\n" + Dim("Files were reordered by data date.") + "\n")
	}
	return RenderBox("Schedule Comparison", b.String())
}

package export

import (
	"fmt"
	"io"

	"github.com/jjCode01/xer-pro/internal/comparison"
	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/xuri/excelize/v2"
)

// Comparison builds the workbook for two schedule versions: side by side
// summaries and float, the count per change category and one row per
// change.
func Comparison(resp *contract.CompareResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	style, err := headerStyle(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	summary := newSheet(f, SheetSummary)
	summary.widths(28, 30, 30)
	summary.header(style, "Field", "Current", "Previous")
	summary.write("Run ID", resp.RunID)
	summary.write("Generated", resp.GeneratedAt)
	summaryRows(summary, resp.Current, &resp.Previous)

	float := floatSheet(f, style, SheetFloat, resp.CurrentFloat, resp.PreviousFloat)

	counts := newSheet(f, SheetChanges)
	counts.widths(24, 10)
	counts.header(style, "Category", "Count")
	for _, cat := range comparison.Categories {
		counts.write(string(cat), resp.Counts[cat])
	}

	log := newSheet(f, SheetChangeLog)
	log.widths(24, 36, 40, 40)
	log.header(style, "Category", "Item", "Current", "Previous")
	for _, e := range resp.Changes.Entries() {
		log.write(string(e.Category), e.Item, e.Current, e.Previous)
	}

	for _, s := range []*sheet{summary, float, counts, log} {
		if s.err != nil {
			f.Close()
			return nil, fmt.Errorf("building %s sheet: %w", s.name, s.err)
		}
	}
	return f, nil
}

// WriteComparison streams the comparison workbook to w.
func WriteComparison(w io.Writer, resp *contract.CompareResponse) error {
	f, err := Comparison(resp)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

package formatter

import (
	"slices"
	"strconv"
	"strings"

	"github.com/jjCode01/xer-pro/internal/warning"
)

// FormatWarnings renders the count per check followed by one table per
// check that found anything. Only kinds listed in only are detailed when
// it is non-empty.
func FormatWarnings(w *warning.Warnings, only ...warning.Kind) string {
	var b strings.Builder

	counts := w.Counts()
	rows := make([][]string, 0, len(warning.Kinds))
	for _, k := range warning.Kinds {
		n := strconv.Itoa(counts[k])
		if counts[k] > 0 {
			n = StyleYellow.Render(n)
		}
		rows = append(rows, []string{WarningLabel(k), n})
	}
	b.WriteString(RenderTable([]string{"CHECK", "FOUND"}, rows, 1))

	byKind := make(map[warning.Kind][][]string)
	for _, e := range w.Entries() {
		byKind[e.Kind] = append(byKind[e.Kind], []string{e.Item, e.Detail})
	}

	for _, k := range warning.Kinds {
		if len(byKind[k]) == 0 || (len(only) > 0 && !slices.Contains(only, k)) {
			continue
		}
		b.WriteString("\n" + Header(WarningLabel(k)) + "\n")
		b.WriteString(RenderTable([]string{"ITEM", "DETAIL"}, byKind[k]))
	}

	if w.Total() == 0 {
		b.WriteString("\n" + StyleGreen.Render("No warnings found.") + "\n")
	}
	return RenderBox("Warnings", b.String())
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// DateLayout is the P6 style short date used throughout the reports.
const DateLayout = "02-Jan-06"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + strings.TrimRight(content, "\n")
		return boxStyle.Render(inner) + "\n"
	}

	return boxStyle.Render(strings.TrimRight(content, "\n")) + "\n"
}

// FormatDate renders a date as 02-Jan-06, or a dim "--" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Dim("--")
	}
	return t.Format(DateLayout)
}

// FormatDatePtr is FormatDate for optional dates.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return Dim("--")
	}
	return FormatDate(*t)
}

// FormatMonth renders a month bucket such as "Jan 2024".
func FormatMonth(t time.Time) string {
	return t.Format("Jan 2006")
}

// FormatDays renders a day count such as "12d".
func FormatDays(days int) string {
	return fmt.Sprintf("%dd", days)
}

// FormatMoney renders an amount with thousands separators and cents.
func FormatMoney(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatQty renders a unit quantity with thousands separators.
func FormatQty(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// FormatPercent renders a 0-100 percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// Plural returns "1 task" or "3 tasks".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Truncate shortens s to n visible characters with a trailing ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

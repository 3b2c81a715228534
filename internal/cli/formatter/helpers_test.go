package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "08-Jan-24", FormatDate(time.Date(2024, time.January, 8, 8, 0, 0, 0, time.UTC)))
	assert.Contains(t, FormatDate(time.Time{}), "--")
	assert.Contains(t, FormatDatePtr(nil), "--")
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{-250.25, "-$250.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.in))
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 task", Plural(1, "task"))
	assert.Equal(t, "0 tasks", Plural(0, "task"))
	assert.Equal(t, "3 warnings", Plural(3, "warning"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Pour", Truncate("Pour", 10))
	assert.Equal(t, "Pour Fo…", Truncate("Pour Footings", 8))
}

func TestStatusPill(t *testing.T) {
	tests := []struct {
		status   domain.TaskStatus
		contains string
	}{
		{domain.StatusNotStarted, "Not Started"},
		{domain.StatusInProgress, "In Progress"},
		{domain.StatusComplete, "Complete"},
		{"TK_Other", "TK_Other"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Contains(t, StatusPill(tt.status), tt.contains)
		})
	}
}

func TestFloatIndicator(t *testing.T) {
	for _, g := range schedule.FloatGroups {
		assert.Contains(t, FloatIndicator(g), string(g))
	}
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"empty", 0, "0.0%"},
		{"half", 50, "50.0%"},
		{"over clamps", 150, "100.0%"},
		{"negative clamps", -5, "0.0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, 10)
			assert.Contains(t, got, tt.want)
			assert.Equal(t, 10, strings.Count(got, filledBlock)+strings.Count(got, emptyBlock))
		})
	}
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"NAME", "COUNT"}, [][]string{
		{"Critical", "3"},
		{"High Float", "12"},
	}, 1)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	for _, l := range lines[1:] {
		assert.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width(l))
	}
	assert.True(t, strings.HasSuffix(lines[2], " 3"))
	assert.True(t, strings.HasSuffix(lines[3], "12"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderFields(t *testing.T) {
	out := RenderFields([][2]string{{"Start", "01-Jan-24"}, {"Data Date", "08-Jan-24"}})
	assert.Contains(t, out, "Start")
	assert.Contains(t, out, "08-Jan-24")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, strings.Index(lines[0], "01-Jan-24"), strings.Index(lines[1], "08-Jan-24"))
}

func TestRenderBox(t *testing.T) {
	got := RenderBox("Test Title", "Some content")
	assert.Contains(t, got, "TEST TITLE")
	assert.Contains(t, got, "Some content")
	assert.Contains(t, got, "╭")
	assert.Contains(t, got, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	got := RenderBox("", "Just content")
	assert.Contains(t, got, "Just content")
	assert.Contains(t, got, "╭")
}

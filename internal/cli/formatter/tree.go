package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Status domain.TaskStatus
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders a list of TreeItems as an indented tree using
// box-drawing characters for connectors. Complete items get a green ✔
// prefix, in-progress items an amber ▶ prefix, and detail badges are
// right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		statusPrefix := ""
		switch item.Status {
		case domain.StatusComplete:
			statusPrefix = StyleGreen.Render("✔ ")
			title = Dim(title)
		case domain.StatusInProgress:
			statusPrefix = StyleYellowBold.Render("▶ ")
			title = StyleYellowBold.Render(title)
		}

		content := prefix + statusPrefix + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render("[ " + item.Detail + " ]")
		}
		maxContentWidth = max(maxContentWidth, lipgloss.Width(content))
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := max(maxContentWidth-lipgloss.Width(li.content), 0)
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}
	return b.String()
}

// WbsTree builds tree items for the WBS of a schedule. A node is complete
// when every activity directly under it is complete and in progress when
// any has started.
func WbsTree(s *schedule.Schedule) []TreeItem {
	byWbs := make(map[string][]*domain.Task)
	for _, t := range s.Tasks(schedule.TaskFilter{}) {
		byWbs[t.WbsID] = append(byWbs[t.WbsID], t)
	}

	var nodes []*domain.WbsNode
	for _, n := range s.WbsNodes() {
		if !n.IsProjectNode {
			nodes = append(nodes, n)
		}
	}

	items := make([]TreeItem, len(nodes))
	for i, n := range nodes {
		tasks := byWbs[n.ID]
		items[i] = TreeItem{
			Title:  n.ShortName + "  " + n.Name,
			Level:  len(s.WbsPath(n.ID)) - 1,
			IsLast: lastSibling(nodes, i),
			Status: rollupStatus(tasks),
		}
		if len(tasks) > 0 {
			items[i].Detail = Plural(len(tasks), "task")
		}
	}
	return items
}

func lastSibling(nodes []*domain.WbsNode, i int) bool {
	for _, n := range nodes[i+1:] {
		if n.ParentID == nodes[i].ParentID {
			return false
		}
	}
	return true
}

func rollupStatus(tasks []*domain.Task) domain.TaskStatus {
	if len(tasks) == 0 {
		return ""
	}
	complete := 0
	for _, t := range tasks {
		switch {
		case t.IsCompleted():
			complete++
		case t.IsInProgress():
			return domain.StatusInProgress
		}
	}
	switch complete {
	case len(tasks):
		return domain.StatusComplete
	case 0:
		return domain.StatusNotStarted
	default:
		return domain.StatusInProgress
	}
}

// FormatWbs renders the WBS tree of a schedule.
func FormatWbs(s *schedule.Schedule) string {
	items := WbsTree(s)
	if len(items) == 0 {
		return RenderBox("WBS", Dim("No WBS nodes."))
	}
	return RenderBox("WBS", RenderTree(items))
}

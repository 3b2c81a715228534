package comparison

import (
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

// WbsEntry is a WBS node with its short-name path.
type WbsEntry struct {
	Path string
	Node *domain.WbsNode
}

type WbsRename struct {
	Path       string
	Current    *domain.WbsNode
	Previous   *domain.WbsNode
	Similarity NameSimilarity
}

type WbsDiff struct {
	Added   []WbsEntry
	Deleted []WbsEntry
	Renamed []WbsRename
}

// WbsChanges matches WBS nodes by short-name path below the project node.
func WbsChanges(current, previous *schedule.Schedule) *WbsDiff {
	cur, prev := wbsByPath(current), wbsByPath(previous)
	prevIndex := make(map[string]*domain.WbsNode, len(prev))
	for _, e := range prev {
		prevIndex[e.Path] = e.Node
	}
	curIndex := make(map[string]*domain.WbsNode, len(cur))
	for _, e := range cur {
		curIndex[e.Path] = e.Node
	}

	d := &WbsDiff{}
	for _, e := range cur {
		old, ok := prevIndex[e.Path]
		switch {
		case !ok:
			d.Added = append(d.Added, e)
		case old.Name != e.Node.Name:
			d.Renamed = append(d.Renamed, WbsRename{
				Path:       e.Path,
				Current:    e.Node,
				Previous:   old,
				Similarity: Similarity(e.Node.Name, old.Name),
			})
		}
	}
	for _, e := range prev {
		if _, ok := curIndex[e.Path]; !ok {
			d.Deleted = append(d.Deleted, e)
		}
	}
	return d
}

// wbsByPath lists the nodes below the project node in path order. When two
// nodes share a path only the first is kept.
func wbsByPath(s *schedule.Schedule) []WbsEntry {
	var out []WbsEntry
	seen := make(map[string]bool)
	for _, n := range s.WbsNodes() {
		if n.IsProjectNode {
			continue
		}
		path := s.WbsPathString(n.ID)
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		out = append(out, WbsEntry{Path: path, Node: n})
	}
	return out
}

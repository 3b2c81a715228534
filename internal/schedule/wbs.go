package schedule

import (
	"strings"

	"github.com/jjCode01/xer-pro/internal/domain"
)

// WbsPathSeparator joins WBS short names into a path string.
const WbsPathSeparator = "."

// WbsPath returns the ancestor chain of a WBS node, outermost first and
// ending with the node itself. The project root node is excluded. The walk
// stops at a missing parent and at the first repeated node.
func (s *Schedule) WbsPath(wbsID string) []*domain.WbsNode {
	var chain []*domain.WbsNode
	seen := make(map[string]bool)
	for id := wbsID; id != ""; {
		n := s.wbs[id]
		if n == nil || n.IsProjectNode || seen[id] {
			break
		}
		seen[id] = true
		chain = append(chain, n)
		id = n.ParentID
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// WbsPathString joins the short names of WbsPath.
func (s *Schedule) WbsPathString(wbsID string) string {
	chain := s.WbsPath(wbsID)
	names := make([]string, len(chain))
	for i, n := range chain {
		names[i] = n.ShortName
	}
	return strings.Join(names, WbsPathSeparator)
}

// WbsNames returns the long names along WbsPath.
func (s *Schedule) WbsNames(wbsID string) []string {
	chain := s.WbsPath(wbsID)
	names := make([]string, len(chain))
	for i, n := range chain {
		names[i] = n.Name
	}
	return names
}

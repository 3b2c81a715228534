package warning

import (
	"strings"

	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

// Classifier separates field construction work from administrative and
// procurement activities using keyword lists. Matching is case-insensitive.
type Classifier struct {
	AdminKeywords     []string
	ConstructionVerbs []string
}

func DefaultClassifier() Classifier {
	return Classifier{
		AdminKeywords: []string{
			"submit", "submittal", "shop drawing", "product data", "review",
			"approve", "approval", "procure", "procurement", "fabricate",
			"lead time", "deliver", "obtain", "buyout", "purchase",
			"coordination", "coordinate", "allowance", "closeout",
		},
		ConstructionVerbs: []string{
			"install", "erect", "swing", "set", "pour", "place", "form",
			"layout", "excavate", "dig", "rough in", "rough-in",
		},
	}
}

// IsConstructionTask reports whether a task is construction work. Any WBS
// ancestor named with an admin keyword makes it administrative; otherwise a
// name starting with a construction verb makes it construction; otherwise
// an admin keyword in the name makes it administrative. Everything else is
// construction.
func (c Classifier) IsConstructionTask(s *schedule.Schedule, t *domain.Task) bool {
	for _, node := range s.WbsPath(t.WbsID) {
		if containsAny(node.Name, c.AdminKeywords) {
			return false
		}
	}

	name := strings.ToLower(t.Name)
	for _, verb := range c.ConstructionVerbs {
		if strings.HasPrefix(name, strings.ToLower(verb)) {
			return true
		}
	}
	return !containsAny(name, c.AdminKeywords)
}

func containsAny(s string, keywords []string) bool {
	s = strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(s, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

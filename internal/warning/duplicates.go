package warning

import (
	"sort"

	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

// DuplicateNames groups tasks that share an exact name. Each group is
// sorted by activity code and the groups by name.
func DuplicateNames(s *schedule.Schedule) [][]*domain.Task {
	byName := make(map[string][]*domain.Task)
	for _, t := range s.Tasks(schedule.TaskFilter{}) {
		byName[t.Name] = append(byName[t.Name], t)
	}

	var out [][]*domain.Task
	for _, group := range byName {
		if len(group) > 1 {
			out = append(out, group)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0].Name < out[j][0].Name })
	return out
}

// DuplicateLogic groups ties between the same predecessor and successor
// when the group holds more than one tie and any of them is FS or SF.
func DuplicateLogic(s *schedule.Schedule) [][]*domain.Relationship {
	var out [][]*domain.Relationship
	var group []*domain.Relationship
	flush := func() {
		if len(group) > 1 && hasLink(group, domain.LinkFS, domain.LinkSF) {
			out = append(out, group)
		}
		group = nil
	}

	// Logic is sorted by predecessor then successor, so pairs are adjacent.
	for _, r := range s.Logic(schedule.LinkFilter{}) {
		if len(group) > 0 && (group[0].PredecessorCode != r.PredecessorCode || group[0].SuccessorCode != r.SuccessorCode) {
			flush()
		}
		group = append(group, r)
	}
	flush()
	return out
}

func hasLink(rels []*domain.Relationship, links ...domain.LinkType) bool {
	for _, r := range rels {
		for _, l := range links {
			if r.Link == l {
				return true
			}
		}
	}
	return false
}

package warning

import (
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

// RedundantLink is a direct tie implied by an indirect path from the same
// predecessor. Epoch is the predecessor's tie the path starts with, Implied
// is the redundant direct tie and Depth counts the ties on the path.
type RedundantLink struct {
	Epoch   *domain.Relationship
	Implied *domain.Relationship
	Depth   int
}

type frame struct {
	taskID string
	depth  int
}

// RedundantLogic finds direct ties that another path from the same
// predecessor already enforces. For every task with ties to more than one
// successor it walks forward from each successor; reaching another direct
// successor marks that direct tie redundant when its link type matches the
// arriving tie or is FS or FF. Ties into LOE tasks are ignored. Visited ties
// are memoized per origin task, so the walk terminates on any graph.
func RedundantLogic(s *schedule.Schedule) []RedundantLink {
	var out []RedundantLink
	for _, origin := range s.Tasks(schedule.TaskFilter{}) {
		direct := make(map[string][]*domain.Relationship)
		var outgoing []*domain.Relationship
		for _, r := range s.Successors(origin.ID) {
			if succ := s.Task(r.SuccessorID); succ == nil || succ.IsLOE() {
				continue
			}
			direct[r.SuccessorID] = append(direct[r.SuccessorID], r)
			outgoing = append(outgoing, r)
		}
		if len(direct) < 2 {
			continue
		}

		visited := make(map[*domain.Relationship]bool)
		flagged := make(map[*domain.Relationship]bool)
		for _, epoch := range outgoing {
			stack := []frame{{taskID: epoch.SuccessorID, depth: 1}}
			for len(stack) > 0 {
				f := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				for _, next := range s.Successors(f.taskID) {
					if visited[next] {
						continue
					}
					visited[next] = true
					depth := f.depth + 1

					for _, d := range direct[next.SuccessorID] {
						if flagged[d] || d.SuccessorID == epoch.SuccessorID {
							continue
						}
						if d.Link == next.Link || d.Link == domain.LinkFS || d.Link == domain.LinkFF {
							flagged[d] = true
							out = append(out, RedundantLink{Epoch: epoch, Implied: d, Depth: depth})
						}
					}
					stack = append(stack, frame{taskID: next.SuccessorID, depth: depth})
				}
			}
		}
	}
	return out
}

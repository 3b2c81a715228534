package warning

import (
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

type OpenEndKind string

const (
	OpenPredecessor OpenEndKind = "open_predecessor"
	OpenStart       OpenEndKind = "open_start"
	OpenSuccessor   OpenEndKind = "open_successor"
	OpenFinish      OpenEndKind = "open_finish"
)

var OpenEndKinds = []OpenEndKind{OpenPredecessor, OpenStart, OpenSuccessor, OpenFinish}

// OpenEndGroups maps each kind to its tasks in activity code order.
type OpenEndGroups map[OpenEndKind][]*domain.Task

func (o OpenEndGroups) Count() int {
	n := 0
	for _, ts := range o {
		n += len(ts)
	}
	return n
}

// OpenEnds classifies tasks with missing logic. A task without
// predecessors is an open predecessor; one whose predecessors are neither FS
// nor SS is an open start. A task without successors is an open successor;
// one whose successors are neither FS nor FF is an open finish.
func OpenEnds(s *schedule.Schedule) OpenEndGroups {
	out := OpenEndGroups{}
	for _, t := range s.Tasks(schedule.TaskFilter{}) {
		switch preds := s.Predecessors(t.ID); {
		case len(preds) == 0:
			out[OpenPredecessor] = append(out[OpenPredecessor], t)
		case !hasLink(preds, domain.LinkFS, domain.LinkSS):
			out[OpenStart] = append(out[OpenStart], t)
		}

		switch succs := s.Successors(t.ID); {
		case len(succs) == 0:
			out[OpenSuccessor] = append(out[OpenSuccessor], t)
		case !hasLink(succs, domain.LinkFS, domain.LinkFF):
			out[OpenFinish] = append(out[OpenFinish], t)
		}
	}
	return out
}

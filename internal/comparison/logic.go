package comparison

import (
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

// LogicRevision pairs a tie in the current schedule with its previous
// version: either the link type changed between the same two tasks or the
// lag changed.
type LogicRevision struct {
	Current  *domain.Relationship
	Previous *domain.Relationship
}

type LogicDiff struct {
	Added   []*domain.Relationship
	Deleted []*domain.Relationship
	Revised []LogicRevision
}

type taskPairKey struct {
	Predecessor string
	Successor   string
}

// LogicChanges diffs the logic ties of two schedules by predecessor,
// successor and link type. An added and a deleted tie between the same two
// tasks collapse into one revision; ties present in both with a different
// lag are revisions too.
func LogicChanges(current, previous *schedule.Schedule) *LogicDiff {
	curLogic, prevLogic := current.Logic(schedule.LinkFilter{}), previous.Logic(schedule.LinkFilter{})
	curKeys, prevKeys := indexLogic(curLogic), indexLogic(prevLogic)

	d := &LogicDiff{}
	var added, deleted []*domain.Relationship
	for _, r := range curLogic {
		if prevKeys[r.Key()] == nil {
			added = append(added, r)
		}
	}
	for _, r := range prevLogic {
		if curKeys[r.Key()] == nil {
			deleted = append(deleted, r)
		}
	}

	// Pair each added tie with the first unpaired deleted tie between the
	// same tasks.
	pending := make(map[taskPairKey][]*domain.Relationship)
	for _, r := range deleted {
		k := taskPairKey{r.PredecessorCode, r.SuccessorCode}
		pending[k] = append(pending[k], r)
	}
	paired := make(map[*domain.Relationship]bool)
	for _, r := range added {
		k := taskPairKey{r.PredecessorCode, r.SuccessorCode}
		if rels := pending[k]; len(rels) > 0 {
			d.Revised = append(d.Revised, LogicRevision{Current: r, Previous: rels[0]})
			pending[k] = rels[1:]
			paired[rels[0]] = true
			continue
		}
		d.Added = append(d.Added, r)
	}
	for _, r := range deleted {
		if !paired[r] {
			d.Deleted = append(d.Deleted, r)
		}
	}

	for _, r := range curLogic {
		if prev := prevKeys[r.Key()]; prev != nil && prev.LagHrs != r.LagHrs {
			d.Revised = append(d.Revised, LogicRevision{Current: r, Previous: prev})
		}
	}
	return d
}

func indexLogic(rels []*domain.Relationship) map[domain.RelationshipKey]*domain.Relationship {
	out := make(map[domain.RelationshipKey]*domain.Relationship, len(rels))
	for _, r := range rels {
		if _, ok := out[r.Key()]; !ok {
			out[r.Key()] = r
		}
	}
	return out
}

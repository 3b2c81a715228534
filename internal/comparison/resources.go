package comparison

import (
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

type ResourceRevisionKind string

const (
	RevisedBudgetCost ResourceRevisionKind = "budget_cost"
	RevisedBudgetQty  ResourceRevisionKind = "budget_qty"
	RevisedAttributes ResourceRevisionKind = "attributes"
)

type ResourceRevision struct {
	Current  *domain.TaskResource
	Previous *domain.TaskResource
	Kind     ResourceRevisionKind
}

type ResourceDiff struct {
	Added   []*domain.TaskResource
	Deleted []*domain.TaskResource
	Revised []ResourceRevision
}

// assignmentKey is the full identity of an assignment across schedules.
type assignmentKey struct {
	matchKey
	BudgetCost   float64
	BudgetQty    float64
	RemainingLag float64
}

// matchKey is the looser identity used to pair an added assignment with a
// deleted one.
type matchKey struct {
	domain.TaskResourceKey
	Type   domain.ResourceType
	LagHrs float64
}

func keyOf(r *domain.TaskResource) assignmentKey {
	return assignmentKey{
		matchKey:     matchKeyOf(r),
		BudgetCost:   r.Cost.Budget,
		BudgetQty:    r.Qty.Budget,
		RemainingLag: r.RemainingLagHrs,
	}
}

func matchKeyOf(r *domain.TaskResource) matchKey {
	return matchKey{TaskResourceKey: r.Key(), Type: r.Type, LagHrs: r.LagHrs}
}

// ResourceChanges diffs resource assignments as multisets of their full
// identity. Unmatched additions and deletions with the same task, resource,
// account, type and lag are then paired as revisions.
func ResourceChanges(current, previous *schedule.Schedule) *ResourceDiff {
	cur, prev := current.Resources(), previous.Resources()
	added := multisetDiff(cur, prev)
	deleted := multisetDiff(prev, cur)

	pending := make(map[matchKey][]*domain.TaskResource)
	for _, r := range deleted {
		k := matchKeyOf(r)
		pending[k] = append(pending[k], r)
	}

	d := &ResourceDiff{}
	paired := make(map[*domain.TaskResource]bool)
	for _, r := range added {
		k := matchKeyOf(r)
		rels := pending[k]
		if len(rels) == 0 {
			d.Added = append(d.Added, r)
			continue
		}
		old := rels[0]
		pending[k] = rels[1:]
		paired[old] = true
		d.Revised = append(d.Revised, ResourceRevision{Current: r, Previous: old, Kind: revisionKind(r, old)})
	}
	for _, r := range deleted {
		if !paired[r] {
			d.Deleted = append(d.Deleted, r)
		}
	}
	return d
}

func revisionKind(cur, prev *domain.TaskResource) ResourceRevisionKind {
	switch {
	case cur.Cost.Budget != prev.Cost.Budget:
		return RevisedBudgetCost
	case cur.Qty.Budget != prev.Qty.Budget:
		return RevisedBudgetQty
	default:
		return RevisedAttributes
	}
}

// multisetDiff returns the members of a not matched by an equal member of
// b, counting duplicates.
func multisetDiff(a, b []*domain.TaskResource) []*domain.TaskResource {
	counts := make(map[assignmentKey]int, len(b))
	for _, r := range b {
		counts[keyOf(r)]++
	}
	var out []*domain.TaskResource
	for _, r := range a {
		k := keyOf(r)
		if counts[k] > 0 {
			counts[k]--
			continue
		}
		out = append(out, r)
	}
	return out
}

package domain

import "fmt"

// RelationshipKey identifies a logic tie across schedules.
type RelationshipKey struct {
	Predecessor string
	Successor   string
	Link        LinkType
}

// Relationship is a logic edge from a predecessor task to a successor task.
// Tasks are referenced by id and by activity code.
type Relationship struct {
	ID              string
	PredecessorID   string
	SuccessorID     string
	PredecessorCode string
	SuccessorCode   string
	Link            LinkType
	LagHrs          float64
}

func (r *Relationship) Key() RelationshipKey {
	return RelationshipKey{Predecessor: r.PredecessorCode, Successor: r.SuccessorCode, Link: r.Link}
}

// Lag is the lag in work days.
func (r *Relationship) Lag() int {
	return hoursToDays(r.LagHrs)
}

func (r *Relationship) String() string {
	return fmt.Sprintf("%s -> %s [%s %d]", r.PredecessorCode, r.SuccessorCode, r.Link, r.Lag())
}

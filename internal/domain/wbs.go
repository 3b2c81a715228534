package domain

// WbsNode is one node of the work breakdown structure. ParentID refers to
// another node of the same schedule and may dangle on malformed data.
type WbsNode struct {
	ID            string
	ParentID      string
	ProjectID     string
	ShortName     string
	Name          string
	IsProjectNode bool
	Assignments   int
}

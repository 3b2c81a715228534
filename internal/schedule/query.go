package schedule

import (
	"sort"

	"github.com/jjCode01/xer-pro/internal/domain"
)

// TaskFilter selects tasks by status. With no flag set every task matches;
// otherwise a task matches any one of the set flags.
type TaskFilter struct {
	NotStarted bool
	InProgress bool
	Completed  bool
}

func (f TaskFilter) all() bool {
	return !f.NotStarted && !f.InProgress && !f.Completed
}

func (f TaskFilter) match(t *domain.Task) bool {
	return f.all() ||
		(f.NotStarted && t.IsNotStarted()) ||
		(f.InProgress && t.IsInProgress()) ||
		(f.Completed && t.IsCompleted())
}

// Tasks returns the tasks matching the filter sorted by activity code.
func (s *Schedule) Tasks(f TaskFilter) []*domain.Task {
	out := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.match(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// OpenTasks returns tasks that are not complete.
func (s *Schedule) OpenTasks() []*domain.Task {
	return s.Tasks(TaskFilter{NotStarted: true, InProgress: true})
}

// LinkFilter selects relationships by link type with the same all-or-any
// semantics as TaskFilter.
type LinkFilter struct {
	FS bool
	FF bool
	SS bool
	SF bool
}

func (f LinkFilter) match(l domain.LinkType) bool {
	if !f.FS && !f.FF && !f.SS && !f.SF {
		return true
	}
	switch l {
	case domain.LinkFS:
		return f.FS
	case domain.LinkFF:
		return f.FF
	case domain.LinkSS:
		return f.SS
	case domain.LinkSF:
		return f.SF
	}
	return false
}

// Logic returns the relationships matching the filter sorted by
// predecessor then successor activity code.
func (s *Schedule) Logic(f LinkFilter) []*domain.Relationship {
	out := make([]*domain.Relationship, 0, len(s.logic))
	for _, r := range s.logic {
		if f.match(r.Link) {
			out = append(out, r)
		}
	}
	return out
}

// Predecessors returns the incoming relationships of a task by id.
func (s *Schedule) Predecessors(taskID string) []*domain.Relationship {
	return s.predecessors[taskID]
}

// Successors returns the outgoing relationships of a task by id.
func (s *Schedule) Successors(taskID string) []*domain.Relationship {
	return s.successors[taskID]
}

// GroupByStatus partitions every task by status.
func (s *Schedule) GroupByStatus() map[domain.TaskStatus][]*domain.Task {
	out := make(map[domain.TaskStatus][]*domain.Task, 3)
	for _, t := range s.Tasks(TaskFilter{}) {
		out[t.Status] = append(out[t.Status], t)
	}
	return out
}

// GroupByLink partitions the relationships by link type.
func (s *Schedule) GroupByLink() map[domain.LinkType][]*domain.Relationship {
	out := make(map[domain.LinkType][]*domain.Relationship, 4)
	for _, r := range s.logic {
		out[r.Link] = append(out[r.Link], r)
	}
	return out
}

// FloatRange bounds total float in work days. Nil bounds are open.
type FloatRange struct {
	Min *int
	Max *int
}

// FilterByFloat returns the open tasks whose total float lies in the range.
func (s *Schedule) FilterByFloat(r FloatRange) []*domain.Task {
	var out []*domain.Task
	for _, t := range s.OpenTasks() {
		tf := t.TotalFloat()
		if tf == nil {
			continue
		}
		if r.Min != nil && *tf < *r.Min {
			continue
		}
		if r.Max != nil && *tf > *r.Max {
			continue
		}
		out = append(out, t)
	}
	return out
}

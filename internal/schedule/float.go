package schedule

import "github.com/jjCode01/xer-pro/internal/domain"

type FloatGroup string

const (
	FloatCritical     FloatGroup = "Critical"
	FloatNearCritical FloatGroup = "Near Critical"
	FloatNormal       FloatGroup = "Normal Float"
	FloatHigh         FloatGroup = "High Float"
)

// FloatGroups lists the groups from least to most float.
var FloatGroups = []FloatGroup{FloatCritical, FloatNearCritical, FloatNormal, FloatHigh}

// FloatThresholds are the total float breakpoints in work days.
type FloatThresholds struct {
	NearCritical int
	HighFloat    int
}

func DefaultFloatThresholds() FloatThresholds {
	return FloatThresholds{NearCritical: 20, HighFloat: 50}
}

// Classify places a total float value into exactly one group:
// tf <= 0 critical, tf <= near near critical, tf < high normal, else high.
func (th FloatThresholds) Classify(tf int) FloatGroup {
	switch {
	case tf <= 0:
		return FloatCritical
	case tf <= th.NearCritical:
		return FloatNearCritical
	case tf < th.HighFloat:
		return FloatNormal
	default:
		return FloatHigh
	}
}

// GroupByFloat partitions the open tasks by total float. Open tasks with no
// computed float are treated as zero float.
func (s *Schedule) GroupByFloat(th FloatThresholds) map[FloatGroup][]*domain.Task {
	out := make(map[FloatGroup][]*domain.Task, len(FloatGroups))
	for _, t := range s.OpenTasks() {
		tf := 0
		if v := t.TotalFloat(); v != nil {
			tf = *v
		}
		g := th.Classify(tf)
		out[g] = append(out[g], t)
	}
	return out
}

// FloatShare is the size of one float group.
type FloatShare struct {
	Group   FloatGroup
	Count   int
	Percent float64
}

// FloatDistribution returns every float group in order with its task count
// and share of the open tasks.
func (s *Schedule) FloatDistribution(th FloatThresholds) []FloatShare {
	groups := s.GroupByFloat(th)
	total := 0
	for _, ts := range groups {
		total += len(ts)
	}

	out := make([]FloatShare, 0, len(FloatGroups))
	for _, g := range FloatGroups {
		share := FloatShare{Group: g, Count: len(groups[g])}
		if total > 0 {
			share.Percent = float64(share.Count) / float64(total) * 100
		}
		out = append(out, share)
	}
	return out
}

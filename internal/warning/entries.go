package warning

import (
	"fmt"
	"strings"

	"github.com/jjCode01/xer-pro/internal/domain"
)

// Entry is one finding in text form.
type Entry struct {
	Kind   Kind
	Item   string
	Detail string
}

// Entries flattens the findings in Kinds order.
func (w *Warnings) Entries() []Entry {
	var out []Entry
	add := func(k Kind, item, detail string) {
		out = append(out, Entry{Kind: k, Item: item, Detail: detail})
	}

	for _, group := range w.DuplicateNames {
		codes := make([]string, len(group))
		for i, t := range group {
			codes[i] = t.Code
		}
		add(KindDuplicateNames, strings.Join(codes, ", "), group[0].Name)
	}
	for _, group := range w.DuplicateLogic {
		links := make([]string, len(group))
		for i, r := range group {
			links[i] = string(r.Link)
		}
		add(KindDuplicateLogic, group[0].PredecessorCode+" -> "+group[0].SuccessorCode, strings.Join(links, ", "))
	}
	for _, r := range w.RedundantLogic {
		add(KindRedundantLogic, r.Implied.String(), fmt.Sprintf("implied through %s (%d ties)", r.Epoch.String(), r.Depth))
	}
	for _, kind := range OpenEndKinds {
		for _, t := range w.OpenEnds[kind] {
			add(KindOpenEnds, t.Code, string(kind))
		}
	}
	for _, l := range w.Lags {
		add(KindLags, l.Relationship.String(), string(l.Kind))
	}
	for _, r := range w.StartToFinish {
		add(KindStartToFinish, r.String(), "")
	}
	for _, c := range w.Costs {
		add(KindCosts, c.Resource.String(), fmt.Sprintf("%s: expected %.2f, actual %.2f", c.Kind, c.Expected, c.Actual))
	}
	for _, t := range w.LongDurations {
		add(KindLongDurations, t.Code, longDuration(t))
	}
	return out
}

func longDuration(t *domain.Task) string {
	return fmt.Sprintf("%s (%d d)", t.Name, t.OriginalDuration())
}

package warning

import (
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

type LagKind string

const (
	LagNegative     LagKind = "negative_lag"
	LagLong         LagKind = "long_lag"
	LagOnFS         LagKind = "fs_lag"
	LagSSExceedsDur LagKind = "ss_lag_exceeds_duration"
	LagFFExceedsDur LagKind = "ff_lag_exceeds_duration"
)

type LagWarning struct {
	Kind         LagKind
	Relationship *domain.Relationship
}

// LagWarnings flags questionable lags. An SS lag at least as long as the
// predecessor, or an FF lag at least as long as the successor, hides a
// finish to start sequence. A tie can raise more than one warning.
func LagWarnings(s *schedule.Schedule, longLagDays int) []LagWarning {
	var out []LagWarning
	add := func(k LagKind, r *domain.Relationship) {
		out = append(out, LagWarning{Kind: k, Relationship: r})
	}

	for _, r := range s.Logic(schedule.LinkFilter{}) {
		if r.LagHrs < 0 {
			add(LagNegative, r)
		}
		if r.Lag() > longLagDays {
			add(LagLong, r)
		}
		if r.LagHrs <= 0 {
			continue
		}
		switch r.Link {
		case domain.LinkFS:
			add(LagOnFS, r)
		case domain.LinkSS:
			if pred := s.Task(r.PredecessorID); pred != nil && r.LagHrs >= pred.OriginalDurationHrs {
				add(LagSSExceedsDur, r)
			}
		case domain.LinkFF:
			if succ := s.Task(r.SuccessorID); succ != nil && r.LagHrs >= succ.OriginalDurationHrs {
				add(LagFFExceedsDur, r)
			}
		}
	}
	return out
}

// StartToFinish returns every SF tie.
func StartToFinish(s *schedule.Schedule) []*domain.Relationship {
	return s.Logic(schedule.LinkFilter{SF: true})
}

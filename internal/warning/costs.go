package warning

import (
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
	"github.com/shopspring/decimal"
)

type CostKind string

const (
	CostVariance    CostKind = "cost_variance"
	CostEarnedValue CostKind = "earned_value"
)

// CostWarning compares an expected amount with the recorded one. For a
// variance Expected is the budget and Actual the cost at completion; for
// earned value Expected is budget times task percent complete and Actual
// the actual cost, both in cents.
type CostWarning struct {
	Kind     CostKind
	Resource *domain.TaskResource
	Expected float64
	Actual   float64
}

func CostWarnings(s *schedule.Schedule) []CostWarning {
	var out []CostWarning
	for _, r := range s.Resources() {
		if r.Cost.Variance != 0 {
			out = append(out, CostWarning{
				Kind:     CostVariance,
				Resource: r,
				Expected: r.Cost.Budget,
				Actual:   r.Cost.AtCompletion,
			})
		}

		task := s.Task(r.TaskID)
		if task == nil {
			continue
		}
		earned := cents(decimal.NewFromFloat(r.Cost.Budget).
			Mul(decimal.NewFromFloat(task.PercentComplete())).
			Div(decimal.NewFromInt(100)))
		actual := cents(decimal.NewFromFloat(r.Cost.Actual))
		if !earned.Equal(actual) {
			e, _ := earned.Float64()
			a, _ := actual.Float64()
			out = append(out, CostWarning{Kind: CostEarnedValue, Resource: r, Expected: e, Actual: a})
		}
	}
	return out
}

func cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

package domain

import "github.com/shopspring/decimal"

// ResourceValues holds the budget, actual, this-period and remaining amounts
// of a cost or quantity, with the derived at-completion, variance and
// percent fields.
type ResourceValues struct {
	Budget       float64
	Actual       float64
	ThisPeriod   float64
	Remaining    float64
	AtCompletion float64
	Variance     float64
	Percent      float64
}

// NewResourceValues computes the derived fields from the four inputs.
func NewResourceValues(budget, actual, thisPeriod, remaining float64) ResourceValues {
	v := ResourceValues{
		Budget:     budget,
		Actual:     actual,
		ThisPeriod: thisPeriod,
		Remaining:  remaining,
	}
	v.AtCompletion = sum(actual, remaining)
	v.Variance = sum(v.AtCompletion, -budget)
	if budget != 0 && actual != 0 {
		v.Percent = actual / budget * 100
	}
	return v
}

// HasData reports whether both budget and actual are recorded.
func (v ResourceValues) HasData() bool {
	return v.Budget != 0 && v.Actual != 0
}

// Add sums two value sets field by field and recomputes the derived fields.
func (v ResourceValues) Add(o ResourceValues) ResourceValues {
	return NewResourceValues(
		sum(v.Budget, o.Budget),
		sum(v.Actual, o.Actual),
		sum(v.ThisPeriod, o.ThisPeriod),
		sum(v.Remaining, o.Remaining),
	)
}

// sum adds amounts in decimal so that cent values do not drift.
func sum(vals ...float64) float64 {
	total := decimal.Zero
	for _, v := range vals {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Float64()
	return f
}

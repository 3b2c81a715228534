package schedule

import (
	"sort"
	"time"
)

// MonthlySeries accumulates values into calendar month buckets keyed by
// the first day of the month.
type MonthlySeries map[time.Time]float64

// MonthOf returns midnight UTC on the first day of t's month.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (m MonthlySeries) Add(t time.Time, v float64) {
	m[MonthOf(t)] += v
}

// Months returns the bucket keys in ascending order.
func (m MonthlySeries) Months() []time.Time {
	out := make([]time.Time, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// MonthsOf returns the union of the series' months in ascending order.
func MonthsOf(series ...MonthlySeries) []time.Time {
	seen := make(map[time.Time]bool)
	var out []time.Time
	for _, ser := range series {
		for m := range ser {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (m MonthlySeries) Total() float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}

// SeriesPoint is one (date, label, value) sample of a chart series.
type SeriesPoint struct {
	Month time.Time
	Label string
	Value float64
}

// Points returns the series as labelled samples in month order.
func (m MonthlySeries) Points(label string) []SeriesPoint {
	months := m.Months()
	out := make([]SeriesPoint, len(months))
	for i, month := range months {
		out[i] = SeriesPoint{Month: month, Label: label, Value: m[month]}
	}
	return out
}

// Cumulative returns the running total of the merged series over the union
// of their months.
func Cumulative(label string, series ...MonthlySeries) []SeriesPoint {
	merged := MonthlySeries{}
	for _, s := range series {
		for k, v := range s {
			merged[k] += v
		}
	}
	points := merged.Points(label)
	running := 0.0
	for i := range points {
		running += points[i].Value
		points[i].Value = running
	}
	return points
}

package sample

import (
	"math"
	"sort"
)

// Quantile returns the q-th quantile of sorted using linear interpolation
// between order statistics. q is clamped to [0,1]. sorted must be in
// ascending order; an empty slice yields NaN.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}

	h := float64(n-1) * q
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Percentiles sorts a copy of values once and returns the quantile for each q.
func Percentiles(values []float64, qs ...float64) []float64 {
	sorted := sortedCopy(values)
	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = Quantile(sorted, q)
	}
	return out
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}

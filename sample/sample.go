package sample

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample represents an ordered, finite sequence of observations.
type Sample struct {
	Name   string
	Values []float64
}

// New creates a new sample from values. The slice is not copied.
func New(values []float64) *Sample {
	return &Sample{Values: values}
}

// NewNamed creates a named sample.
func NewNamed(name string, values []float64) *Sample {
	return &Sample{Name: name, Values: values}
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the sample.
func (s *Sample) Mean() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the sample variance (divisor n-1).
func (s *Sample) Variance() float64 {
	if len(s.Values) < 2 {
		return math.NaN()
	}
	return stat.Variance(s.Values, nil)
}

// Std calculates the sample standard deviation.
func (s *Sample) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the sample.
func (s *Sample) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the maximum value in the sample.
func (s *Sample) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Max(s.Values)
}

// Median returns the median value of the sample.
func (s *Sample) Median() float64 {
	return Quantile(s.Sorted(), 0.5)
}

// Sorted returns an ascending copy of the values.
func (s *Sample) Sorted() []float64 {
	return sortedCopy(s.Values)
}

// Diff calculates the first difference of the sample.
func (s *Sample) Diff() *Sample {
	if len(s.Values) < 2 {
		return &Sample{Values: []float64{}}
	}

	result := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		result[i-1] = s.Values[i] - s.Values[i-1]
	}

	return &Sample{
		Values: result,
		Name:   s.Name + "_diff",
	}
}

// Copy creates a deep copy of the sample.
func (s *Sample) Copy() *Sample {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	return &Sample{
		Values: values,
		Name:   s.Name,
	}
}

// Normalize standardizes the sample (z-score normalization).
func (s *Sample) Normalize() *Sample {
	mean := s.Mean()
	std := s.Std()

	if std == 0 || math.IsNaN(std) {
		return s.Copy()
	}

	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		result[i] = (v - mean) / std
	}

	return &Sample{
		Values: result,
		Name:   s.Name + "_normalized",
	}
}

// Ranks returns the 1-based rank of every observation in the original
// order. Tied values share the average of the ranks they span.
func (s *Sample) Ranks() []float64 {
	return Ranks(s.Values)
}

// Ranks assigns average ranks to values, see Sample.Ranks.
func Ranks(values []float64) []float64 {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i + 1
		for j < n && values[idx[j]] == values[idx[i]] {
			j++
		}
		// positions i..j-1 hold ranks i+1..j
		avg := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		i = j
	}
	return ranks
}

// distinct reports how many different values appear, stopping at limit.
func distinct(values []float64, limit int) int {
	seen := make(map[float64]struct{}, limit)
	for _, v := range values {
		seen[v] = struct{}{}
		if len(seen) >= limit {
			break
		}
	}
	return len(seen)
}

package sample

import (
	"math"

	mfstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Description is the fixed descriptive summary of a sample.
type Description struct {
	Count    int
	Min      float64
	Q25      float64
	Median   float64
	Q75      float64
	Max      float64
	Mean     float64
	StdDev   float64 // divisor n-1; NaN when Count == 1
	Skewness float64 // biased Fisher-Pearson coefficient
	Kurtosis float64 // biased excess kurtosis
}

// Describe computes the descriptive summary of values.
func Describe(values []float64) (Description, error) {
	n := len(values)
	if n == 0 {
		return Description{}, invalidInput("cannot describe an empty sample")
	}

	minV, err := mfstats.Min(values)
	if err != nil {
		return Description{}, invalidInput("min: %v", err)
	}
	maxV, err := mfstats.Max(values)
	if err != nil {
		return Description{}, invalidInput("max: %v", err)
	}
	mean, err := mfstats.Mean(values)
	if err != nil {
		return Description{}, invalidInput("mean: %v", err)
	}

	std := math.NaN()
	if n > 1 {
		std, err = mfstats.StandardDeviationSample(values)
		if err != nil {
			return Description{}, invalidInput("standard deviation: %v", err)
		}
	}

	q := Percentiles(values, 0.25, 0.5, 0.75)
	skew, kurt := shape(values)

	return Description{
		Count:    n,
		Min:      minV,
		Q25:      q[0],
		Median:   q[1],
		Q75:      q[2],
		Max:      maxV,
		Mean:     mean,
		StdDev:   std,
		Skewness: skew,
		Kurtosis: kurt,
	}, nil
}

// Describe computes the descriptive summary of the sample.
func (s *Sample) Describe() (Description, error) {
	return Describe(s.Values)
}

// Round returns a copy of d with every float field rounded to places
// decimal places.
func (d Description) Round(places int) Description {
	p := math.Pow(10, float64(places))
	r := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return v
		}
		return math.Round(v*p) / p
	}
	return Description{
		Count:    d.Count,
		Min:      r(d.Min),
		Q25:      r(d.Q25),
		Median:   r(d.Median),
		Q75:      r(d.Q75),
		Max:      r(d.Max),
		Mean:     r(d.Mean),
		StdDev:   r(d.StdDev),
		Skewness: r(d.Skewness),
		Kurtosis: r(d.Kurtosis),
	}
}

// shape returns the biased skewness and excess kurtosis of values, both NaN
// when the values have no spread.
func shape(values []float64) (skewness, kurtosis float64) {
	m2 := stat.Moment(2, values, nil)
	if m2 == 0 {
		return math.NaN(), math.NaN()
	}
	m3 := stat.Moment(3, values, nil)
	m4 := stat.Moment(4, values, nil)
	return m3 / math.Pow(m2, 1.5), m4/(m2*m2) - 3
}

// Shape returns the biased skewness and excess kurtosis of values.
func Shape(values []float64) (skewness, kurtosis float64, err error) {
	if len(values) == 0 {
		return 0, 0, invalidInput("cannot compute moments of an empty sample")
	}
	skewness, kurtosis = shape(values)
	if math.IsNaN(skewness) {
		return 0, 0, degenerateData("sample has zero variance")
	}
	return skewness, kurtosis, nil
}

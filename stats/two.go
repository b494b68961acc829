package stats

import (
	"math"
	"sort"

	mstats "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/statshypo/sample"
)

// TwoSampleTTest compares the means of two independent samples. With
// equalVariance it is Student's pooled test, otherwise Welch's test.
func TwoSampleTTest(x, y []float64, equalVariance bool, alt Alternative) (*Result, error) {
	name := "Welch's T-test for Two Independent Samples"
	if equalVariance {
		name = "Student's T-test for Two Independent Samples"
	}
	if err := checkFinite("first sample", x); err != nil {
		return nil, err
	}
	if err := checkFinite("second sample", y); err != nil {
		return nil, err
	}

	var (
		res *mstats.TTestResult
		err error
	)
	if equalVariance {
		res, err = mstats.TwoSampleTTest(mstats.Sample{Xs: x}, mstats.Sample{Xs: y}, alt.location())
	} else {
		res, err = mstats.TwoSampleWelchTTest(mstats.Sample{Xs: x}, mstats.Sample{Xs: y}, alt.location())
	}
	if err != nil {
		return nil, convertErr(name, err)
	}

	return &Result{
		Test:        name,
		Statistic:   res.T,
		PValue:      res.P,
		DF:          res.DoF,
		N:           len(x) + len(y),
		Alternative: alt,
	}, nil
}

// PairedTTest tests whether the mean difference x[i]-y[i] is zero.
func PairedTTest(x, y []float64, alt Alternative) (*Result, error) {
	const name = "T-test for Two Dependent Samples"
	if len(x) != len(y) {
		return nil, invalid("paired samples differ in length: %d and %d", len(x), len(y))
	}
	if err := checkFinite("first sample", x); err != nil {
		return nil, err
	}
	if err := checkFinite("second sample", y); err != nil {
		return nil, err
	}

	res, err := mstats.PairedTTest(x, y, 0, alt.location())
	if err != nil {
		return nil, convertErr(name, err)
	}

	return &Result{
		Test:        name,
		Statistic:   res.T,
		PValue:      res.P,
		DF:          res.DoF,
		N:           len(x),
		Alternative: alt,
	}, nil
}

// MannWhitneyU tests whether two independent samples come from populations
// with the same location. The statistic is U for the first sample.
func MannWhitneyU(x, y []float64, alt Alternative) (*Result, error) {
	const name = "Mann-Whitney U Test"
	if err := checkFinite("first sample", x); err != nil {
		return nil, err
	}
	if err := checkFinite("second sample", y); err != nil {
		return nil, err
	}

	res, err := mstats.MannWhitneyUTest(x, y, alt.location())
	if err != nil {
		return nil, convertErr(name, err)
	}

	return &Result{
		Test:        name,
		Statistic:   res.U,
		PValue:      res.P,
		N:           len(x) + len(y),
		Alternative: alt,
	}, nil
}

// WilcoxonSignedRank tests whether the differences x[i]-y[i] are symmetric
// about zero. Zero differences are dropped; the statistic is the rank sum
// of the positive differences, and the p-value uses the normal
// approximation with a tie correction.
func WilcoxonSignedRank(x, y []float64, alt Alternative) (*Result, error) {
	if len(x) != len(y) {
		return nil, invalid("paired samples differ in length: %d and %d", len(x), len(y))
	}
	if err := checkFinite("first sample", x); err != nil {
		return nil, err
	}
	if err := checkFinite("second sample", y); err != nil {
		return nil, err
	}

	var diffs, abs []float64
	for i := range x {
		if d := x[i] - y[i]; d != 0 {
			diffs = append(diffs, d)
			abs = append(abs, math.Abs(d))
		}
	}
	n := float64(len(diffs))
	if n == 0 {
		return nil, degenerate("every paired difference is zero")
	}

	rPlus := 0.0
	for i, r := range sample.Ranks(abs) {
		if diffs[i] > 0 {
			rPlus += r
		}
	}
	mean := n * (n + 1) / 4
	variance := n*(n+1)*(2*n+1)/24 - tieSum(abs)/48
	if !(variance > 0) {
		return nil, degenerate("signed-rank variance is zero")
	}
	z := (rPlus - mean) / math.Sqrt(variance)

	return &Result{
		Test:        "Wilcoxon Signed-Rank Test",
		Statistic:   rPlus,
		PValue:      normalP(z, alt),
		N:           len(x),
		Alternative: alt,
	}, nil
}

// KolmogorovSmirnov tests whether two independent samples come from the
// same continuous distribution. The statistic is the largest distance
// between the empirical CDFs; the p-value is the asymptotic Kolmogorov
// distribution with Stephens' small-sample adjustment.
func KolmogorovSmirnov(x, y []float64) (*Result, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, invalid("Kolmogorov-Smirnov test needs two non-empty samples, got %d and %d", len(x), len(y))
	}
	if err := checkFinite("first sample", x); err != nil {
		return nil, err
	}
	if err := checkFinite("second sample", y); err != nil {
		return nil, err
	}

	xs := append([]float64(nil), x...)
	ys := append([]float64(nil), y...)
	sort.Float64s(xs)
	sort.Float64s(ys)
	d := stat.KolmogorovSmirnov(xs, nil, ys, nil)

	n, m := float64(len(xs)), float64(len(ys))
	en := math.Sqrt(n * m / (n + m))

	return &Result{
		Test:        "Kolmogorov-Smirnov Two-Sample Test",
		Statistic:   d,
		PValue:      kolmogorovSurvival((en + 0.12 + 0.11/en) * d),
		N:           len(xs) + len(ys),
		Alternative: TwoSided,
	}, nil
}

// kolmogorovSurvival is P(K > lambda) for the Kolmogorov distribution. The
// alternating series is cut once its terms stop contributing; when it does
// not settle the p-value is 1.
func kolmogorovSurvival(lambda float64) float64 {
	a2 := -2 * lambda * lambda
	fac, sum, prev := 2.0, 0.0, 0.0
	for j := 1; j <= 100; j++ {
		term := fac * math.Exp(a2*float64(j*j))
		sum += term
		if math.Abs(term) <= 0.001*prev || math.Abs(term) <= 1e-8*sum {
			return math.Max(0, math.Min(1, sum))
		}
		fac = -fac
		prev = math.Abs(term)
	}
	return 1
}

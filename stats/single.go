package stats

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// ZTest tests whether x comes from a normal population with mean mu and
// known standard deviation sigma.
func ZTest(x []float64, mu, sigma float64, alt Alternative) (*Result, error) {
	n := len(x)
	if n == 0 {
		return nil, invalid("z-test needs at least one observation")
	}
	if !(sigma > 0) {
		return nil, invalid("population standard deviation %v must be positive", sigma)
	}
	if err := checkFinite("sample", x); err != nil {
		return nil, err
	}

	z := (stat.Mean(x, nil) - mu) / (sigma / math.Sqrt(float64(n)))

	return &Result{
		Test:        "Single-Sample Z-test",
		Statistic:   z,
		PValue:      normalP(z, alt),
		N:           n,
		Alternative: alt,
	}, nil
}

// OneSampleTTest tests whether the mean of x equals mu when the population
// standard deviation is unknown.
func OneSampleTTest(x []float64, mu float64, alt Alternative) (*Result, error) {
	const name = "Single-Sample T-test"
	if err := checkFinite("sample", x); err != nil {
		return nil, err
	}

	res, err := mstats.OneSampleTTest(mstats.Sample{Xs: x}, mu, alt.location())
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

// VarianceTest is the chi-square test that x comes from a normal population
// with standard deviation sigma. The statistic is (n-1)s^2/sigma^2 with n-1
// degrees of freedom.
func VarianceTest(x []float64, sigma float64, alt Alternative) (*Result, error) {
	n := len(x)
	if n < 2 {
		return nil, invalid("variance test needs at least 2 observations, got %d", n)
	}
	if !(sigma > 0) {
		return nil, invalid("population standard deviation %v must be positive", sigma)
	}
	if err := checkFinite("sample", x); err != nil {
		return nil, err
	}

	df := float64(n - 1)
	chi := df * stat.Variance(x, nil) / (sigma * sigma)

	return &Result{
		Test:        "Single-Sample Chi-Square Test for a Population Variance",
		Statistic:   chi,
		PValue:      chiSquaredP(chi, df, alt),
		DF:          df,
		N:           n,
		Alternative: alt,
	}, nil
}

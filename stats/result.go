package stats

import (
	"errors"
	"fmt"
	"math"

	mstats "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/statshypo/sample"
)

// Alternative is the alternative hypothesis of a test.
type Alternative int

const (
	// TwoSided: the parameter differs from its null value.
	TwoSided Alternative = iota
	// Less: the parameter is below its null value.
	Less
	// Greater: the parameter is above its null value.
	Greater
)

// ParseAlternative converts "two-sided", "less" or "greater".
func ParseAlternative(s string) (Alternative, error) {
	switch s {
	case "two-sided", "":
		return TwoSided, nil
	case "less":
		return Less, nil
	case "greater":
		return Greater, nil
	}
	return TwoSided, fmt.Errorf("%w: unrecognised alternative %q", sample.ErrInvalidInput, s)
}

func (a Alternative) String() string {
	switch a {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "two-sided"
	}
}

func (a Alternative) location() mstats.LocationHypothesis {
	switch a {
	case Less:
		return mstats.LocationLess
	case Greater:
		return mstats.LocationGreater
	default:
		return mstats.LocationDiffers
	}
}

// Result represents the outcome of a hypothesis test.
type Result struct {
	Test        string
	Statistic   float64
	PValue      float64
	DF          float64 // degrees of freedom, 0 when the test has none
	DF2         float64 // denominator degrees of freedom of F tests
	N           int     // observations (pairs for paired tests)
	Alternative Alternative
}

// Reject reports whether the null hypothesis is rejected at level alpha.
func (r *Result) Reject(alpha float64) bool {
	return r.PValue <= alpha
}

// BootstrapResult represents a test whose p-value comes from a bootstrap
// distribution of the statistic.
type BootstrapResult struct {
	Test       string
	Statistic  float64 // statistic on the full data
	Cutoff     float64
	PValue     float64
	Iterations int // resamples in the distribution
	Dropped    int // resamples left out because the statistic was undefined
}

// Reject reports whether the null hypothesis is rejected at level alpha.
func (r *BootstrapResult) Reject(alpha float64) bool {
	return r.PValue <= alpha
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", sample.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func degenerate(format string, args ...any) error {
	return fmt.Errorf("%w: %s", sample.ErrDegenerateData, fmt.Sprintf(format, args...))
}

// convertErr maps go-moremath errors onto this module's error kinds.
func convertErr(test string, err error) error {
	switch {
	case errors.Is(err, mstats.ErrZeroVariance), errors.Is(err, mstats.ErrSamplesEqual):
		return fmt.Errorf("%s: %w: %v", test, sample.ErrDegenerateData, err)
	case errors.Is(err, mstats.ErrSampleSize), errors.Is(err, mstats.ErrMismatchedSamples):
		return fmt.Errorf("%s: %w: %v", test, sample.ErrInvalidInput, err)
	}
	return fmt.Errorf("%s: %w", test, err)
}

func checkFinite(name string, xs []float64) error {
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid("%s contains non-finite value %v", name, v)
		}
	}
	return nil
}

// normalP converts a standard normal statistic into a p-value.
func normalP(z float64, alt Alternative) float64 {
	switch alt {
	case Less:
		return distuv.UnitNormal.CDF(z)
	case Greater:
		return distuv.UnitNormal.Survival(z)
	default:
		return math.Min(1, 2*distuv.UnitNormal.Survival(math.Abs(z)))
	}
}

// studentP converts a Student t statistic with df degrees of freedom into
// a p-value.
func studentP(t, df float64, alt Alternative) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	switch alt {
	case Less:
		return dist.CDF(t)
	case Greater:
		return dist.Survival(t)
	default:
		return math.Min(1, 2*dist.Survival(math.Abs(t)))
	}
}

// chiSquaredP converts a chi-squared statistic into a p-value. The
// two-sided value doubles the smaller tail.
func chiSquaredP(x, df float64, alt Alternative) float64 {
	dist := distuv.ChiSquared{K: df}
	switch alt {
	case Less:
		return dist.CDF(x)
	case Greater:
		return dist.Survival(x)
	default:
		return math.Min(1, 2*math.Min(dist.CDF(x), dist.Survival(x)))
	}
}

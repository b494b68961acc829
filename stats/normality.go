package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/statshypo/sample"
)

// SkewTest tests whether the population skewness is that of a normal
// distribution (D'Agostino's transformation of the sample skewness).
// At least 8 observations are required.
func SkewTest(x []float64) (*Result, error) {
	n := len(x)
	if n < 8 {
		return nil, invalid("skew test needs at least 8 observations, got %d", n)
	}
	if err := checkFinite("sample", x); err != nil {
		return nil, err
	}
	b1, _, err := sample.Shape(x)
	if err != nil {
		return nil, err
	}

	z := skewZ(b1, float64(n))
	return &Result{
		Test:      "Single-Sample Test for Evaluating Population Skewness",
		Statistic: z,
		PValue:    normalP(z, TwoSided),
		N:         n,
	}, nil
}

func skewZ(b1, n float64) float64 {
	y := b1 * math.Sqrt((n+1)*(n+3)/(6*(n-2)))
	beta2 := 3 * (n*n + 27*n - 70) * (n + 1) * (n + 3) /
		((n - 2) * (n + 5) * (n + 7) * (n + 9))
	w2 := -1 + math.Sqrt(2*(beta2-1))
	delta := 1 / math.Sqrt(0.5*math.Log(w2))
	alpha := math.Sqrt(2 / (w2 - 1))
	ya := y / alpha
	return delta * math.Log(ya+math.Sqrt(ya*ya+1))
}

// KurtosisTest tests whether the population kurtosis is that of a normal
// distribution (Anscombe-Glynn transformation). At least 5 observations
// are required.
func KurtosisTest(x []float64) (*Result, error) {
	n := len(x)
	if n < 5 {
		return nil, invalid("kurtosis test needs at least 5 observations, got %d", n)
	}
	if err := checkFinite("sample", x); err != nil {
		return nil, err
	}
	_, g2, err := sample.Shape(x)
	if err != nil {
		return nil, err
	}

	z := kurtosisZ(g2+3, float64(n))
	if math.IsNaN(z) {
		return nil, degenerate("kurtosis transformation undefined for this sample")
	}
	return &Result{
		Test:      "Single-Sample Test for Evaluating Population Kurtosis",
		Statistic: z,
		PValue:    normalP(z, TwoSided),
		N:         n,
	}, nil
}

// kurtosisZ takes the non-excess kurtosis b2.
func kurtosisZ(b2, n float64) float64 {
	e := 3 * (n - 1) / (n + 1)
	varb2 := 24 * n * (n - 2) * (n - 3) / ((n + 1) * (n + 1) * (n + 3) * (n + 5))
	x := (b2 - e) / math.Sqrt(varb2)
	sqrtbeta1 := 6 * (n*n - 5*n + 2) / ((n + 7) * (n + 9)) *
		math.Sqrt(6*(n+3)*(n+5)/(n*(n-2)*(n-3)))
	a := 6 + 8/sqrtbeta1*(2/sqrtbeta1+math.Sqrt(1+4/(sqrtbeta1*sqrtbeta1)))
	term1 := 1 - 2/(9*a)
	denom := 1 + x*math.Sqrt(2/(a-4))
	if denom == 0 {
		return math.NaN()
	}
	term2 := math.Copysign(math.Cbrt((1-2/a)/math.Abs(denom)), denom)
	return (term1 - term2) / math.Sqrt(2/(9*a))
}

// NormalTest is the D'Agostino-Pearson omnibus test of normality. The
// statistic is the sum of the squared skewness and kurtosis z-scores and is
// referred to a chi-squared distribution with 2 degrees of freedom.
func NormalTest(x []float64) (*Result, error) {
	n := len(x)
	if n < 8 {
		return nil, invalid("normality test needs at least 8 observations, got %d", n)
	}
	if err := checkFinite("sample", x); err != nil {
		return nil, err
	}
	b1, g2, err := sample.Shape(x)
	if err != nil {
		return nil, err
	}

	zs := skewZ(b1, float64(n))
	zk := kurtosisZ(g2+3, float64(n))
	if math.IsNaN(zk) {
		return nil, degenerate("kurtosis transformation undefined for this sample")
	}
	k2 := zs*zs + zk*zk

	return &Result{
		Test:      "D'Agostino-Pearson Test of Normality",
		Statistic: k2,
		PValue:    distuv.ChiSquared{K: 2}.Survival(k2),
		DF:        2,
		N:         n,
	}, nil
}

// JarqueBera tests normality from the sample skewness S and excess
// kurtosis K: JB = n/6 (S^2 + K^2/4), chi-squared with 2 degrees of freedom.
func JarqueBera(x []float64) (*Result, error) {
	n := len(x)
	if n < 2 {
		return nil, invalid("Jarque-Bera test needs at least 2 observations, got %d", n)
	}
	if err := checkFinite("sample", x); err != nil {
		return nil, err
	}
	s, k, err := sample.Shape(x)
	if err != nil {
		return nil, err
	}

	jb := float64(n) / 6 * (s*s + k*k/4)
	return &Result{
		Test:      "Jarque-Bera Goodness of Fit Test",
		Statistic: jb,
		PValue:    distuv.ChiSquared{K: 2}.Survival(jb),
		DF:        2,
		N:         n,
	}, nil
}

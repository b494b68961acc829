package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/statshypo/sample"
)

// StationarityResult represents the outcome of a unit root or stationarity
// test.
type StationarityResult struct {
	Test         string
	Statistic    float64
	PValue       float64
	Lags         int
	NObs         int
	CriticalVals map[string]float64 // keyed "1%", "5%", "10%"

	// nullStationary is true when the null hypothesis is stationarity (KPSS).
	nullStationary bool
}

// IsStationary interprets the p-value at level alpha. The null hypothesis
// is rejected when p <= alpha, as in Result.Reject.
func (r *StationarityResult) IsStationary(alpha float64) bool {
	reject := r.PValue <= alpha
	if r.nullStationary {
		return !reject
	}
	return reject
}

// ADF performs the augmented Dickey-Fuller test with a constant term.
// The null hypothesis is that s has a unit root. A non-positive maxLag
// selects floor((n-1)^(1/3)).
func ADF(s *sample.Sample, maxLag int) (*StationarityResult, error) {
	n := s.Len()
	if n < 10 {
		return nil, invalid("ADF test needs at least 10 observations, got %d", n)
	}
	if err := checkFinite(s.Name, s.Values); err != nil {
		return nil, err
	}

	if maxLag <= 0 {
		maxLag = int(math.Floor(math.Pow(float64(n-1), 1.0/3.0)))
	}
	if maxLag >= n-1 {
		maxLag = n - 2
	}
	nObs := n - maxLag - 1
	if nObs < 10 {
		return nil, invalid("ADF test with %d lags leaves %d observations", maxLag, nObs)
	}

	diff := s.Diff().Values

	// delta y_t = a + b y_{t-1} + sum_j g_j delta y_{t-j}
	k := 2 + maxLag
	x := mat.NewDense(nObs, k, nil)
	y := mat.NewVecDense(nObs, nil)
	for i := 0; i < nObs; i++ {
		t := i + maxLag
		y.SetVec(i, diff[t])
		x.Set(i, 0, 1)
		x.Set(i, 1, s.Values[t])
		for j := 1; j <= maxLag; j++ {
			x.Set(i, 1+j, diff[t-j])
		}
	}

	coeffs, se, err := ols(x, y)
	if err != nil {
		return nil, err
	}
	tStat := coeffs[1] / se[1]

	return &StationarityResult{
		Test:      "Augmented Dickey-Fuller Test",
		Statistic: tStat,
		PValue:    adfPValue(tStat),
		Lags:      maxLag,
		NObs:      nObs,
		CriticalVals: map[string]float64{
			"1%":  -3.43,
			"5%":  -2.86,
			"10%": -2.57,
		},
	}, nil
}

// KPSS performs the Kwiatkowski-Phillips-Schmidt-Shin test. The null
// hypothesis is level stationarity for regression "c" and trend
// stationarity for "ct". A non-positive nlags selects
// ceil(12 (n/100)^(1/4)).
func KPSS(s *sample.Sample, regression string, nlags int) (*StationarityResult, error) {
	n := s.Len()
	if n < 10 {
		return nil, invalid("KPSS test needs at least 10 observations, got %d", n)
	}
	if regression != "c" && regression != "ct" {
		return nil, invalid("unrecognised KPSS regression %q", regression)
	}
	if err := checkFinite(s.Name, s.Values); err != nil {
		return nil, err
	}
	if nlags <= 0 {
		nlags = int(math.Ceil(12 * math.Pow(float64(n)/100, 0.25)))
	}
	if nlags >= n {
		nlags = n - 1
	}

	residuals := make([]float64, n)
	if regression == "ct" {
		ts := make([]float64, n)
		for i := range ts {
			ts[i] = float64(i)
		}
		a, b := stat.LinearRegression(ts, s.Values, nil, false)
		for i, v := range s.Values {
			residuals[i] = v - a - b*ts[i]
		}
	} else {
		mean := s.Mean()
		for i, v := range s.Values {
			residuals[i] = v - mean
		}
	}

	ssr := floats.Dot(residuals, residuals)
	if ssr <= 1e-20*float64(n)*stat.Variance(s.Values, nil) {
		return nil, degenerate("series is fully explained by its deterministic terms")
	}

	// Newey-West long-run variance with Bartlett weights.
	s2 := ssr / float64(n)
	for l := 1; l <= nlags; l++ {
		cov := 0.0
		for i := l; i < n; i++ {
			cov += residuals[i] * residuals[i-l]
		}
		cov /= float64(n)
		s2 += 2 * (1 - float64(l)/float64(nlags+1)) * cov
	}
	if !(s2 > 0) {
		return nil, degenerate("long-run variance is not positive")
	}

	eta, cum := 0.0, 0.0
	for _, r := range residuals {
		cum += r
		eta += cum * cum
	}
	kpssStat := eta / (float64(n) * float64(n) * s2)

	crit := kpssLevelCrit
	if regression == "ct" {
		crit = kpssTrendCrit
	}

	return &StationarityResult{
		Test:      "KPSS Test",
		Statistic: kpssStat,
		PValue:    kpssPValue(kpssStat, crit),
		Lags:      nlags,
		NObs:      n,
		CriticalVals: map[string]float64{
			"10%": crit[0],
			"5%":  crit[1],
			"1%":  crit[3],
		},
		nullStationary: true,
	}, nil
}

// PhillipsPerron performs the Phillips-Perron unit root test with a
// constant term. It fits delta y_t = a + b y_{t-1} without lagged
// differences and corrects the t statistic of b for serial correlation
// with a Newey-West long-run variance. A non-positive nlags selects
// floor(4 (n/100)^(1/4)).
func PhillipsPerron(s *sample.Sample, nlags int) (*StationarityResult, error) {
	n := s.Len()
	if n < 10 {
		return nil, invalid("Phillips-Perron test needs at least 10 observations, got %d", n)
	}
	if err := checkFinite(s.Name, s.Values); err != nil {
		return nil, err
	}

	nObs := n - 1
	if nlags <= 0 {
		nlags = int(math.Floor(4 * math.Pow(float64(n)/100, 0.25)))
	}
	if nlags >= nObs {
		nlags = nObs - 1
	}

	diff := s.Diff().Values
	x := mat.NewDense(nObs, 2, nil)
	y := mat.NewVecDense(nObs, diff)
	lagged := s.Values[:nObs]
	for i, v := range lagged {
		x.Set(i, 0, 1)
		x.Set(i, 1, v)
	}

	coeffs, se, err := ols(x, y)
	if err != nil {
		return nil, err
	}
	tStat := coeffs[1] / se[1]

	residuals := make([]float64, nObs)
	for i := range residuals {
		residuals[i] = diff[i] - coeffs[0] - coeffs[1]*lagged[i]
	}
	gamma0 := floats.Dot(residuals, residuals) / float64(nObs)
	s2 := gamma0 * float64(nObs) / float64(nObs-2)

	lambda2 := gamma0
	for l := 1; l <= nlags; l++ {
		cov := 0.0
		for i := l; i < nObs; i++ {
			cov += residuals[i] * residuals[i-l]
		}
		lambda2 += 2 * (1 - float64(l)/float64(nlags+1)) * cov / float64(nObs)
	}
	if !(lambda2 > 0) {
		return nil, degenerate("long-run variance is not positive")
	}

	// Z_t = sqrt(g0/l2) t - (l2-g0)/(2 sqrt(l2)) * T se(b)/s
	lambda := math.Sqrt(lambda2)
	zt := math.Sqrt(gamma0/lambda2)*tStat -
		(lambda2-gamma0)/(2*lambda)*float64(nObs)*se[1]/math.Sqrt(s2)

	return &StationarityResult{
		Test:      "Phillips-Perron Test",
		Statistic: zt,
		PValue:    adfPValue(zt),
		Lags:      nlags,
		NObs:      nObs,
		CriticalVals: map[string]float64{
			"1%":  -3.43,
			"5%":  -2.86,
			"10%": -2.57,
		},
	}, nil
}

// ols returns the least squares coefficients of y on x and their standard
// errors.
func ols(x *mat.Dense, y *mat.VecDense) (coeffs, stdErrors []float64, err error) {
	n, k := x.Dims()
	if n <= k {
		return nil, nil, invalid("regression with %d observations and %d regressors", n, k)
	}

	var xtx, inv mat.Dense
	xtx.Mul(x.T(), x)
	if err := inv.Inverse(&xtx); err != nil {
		return nil, nil, degenerate("regressors are collinear: %v", err)
	}

	var xty, beta, resid mat.VecDense
	xty.MulVec(x.T(), y)
	beta.MulVec(&inv, &xty)
	resid.MulVec(x, &beta)
	resid.SubVec(y, &resid)

	s2 := mat.Dot(&resid, &resid) / float64(n-k)
	coeffs = make([]float64, k)
	stdErrors = make([]float64, k)
	for i := 0; i < k; i++ {
		coeffs[i] = beta.AtVec(i)
		stdErrors[i] = math.Sqrt(s2 * inv.At(i, i))
	}
	if stdErrors[1] == 0 {
		return nil, nil, degenerate("regression fits exactly")
	}
	return coeffs, stdErrors, nil
}

// adfTable maps ADF statistics (constant, no trend) to p-values, following
// MacKinnon's asymptotic critical values.
var adfTable = struct{ stat, p []float64 }{
	stat: []float64{-3.96, -3.43, -2.86, -2.57, -1.94, -1.62, 0.34},
	p:    []float64{0.001, 0.01, 0.05, 0.10, 0.25, 0.50, 0.99},
}

func adfPValue(t float64) float64 {
	return interpolate(adfTable.stat, adfTable.p, t)
}

// KPSS critical values at 10%, 5%, 2.5% and 1%.
var (
	kpssLevelCrit = []float64{0.347, 0.463, 0.574, 0.739}
	kpssTrendCrit = []float64{0.119, 0.146, 0.176, 0.216}
	kpssLevels    = []float64{0.10, 0.05, 0.025, 0.01}
)

// kpssPValue interpolates within the critical value table. Values outside
// it are clamped to [0.01, 0.10].
func kpssPValue(stat float64, crit []float64) float64 {
	return interpolate(crit, kpssLevels, stat)
}

// interpolate is piecewise linear in xs, clamped to the end values.
func interpolate(xs, ys []float64, x float64) float64 {
	switch {
	case x <= xs[0]:
		return ys[0]
	case x >= xs[len(xs)-1]:
		return ys[len(ys)-1]
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return math.NaN()
	}
	return pl.Predict(x)
}

package stats

import (
	"math"

	"github.com/sartorproj/statshypo/sample"
)

// ACF returns the sample autocorrelations of s for lags 0 to maxLag.
// maxLag is capped at Len()-1.
func ACF(s *sample.Sample, maxLag int) ([]float64, error) {
	n := s.Len()
	if n < 2 {
		return nil, invalid("autocorrelation needs at least 2 observations, got %d", n)
	}
	if maxLag < 0 {
		return nil, invalid("negative lag %d", maxLag)
	}
	if maxLag >= n {
		maxLag = n - 1
	}
	if err := checkFinite(s.Name, s.Values); err != nil {
		return nil, err
	}

	mean := s.Mean()
	dev := make([]float64, n)
	denom := 0.0
	for i, v := range s.Values {
		dev[i] = v - mean
		denom += dev[i] * dev[i]
	}
	if denom == 0 {
		return nil, degenerate("autocorrelation undefined for a constant sample")
	}

	acf := make([]float64, maxLag+1)
	for k := range acf {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += dev[i] * dev[i-k]
		}
		acf[k] = sum / denom
	}
	return acf, nil
}

// ACFResult holds autocorrelations with their approximate 95% bounds
// (1.96/sqrt(n)).
type ACFResult struct {
	Values     []float64
	ConfBounds float64
}

// Significant returns the lags above zero whose autocorrelation exceeds the
// bounds.
func (r *ACFResult) Significant() []int {
	var lags []int
	for k := 1; k < len(r.Values); k++ {
		if math.Abs(r.Values[k]) > r.ConfBounds {
			lags = append(lags, k)
		}
	}
	return lags
}

// ACFWithConfidence is ACF plus the white-noise confidence bounds.
func ACFWithConfidence(s *sample.Sample, maxLag int) (*ACFResult, error) {
	acf, err := ACF(s, maxLag)
	if err != nil {
		return nil, err
	}
	return &ACFResult{
		Values:     acf,
		ConfBounds: 1.96 / math.Sqrt(float64(s.Len())),
	}, nil
}

// PACF returns the partial autocorrelations of s for lags 0 to maxLag using
// the Durbin-Levinson recursion. The value at lag 0 is 1.
func PACF(s *sample.Sample, maxLag int) ([]float64, error) {
	if maxLag < 1 {
		return nil, invalid("partial autocorrelation needs a lag of at least 1, got %d", maxLag)
	}
	acf, err := ACF(s, maxLag)
	if err != nil {
		return nil, err
	}
	maxLag = len(acf) - 1

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1

	// phi[j] holds the order k-1 coefficients while order k is computed
	phi := make([]float64, maxLag+1)
	next := make([]float64, maxLag+1)
	phi[1] = acf[1]
	pacf[1] = acf[1]

	for k := 2; k <= maxLag; k++ {
		num, den := acf[k], 1.0
		for j := 1; j < k; j++ {
			num -= phi[j] * acf[k-j]
			den -= phi[j] * acf[j]
		}
		if den == 0 {
			return nil, degenerate("partial autocorrelation undefined at lag %d", k)
		}

		next[k] = num / den
		for j := 1; j < k; j++ {
			next[j] = phi[j] - next[k]*phi[k-j]
		}
		copy(phi, next)
		pacf[k] = next[k]
	}
	return pacf, nil
}

// PACFWithConfidence is PACF plus the white-noise confidence bounds.
func PACFWithConfidence(s *sample.Sample, maxLag int) (*ACFResult, error) {
	pacf, err := PACF(s, maxLag)
	if err != nil {
		return nil, err
	}
	return &ACFResult{
		Values:     pacf,
		ConfBounds: 1.96 / math.Sqrt(float64(s.Len())),
	}, nil
}

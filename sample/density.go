package sample

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// DefaultCovarianceFactor is the bandwidth multiplier used when the caller
// has no preference.
const DefaultCovarianceFactor = 0.25

// Density is a Gaussian kernel density estimate with a fixed bandwidth.
type Density struct {
	kde mstats.KDE
}

// NewDensity builds a Gaussian KDE over values. The kernel standard
// deviation is covarianceFactor times the sample standard deviation; the
// factor is used as given, never estimated from the data.
func NewDensity(values []float64, covarianceFactor float64) (*Density, error) {
	if len(values) == 0 {
		return nil, invalidInput("cannot estimate density of an empty sample")
	}
	if !(covarianceFactor > 0) || math.IsInf(covarianceFactor, 1) {
		return nil, invalidInput("covariance factor %v must be positive", covarianceFactor)
	}
	if err := checkFinite("sample", values); err != nil {
		return nil, err
	}
	if distinct(values, 2) < 2 {
		return nil, degenerateData("density needs at least 2 distinct points")
	}

	xs := append([]float64(nil), values...)
	return &Density{
		kde: mstats.KDE{
			Sample:    mstats.Sample{Xs: xs},
			Kernel:    mstats.GaussianKernel,
			Bandwidth: covarianceFactor * stat.StdDev(xs, nil),
		},
	}, nil
}

// At returns the estimated probability density at x.
func (d *Density) At(x float64) float64 {
	return d.kde.PDF(x)
}

// Evaluate returns the density at each point of xs.
func (d *Density) Evaluate(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = d.At(x)
	}
	return out
}

// Bandwidth returns the kernel standard deviation.
func (d *Density) Bandwidth() float64 {
	return d.kde.Bandwidth
}

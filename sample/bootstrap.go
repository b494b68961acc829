package sample

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultSampleRatio is the fraction of the original sample drawn by
	// each bootstrap resample.
	DefaultSampleRatio = 0.8

	// DefaultIterations is the number of resamples used to build a
	// statistic distribution.
	DefaultIterations = 10000
)

var (
	globalMu  sync.Mutex
	globalRNG = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Bootstrap draws floor(ratio*len(values)) values uniformly at random with
// replacement. A nil rng uses a package source that is seeded once at
// start-up and shared by all such calls.
func Bootstrap(values []float64, ratio float64, rng *rand.Rand) ([]float64, error) {
	size, err := drawSize(len(values), ratio)
	if err != nil {
		return nil, err
	}

	if rng == nil {
		globalMu.Lock()
		defer globalMu.Unlock()
		rng = globalRNG
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = values[rng.Intn(len(values))]
	}
	return out, nil
}

func drawSize(n int, ratio float64) (int, error) {
	if n == 0 {
		return 0, invalidInput("cannot resample an empty sample")
	}
	if !(ratio > 0 && ratio <= 1) {
		return 0, invalidInput("sample ratio %v outside (0,1]", ratio)
	}
	size := int(ratio * float64(n))
	if size == 0 {
		return 0, invalidInput("sample ratio %v of %d values draws nothing", ratio, n)
	}
	return size, nil
}

// BootstrapConfig controls a Resampler.
type BootstrapConfig struct {
	Iterations int     // number of resamples per distribution
	Ratio      float64 // fraction of the sample drawn per resample
	Seed       int64   // 0 seeds from the clock
}

// DefaultBootstrapConfig returns 10000 iterations at ratio 0.8, clock seeded.
func DefaultBootstrapConfig() BootstrapConfig {
	return BootstrapConfig{
		Iterations: DefaultIterations,
		Ratio:      DefaultSampleRatio,
	}
}

// Validate checks the iteration count and ratio.
func (c BootstrapConfig) Validate() error {
	if c.Iterations <= 0 {
		return invalidInput("bootstrap iterations %d must be positive", c.Iterations)
	}
	if !(c.Ratio > 0 && c.Ratio <= 1) {
		return invalidInput("sample ratio %v outside (0,1]", c.Ratio)
	}
	return nil
}

// Statistic reduces a sample to a single number.
type Statistic func(values []float64) float64

// PairedStatistic reduces two aligned samples to a single number.
type PairedStatistic func(x, y []float64) float64

// MeanStatistic is the arithmetic mean.
func MeanStatistic(values []float64) float64 { return stat.Mean(values, nil) }

// MedianStatistic is the interpolated median.
func MedianStatistic(values []float64) float64 { return Quantile(sortedCopy(values), 0.5) }

// StdStatistic is the sample standard deviation.
func StdStatistic(values []float64) float64 { return stat.StdDev(values, nil) }

// Resampler builds bootstrap distributions from a single random source that
// lives as long as the Resampler, so successive draws are independent.
// A Resampler is not safe for concurrent use.
type Resampler struct {
	cfg    BootstrapConfig
	rng    *rand.Rand
	logger *zap.Logger
}

// NewResampler validates cfg and seeds the random source.
func NewResampler(cfg BootstrapConfig, logger *zap.Logger) (*Resampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Resampler{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger.With(zap.String("component", "resampler")),
	}, nil
}

// Config returns the configuration the Resampler was built with.
func (r *Resampler) Config() BootstrapConfig {
	return r.cfg
}

// Resample performs one bootstrap draw.
func (r *Resampler) Resample(values []float64) ([]float64, error) {
	return Bootstrap(values, r.cfg.Ratio, r.rng)
}

// Distribution evaluates fn on Iterations bootstrap resamples of values.
// It fails with ErrDegenerateData as soon as fn is undefined on a draw, for
// instance the standard deviation of a single value.
func (r *Resampler) Distribution(values []float64, fn Statistic) ([]float64, error) {
	size, err := drawSize(len(values), r.cfg.Ratio)
	if err != nil {
		return nil, err
	}
	if err := checkFinite("sample", values); err != nil {
		return nil, err
	}

	dist := make([]float64, r.cfg.Iterations)
	buf := make([]float64, size)
	for i := range dist {
		for j := range buf {
			buf[j] = values[r.rng.Intn(len(values))]
		}
		v := fn(buf)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, degenerateData("statistic is %v on resample %d of size %d", v, i, size)
		}
		dist[i] = v
	}

	r.logger.Debug("bootstrap distribution built",
		zap.Int("iterations", r.cfg.Iterations),
		zap.Int("draw_size", size),
		zap.Int("sample_size", len(values)))
	return dist, nil
}

// Indices draws floor(ratio*n) indices into a sample of length n, uniformly
// with replacement. Callers resampling several aligned slices index each of
// them with the same draw.
func (r *Resampler) Indices(n int) ([]int, error) {
	size, err := drawSize(n, r.cfg.Ratio)
	if err != nil {
		return nil, err
	}
	idx := make([]int, size)
	for j := range idx {
		idx[j] = r.rng.Intn(n)
	}
	return idx, nil
}

// PairedDistribution resamples shared indices of x and y so that pairs stay
// aligned, and evaluates fn on each resampled pair. Like Distribution it
// fails with ErrDegenerateData when fn is undefined on a draw.
func (r *Resampler) PairedDistribution(x, y []float64, fn PairedStatistic) ([]float64, error) {
	if len(x) != len(y) {
		return nil, invalidInput("paired samples differ in length: %d and %d", len(x), len(y))
	}
	size, err := drawSize(len(x), r.cfg.Ratio)
	if err != nil {
		return nil, err
	}
	if err := checkFinite("first sample", x); err != nil {
		return nil, err
	}
	if err := checkFinite("second sample", y); err != nil {
		return nil, err
	}

	dist := make([]float64, r.cfg.Iterations)
	bx := make([]float64, size)
	by := make([]float64, size)
	for i := range dist {
		for j := 0; j < size; j++ {
			k := r.rng.Intn(len(x))
			bx[j], by[j] = x[k], y[k]
		}
		v := fn(bx, by)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, degenerateData("paired statistic is %v on resample %d of size %d", v, i, size)
		}
		dist[i] = v
	}

	r.logger.Debug("paired bootstrap distribution built",
		zap.Int("iterations", r.cfg.Iterations),
		zap.Int("draw_size", size),
		zap.Int("sample_size", len(x)))
	return dist, nil
}

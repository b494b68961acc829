package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/statshypo/sample"
)

// Pearson tests for a linear association between x and y. The statistic is
// the correlation coefficient r; the p-value uses t = r*sqrt((n-2)/(1-r^2))
// with n-2 degrees of freedom.
func Pearson(x, y []float64, alt Alternative) (*Result, error) {
	r, err := correlation(x, y)
	if err != nil {
		return nil, err
	}
	n := len(x)
	df := float64(n - 2)

	return &Result{
		Test:        "Pearson's Correlation Coefficient",
		Statistic:   r,
		PValue:      correlationP(r, df, alt),
		DF:          df,
		N:           n,
		Alternative: alt,
	}, nil
}

// Spearman is Pearson's test applied to the average ranks of x and y.
func Spearman(x, y []float64, alt Alternative) (*Result, error) {
	if err := checkPaired(x, y); err != nil {
		return nil, err
	}
	rho, err := correlation(sample.Ranks(x), sample.Ranks(y))
	if err != nil {
		return nil, err
	}
	n := len(x)
	df := float64(n - 2)

	return &Result{
		Test:        "Spearman's Rank Correlation Coefficient",
		Statistic:   rho,
		PValue:      correlationP(rho, df, alt),
		DF:          df,
		N:           n,
		Alternative: alt,
	}, nil
}

// KendallTau tests for a monotonic association between x and y with
// Kendall's tau-b. The p-value uses the normal approximation of the
// concordant minus discordant pair count, with its variance adjusted for
// ties in either sample.
func KendallTau(x, y []float64, alt Alternative) (*Result, error) {
	if err := checkPaired(x, y); err != nil {
		return nil, err
	}
	n := len(x)

	s := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s += sign(x[i]-x[j]) * sign(y[i]-y[j])
		}
	}

	nf := float64(n)
	total := nf * (nf - 1) / 2
	xt := kendallTies(x)
	yt := kendallTies(y)
	if xt.pairs == total || yt.pairs == total {
		return nil, degenerate("Kendall's tau undefined for a constant sample")
	}
	tau := s / math.Sqrt(total-xt.pairs) / math.Sqrt(total-yt.pairs)

	m := nf * (nf - 1)
	variance := (m*(2*nf+5)-xt.v1-yt.v1)/18 +
		2*xt.pairs*yt.pairs/m +
		xt.v0*yt.v0/(9*m*(nf-2))
	z := s / math.Sqrt(variance)

	return &Result{
		Test:        "Kendall's Tau Rank Correlation",
		Statistic:   tau,
		PValue:      normalP(z, alt),
		N:           n,
		Alternative: alt,
	}, nil
}

type tieTerms struct {
	pairs  float64 // sum t(t-1)/2
	v0, v1 float64 // sum t(t-1)(t-2) and sum t(t-1)(2t+5)
}

func kendallTies(values []float64) tieTerms {
	var tt tieTerms
	for _, t := range tieCounts(values) {
		tt.pairs += t * (t - 1) / 2
		tt.v0 += t * (t - 1) * (t - 2)
		tt.v1 += t * (t - 1) * (2*t + 5)
	}
	return tt
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// BootstrapPearson builds the paired bootstrap distribution of Pearson's r
// with rs and derives a one-tail empirical p-value at level alpha.
// Resamples in which either side is constant have no correlation; they are
// left out of the distribution and counted in Dropped. If every resample
// is constant the result is ErrDegenerateData.
func BootstrapPearson(x, y []float64, rs *sample.Resampler, alpha float64) (*BootstrapResult, error) {
	if rs == nil {
		return nil, invalid("nil resampler")
	}
	r, err := correlation(x, y)
	if err != nil {
		return nil, err
	}

	iterations := rs.Config().Iterations
	dist := make([]float64, 0, iterations)
	var bx, by []float64
	for i := 0; i < iterations; i++ {
		idx, err := rs.Indices(len(x))
		if err != nil {
			return nil, err
		}
		bx, by = bx[:0], by[:0]
		for _, k := range idx {
			bx = append(bx, x[k])
			by = append(by, y[k])
		}
		if stat.Variance(bx, nil) == 0 || stat.Variance(by, nil) == 0 {
			continue
		}
		dist = append(dist, stat.Correlation(bx, by, nil))
	}
	if len(dist) == 0 {
		return nil, degenerate("every bootstrap resample is constant")
	}

	cutoff, p, err := sample.EmpiricalPValue(dist, alpha, sample.OneTail)
	if err != nil {
		return nil, err
	}

	return &BootstrapResult{
		Test:       "Bootstrapped Pearson's Correlation Coefficient",
		Statistic:  r,
		Cutoff:     cutoff,
		PValue:     p,
		Iterations: len(dist),
		Dropped:    iterations - len(dist),
	}, nil
}

func checkPaired(x, y []float64) error {
	if len(x) != len(y) {
		return invalid("paired samples differ in length: %d and %d", len(x), len(y))
	}
	if len(x) < 3 {
		return invalid("correlation needs at least 3 pairs, got %d", len(x))
	}
	if err := checkFinite("first sample", x); err != nil {
		return err
	}
	return checkFinite("second sample", y)
}

func correlation(x, y []float64) (float64, error) {
	if err := checkPaired(x, y); err != nil {
		return 0, err
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return 0, degenerate("correlation undefined for a constant sample")
	}
	return stat.Correlation(x, y, nil), nil
}

func correlationP(r, df float64, alt Alternative) float64 {
	if math.Abs(r) >= 1 {
		switch alt {
		case Less:
			if r > 0 {
				return 1
			}
		case Greater:
			if r < 0 {
				return 1
			}
		}
		return 0
	}
	t := r * math.Sqrt(df/(1-r*r))
	return studentP(t, df, alt)
}

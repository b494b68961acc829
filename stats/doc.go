// Package stats provides hypothesis tests built on the sample package.
//
// Every test returns a *Result holding the statistic, its p-value and,
// where the reference distribution has them, the degrees of freedom.
// Invalid arguments wrap sample.ErrInvalidInput and data on which a test
// is undefined (zero variance, collinear regressors) wraps
// sample.ErrDegenerateData.
//
// # Single Sample
//
//	res, err := stats.OneSampleTTest(x, 100, stats.TwoSided)
//	if err != nil {
//	    return err
//	}
//	if res.Reject(0.05) {
//	    fmt.Printf("mean differs from 100 (t=%.3f, p=%.4f)\n", res.Statistic, res.PValue)
//	}
//
// ZTest and VarianceTest cover known-sigma and variance hypotheses.
//
// # Normality
//
//	stats.SkewTest(x)     // n >= 8
//	stats.KurtosisTest(x) // n >= 5
//	stats.NormalTest(x)   // D'Agostino-Pearson K^2
//	stats.JarqueBera(x)
//
// # Two Samples
//
//	stats.TwoSampleTTest(x, y, false, stats.TwoSided) // Welch
//	stats.PairedTTest(before, after, stats.Less)
//	stats.MannWhitneyU(x, y, stats.TwoSided)
//
// # Correlation
//
//	stats.Pearson(x, y, stats.TwoSided)
//	stats.Spearman(x, y, stats.TwoSided)
//
// BootstrapPearson uses a sample.Resampler and an empirical p-value:
//
//	rs, _ := sample.NewResampler(sample.DefaultBootstrapConfig(), logger)
//	br, err := stats.BootstrapPearson(x, y, rs, 0.05)
//
// # Time Series
//
//	adf, err := stats.ADF(s, 0)           // H0: unit root
//	kpss, err := stats.KPSS(s, "c", 0)    // H0: level stationary
//	lb, err := stats.LjungBox(s, 10, 0)   // H0: no autocorrelation
//	adf.IsStationary(0.05)
package stats

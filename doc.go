// Package statshypo computes descriptive statistics, kernel density
// estimates, bootstrap distributions and hypothesis tests on numeric samples.
//
// # Packages
//
//   - sample: samples, descriptive summaries, R7 quantiles, Gaussian KDE,
//     bootstrap resampling, empirical p-values and CSV input/output
//   - stats: parametric and rank tests, normality tests, correlation,
//     autocorrelation, portmanteau and stationarity tests
//   - config: YAML, dotenv and environment configuration plus logger setup
//   - report: plain-text tables for summaries and test results
//   - cmd/statshypo: the command line front end
//
// # Quick Start
//
// Describe a sample and bootstrap its mean:
//
//	d, _ := sample.Describe(values)
//	rs, _ := sample.NewResampler(sample.DefaultBootstrapConfig(), zap.NewNop())
//	dist, _ := rs.Distribution(values, sample.MeanStatistic)
//	cutoff, p, _ := sample.EmpiricalPValue(dist, 0.05, sample.OneTail)
//
// Run a test:
//
//	res, _ := stats.TwoSampleTTest(before, after, false, stats.TwoSided)
//	if res.Reject(0.05) {
//		fmt.Println("means differ")
//	}
package statshypo

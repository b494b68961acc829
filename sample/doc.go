// Package sample provides the numeric sample type and the statistics shared
// by every hypothesis test in this module.
//
// A Sample is an ordered, finite sequence of float64 values. The package
// offers descriptive statistics, a Gaussian kernel density estimate,
// bootstrap resampling, and empirical p-values computed from a resampled
// statistic distribution.
//
// # Creating a Sample
//
//	s := sample.New([]float64{2.1, 3.4, 1.9, 5.6, 4.2})
//
//	// Or load one column of a CSV file
//	s, err := sample.LoadCSV("data.csv", &sample.CSVOptions{ValueColumn: "y", HasHeader: true})
//
// # Descriptive Statistics
//
//	d, err := s.Describe()
//	// d.Count, d.Min, d.Q25, d.Median, d.Q75, d.Max,
//	// d.Mean, d.StdDev, d.Skewness, d.Kurtosis
//
// # Kernel Density Estimate
//
// The bandwidth is a fixed multiple (the covariance factor) of the sample
// standard deviation:
//
//	density, err := sample.NewDensity(s.Values, sample.DefaultCovarianceFactor)
//	y := density.At(3.0)
//
// # Bootstrap
//
// Draw floor(ratio*N) values with replacement:
//
//	rng := rand.New(rand.NewSource(42))
//	resample, err := sample.Bootstrap(s.Values, 0.8, rng)
//
// Build the distribution of a statistic over many resamples and derive an
// empirical p-value from it:
//
//	r, err := sample.NewResampler(sample.DefaultBootstrapConfig(), logger)
//	dist, err := r.Distribution(s.Values, sample.MeanStatistic)
//	cutoff, p, err := sample.EmpiricalPValue(dist, 0.05, sample.OneTail)
//
// # Quantiles
//
// All percentiles in this package use linear interpolation between order
// statistics: for q in [0,1] and n sorted values, h = (n-1)q and the result
// is x[floor(h)] + (h-floor(h))*(x[floor(h)+1]-x[floor(h)]).
//
// # Errors
//
// Every failure wraps ErrInvalidInput or ErrDegenerateData, so callers can
// classify errors with errors.Is.
package sample

package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/statshypo/sample"
)

// LjungBox tests for autocorrelation up to lag h. The null hypothesis is
// that the observations are independent. fitdf is subtracted from the
// degrees of freedom when s holds model residuals.
func LjungBox(s *sample.Sample, lags, fitdf int) (*Result, error) {
	q, df, err := portmanteau(s, lags, fitdf, func(n, k int, r float64) float64 {
		return float64(n*(n+2)) * r * r / float64(n-k)
	})
	if err != nil {
		return nil, err
	}
	return &Result{
		Test:        "Ljung-Box Q Test",
		Statistic:   q,
		PValue:      distuv.ChiSquared{K: df}.Survival(q),
		DF:          df,
		N:           s.Len(),
		Alternative: Greater,
	}, nil
}

// BoxPierce is the unweighted variant of LjungBox.
func BoxPierce(s *sample.Sample, lags, fitdf int) (*Result, error) {
	q, df, err := portmanteau(s, lags, fitdf, func(n, _ int, r float64) float64 {
		return float64(n) * r * r
	})
	if err != nil {
		return nil, err
	}
	return &Result{
		Test:        "Box-Pierce Q Test",
		Statistic:   q,
		PValue:      distuv.ChiSquared{K: df}.Survival(q),
		DF:          df,
		N:           s.Len(),
		Alternative: Greater,
	}, nil
}

func portmanteau(s *sample.Sample, lags, fitdf int, term func(n, k int, r float64) float64) (q, df float64, err error) {
	n := s.Len()
	if lags < 1 {
		return 0, 0, invalid("lags must be at least 1, got %d", lags)
	}
	if fitdf < 0 {
		return 0, 0, invalid("fitted parameter count must not be negative, got %d", fitdf)
	}
	if n < 3 {
		return 0, 0, invalid("portmanteau test needs at least 3 observations, got %d", n)
	}
	if lags >= n {
		lags = n - 1
	}

	acf, err := ACF(s, lags)
	if err != nil {
		return 0, 0, err
	}
	for k := 1; k <= lags; k++ {
		q += term(n, k, acf[k])
	}

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}
	return q, float64(dof), nil
}

// DurbinWatson returns the Durbin-Watson statistic of s, usually model
// residuals. Values near 2 indicate no first-order autocorrelation, values
// towards 0 positive and towards 4 negative autocorrelation.
func DurbinWatson(s *sample.Sample) (float64, error) {
	n := s.Len()
	if n < 2 {
		return 0, invalid("Durbin-Watson needs at least 2 observations, got %d", n)
	}
	if err := checkFinite(s.Name, s.Values); err != nil {
		return 0, err
	}

	diff := s.Diff().Values
	den := floats.Dot(s.Values, s.Values)
	if den == 0 {
		return 0, degenerate("Durbin-Watson undefined for an all-zero series")
	}
	return floats.Dot(diff, diff) / den, nil
}

package stats

import (
	"errors"

	"github.com/sartorproj/statshypo/sample"
)

// minDiffLen is the shortest series NDiffs keeps differencing.
const minDiffLen = 10

// StationarityTest runs one stationarity or unit root test on a series.
type StationarityTest func(s *sample.Sample) (*StationarityResult, error)

// KPSSTest returns a StationarityTest running KPSS with the given
// regression and lags.
func KPSSTest(regression string, nlags int) StationarityTest {
	return func(s *sample.Sample) (*StationarityResult, error) {
		return KPSS(s, regression, nlags)
	}
}

// ADFTest returns a StationarityTest running ADF with maxLag lags.
func ADFTest(maxLag int) StationarityTest {
	return func(s *sample.Sample) (*StationarityResult, error) {
		return ADF(s, maxLag)
	}
}

// PhillipsPerronTest returns a StationarityTest running Phillips-Perron
// with nlags lags.
func PhillipsPerronTest(nlags int) StationarityTest {
	return func(s *sample.Sample) (*StationarityResult, error) {
		return PhillipsPerron(s, nlags)
	}
}

// NDiffs determines the number of first differences required for
// stationarity, at most maxD (default 2). test is applied to the series and
// to each difference in turn; nil uses KPSS with a constant and automatic
// lags. A series that turns constant after differencing is reported as
// needing no further differences.
func NDiffs(s *sample.Sample, maxD int, alpha float64, test StationarityTest) (int, error) {
	if s == nil {
		return 0, invalid("series is nil")
	}
	if err := sample.ValidateAlpha(alpha); err != nil {
		return 0, err
	}
	if maxD <= 0 {
		maxD = 2
	}
	if test == nil {
		test = KPSSTest("c", 0)
	}

	current := s
	for d := 0; d < maxD; d++ {
		res, err := test(current)
		if errors.Is(err, sample.ErrDegenerateData) {
			return d, nil
		}
		if err != nil {
			return 0, err
		}
		if res.IsStationary(alpha) {
			return d, nil
		}

		current = current.Diff()
		if current.Len() < minDiffLen {
			return d + 1, nil
		}
	}

	return maxD, nil
}

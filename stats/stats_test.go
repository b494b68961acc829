package stats

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/sartorproj/statshypo/sample"
)

func alternating(n int) *sample.Sample {
	values := make([]float64, n)
	for i := range values {
		values[i] = 1
		if i%2 == 1 {
			values[i] = -1
		}
	}
	return sample.New(values)
}

// residues cycles through 0..12 in a scrambled order.
func residues(n int) *sample.Sample {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64((i * 7919) % 13)
	}
	return sample.New(values)
}

func whiteNoise(n int, seed int64) *sample.Sample {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = rng.NormFloat64()
	}
	return sample.New(values)
}

func TestACF(t *testing.T) {
	acf, err := ACF(alternating(20), 3)
	if err != nil {
		t.Fatalf("ACF failed: %v", err)
	}

	if len(acf) != 4 {
		t.Fatalf("Expected 4 lags, got %d", len(acf))
	}
	if math.Abs(acf[0]-1.0) > 1e-10 {
		t.Errorf("ACF at lag 0 should be 1, got %f", acf[0])
	}
	if math.Abs(acf[1]+0.95) > 1e-10 {
		t.Errorf("ACF at lag 1 should be -0.95, got %f", acf[1])
	}
	if math.Abs(acf[2]-0.9) > 1e-10 {
		t.Errorf("ACF at lag 2 should be 0.9, got %f", acf[2])
	}
}

func TestACFCapsLag(t *testing.T) {
	acf, err := ACF(sample.New([]float64{1, 2, 3}), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(acf) != 3 {
		t.Errorf("Expected lag capped at n-1, got %d values", len(acf))
	}
}

func TestACFErrors(t *testing.T) {
	if _, err := ACF(sample.New([]float64{5, 5, 5}), 1); err == nil {
		t.Error("Expected error for constant sample")
	}
	if _, err := ACF(sample.New([]float64{1}), 1); err == nil {
		t.Error("Expected error for single observation")
	}
	if _, err := ACF(sample.New([]float64{1, 2}), -1); err == nil {
		t.Error("Expected error for negative lag")
	}
}

func TestACFWithConfidence(t *testing.T) {
	result, err := ACFWithConfidence(alternating(100), 5)
	if err != nil {
		t.Fatal(err)
	}

	expected := 1.96 / math.Sqrt(100)
	if math.Abs(result.ConfBounds-expected) > 1e-12 {
		t.Errorf("Expected confidence bounds %f, got %f", expected, result.ConfBounds)
	}

	significant := result.Significant()
	if len(significant) != 5 {
		t.Errorf("Expected every lag to be significant, got %v", significant)
	}
}

func TestADF(t *testing.T) {
	result, err := ADF(whiteNoise(500, 1), 0)
	if err != nil {
		t.Fatalf("ADF failed: %v", err)
	}

	t.Logf("ADF Statistic: %f, P-Value: %f", result.Statistic, result.PValue)

	if !result.IsStationary(0.05) {
		t.Errorf("White noise should be stationary, statistic %f", result.Statistic)
	}
	if result.Lags != 7 {
		t.Errorf("Expected default lag floor(499^(1/3)) = 7, got %d", result.Lags)
	}
	if result.NObs != 500-7-1 {
		t.Errorf("Unexpected observation count %d", result.NObs)
	}
	if result.CriticalVals["5%"] != -2.86 {
		t.Errorf("Unexpected 5%% critical value %f", result.CriticalVals["5%"])
	}
}

func TestADFRandomWalk(t *testing.T) {
	noise := whiteNoise(300, 7)
	walk := make([]float64, noise.Len())
	sum := 0.0
	for i, v := range noise.Values {
		sum += v
		walk[i] = sum
	}

	result, err := ADF(sample.New(walk), 2)
	if err != nil {
		t.Fatalf("ADF failed: %v", err)
	}
	t.Logf("Random walk ADF: stat=%f, p=%f", result.Statistic, result.PValue)

	if result.PValue < 0 || result.PValue > 1 {
		t.Errorf("P-value out of range: %f", result.PValue)
	}
}

func TestADFErrors(t *testing.T) {
	if _, err := ADF(sample.New([]float64{1, 2, 3}), 0); err == nil {
		t.Error("Expected error for short series")
	}
	if _, err := ADF(alternating(50), 1); err == nil {
		t.Error("Expected error for perfectly collinear regressors")
	}
}

func TestKPSS(t *testing.T) {
	result, err := KPSS(residues(200), "c", 0)
	if err != nil {
		t.Fatalf("KPSS failed: %v", err)
	}
	if !result.IsStationary(0.05) {
		t.Errorf("Cyclic series should be level stationary, stat %f", result.Statistic)
	}
	if result.Lags != 15 {
		t.Errorf("Expected default lag ceil(12*2^(1/4)) = 15, got %d", result.Lags)
	}
	if result.PValue != 0.10 {
		t.Errorf("Small statistics should clamp to p=0.10, got %f", result.PValue)
	}

	trend := make([]float64, 200)
	for i := range trend {
		trend[i] = float64(i)
	}
	result, err = KPSS(sample.New(trend), "c", 0)
	if err != nil {
		t.Fatalf("KPSS failed: %v", err)
	}
	t.Logf("Trend KPSS: stat=%f, p=%f", result.Statistic, result.PValue)
	if result.IsStationary(0.05) {
		t.Error("Linear trend should not be level stationary")
	}
	if result.CriticalVals["1%"] != 0.739 {
		t.Errorf("Unexpected 1%% critical value %f", result.CriticalVals["1%"])
	}
}

func TestKPSSErrors(t *testing.T) {
	trend := make([]float64, 50)
	for i := range trend {
		trend[i] = 2*float64(i) + 1
	}

	if _, err := KPSS(sample.New(trend), "ct", 0); err == nil {
		t.Error("Expected error when detrended residuals vanish")
	}
	if _, err := KPSS(sample.New(trend), "t", 0); err == nil {
		t.Error("Expected error for unknown regression")
	}
	if _, err := KPSS(sample.New(trend[:5]), "c", 0); err == nil {
		t.Error("Expected error for short series")
	}
}

func TestKPSSPValueInterpolation(t *testing.T) {
	tests := []struct {
		stat float64
		want float64
	}{
		{0.1, 0.10},
		{0.347, 0.10},
		{0.463, 0.05},
		{0.405, 0.075},
		{0.739, 0.01},
		{2.0, 0.01},
	}

	for _, tt := range tests {
		got := kpssPValue(tt.stat, kpssLevelCrit)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("kpssPValue(%v) = %v, want %v", tt.stat, got, tt.want)
		}
	}
}

func TestLjungBox(t *testing.T) {
	s := alternating(20)

	result, err := LjungBox(s, 1, 0)
	if err != nil {
		t.Fatalf("LjungBox failed: %v", err)
	}
	if math.Abs(result.Statistic-20.9) > 1e-9 {
		t.Errorf("Expected Q = 20.9, got %f", result.Statistic)
	}
	if math.Abs(result.PValue-4.838945955678626e-06) > 1e-9 {
		t.Errorf("Unexpected p-value %g", result.PValue)
	}
	if result.DF != 1 {
		t.Errorf("Expected 1 degree of freedom, got %v", result.DF)
	}

	bp, err := BoxPierce(s, 1, 0)
	if err != nil {
		t.Fatalf("BoxPierce failed: %v", err)
	}
	if math.Abs(bp.Statistic-18.05) > 1e-9 {
		t.Errorf("Expected Q = 18.05, got %f", bp.Statistic)
	}
	if math.Abs(bp.PValue-2.151786437812016e-05) > 1e-9 {
		t.Errorf("Unexpected p-value %g", bp.PValue)
	}
}

func TestLjungBoxWhiteNoise(t *testing.T) {
	result, err := LjungBox(whiteNoise(400, 3), 10, 2)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("Ljung-Box on noise: Q=%f, p=%f", result.Statistic, result.PValue)

	if result.DF != 8 {
		t.Errorf("Expected 8 degrees of freedom, got %v", result.DF)
	}
	if result.PValue < 0 || result.PValue > 1 {
		t.Errorf("P-value out of range: %f", result.PValue)
	}
}

func TestLjungBoxErrors(t *testing.T) {
	s := alternating(20)
	if _, err := LjungBox(s, 0, 0); err == nil {
		t.Error("Expected error for zero lags")
	}
	if _, err := LjungBox(s, 2, -1); err == nil {
		t.Error("Expected error for negative fitdf")
	}
	if _, err := LjungBox(sample.New([]float64{1, 1, 1, 1}), 1, 0); err == nil {
		t.Error("Expected error for constant sample")
	}
}

func TestPACF(t *testing.T) {
	pacf, err := PACF(alternating(20), 3)
	if err != nil {
		t.Fatalf("PACF failed: %v", err)
	}
	if len(pacf) != 4 {
		t.Fatalf("Expected 4 lags, got %d", len(pacf))
	}
	if pacf[0] != 1 {
		t.Errorf("PACF at lag 0 should be 1, got %f", pacf[0])
	}
	if math.Abs(pacf[1]+0.95) > 1e-10 {
		t.Errorf("PACF at lag 1 should equal ACF -0.95, got %f", pacf[1])
	}
	// (r2 - r1^2) / (1 - r1^2)
	want := (0.9 - 0.95*0.95) / (1 - 0.95*0.95)
	if math.Abs(pacf[2]-want) > 1e-10 {
		t.Errorf("PACF at lag 2 should be %f, got %f", want, pacf[2])
	}
}

func TestPACFWithConfidence(t *testing.T) {
	result, err := PACFWithConfidence(whiteNoise(400, 3), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Values) != 11 {
		t.Errorf("Expected 11 values, got %d", len(result.Values))
	}
	if math.Abs(result.ConfBounds-1.96/20) > 1e-12 {
		t.Errorf("Unexpected confidence bounds %f", result.ConfBounds)
	}
	for k, v := range result.Values[1:] {
		if math.Abs(v) >= 1 {
			t.Errorf("PACF at lag %d out of range: %f", k+1, v)
		}
	}
}

func TestPACFErrors(t *testing.T) {
	if _, err := PACF(alternating(20), 0); !errors.Is(err, sample.ErrInvalidInput) {
		t.Errorf("Expected invalid input for lag 0, got %v", err)
	}
	if _, err := PACF(sample.New([]float64{2, 2, 2, 2}), 2); !errors.Is(err, sample.ErrDegenerateData) {
		t.Errorf("Expected degenerate data for a constant series, got %v", err)
	}
}

func TestPhillipsPerron(t *testing.T) {
	result, err := PhillipsPerron(whiteNoise(500, 1), 0)
	if err != nil {
		t.Fatalf("Phillips-Perron failed: %v", err)
	}
	t.Logf("PP Statistic: %f, P-Value: %f", result.Statistic, result.PValue)

	if !result.IsStationary(0.05) {
		t.Errorf("White noise should be stationary, statistic %f", result.Statistic)
	}
	if result.Lags != 5 {
		t.Errorf("Expected default lag floor(4*5^(1/4)) = 5, got %d", result.Lags)
	}
	if result.NObs != 499 {
		t.Errorf("Unexpected observation count %d", result.NObs)
	}
}

func TestPhillipsPerronRandomWalk(t *testing.T) {
	noise := whiteNoise(300, 7)
	walk := make([]float64, noise.Len())
	sum := 0.0
	for i, v := range noise.Values {
		sum += v
		walk[i] = sum
	}

	result, err := PhillipsPerron(sample.New(walk), 4)
	if err != nil {
		t.Fatalf("Phillips-Perron failed: %v", err)
	}
	t.Logf("Random walk PP: stat=%f, p=%f", result.Statistic, result.PValue)

	if result.PValue < 0 || result.PValue > 1 {
		t.Errorf("P-value out of range: %f", result.PValue)
	}
}

func TestPhillipsPerronErrors(t *testing.T) {
	if _, err := PhillipsPerron(sample.New([]float64{1, 2, 3}), 0); !errors.Is(err, sample.ErrInvalidInput) {
		t.Errorf("Expected invalid input for short series, got %v", err)
	}
	if _, err := PhillipsPerron(sample.New([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, math.NaN()}), 0); !errors.Is(err, sample.ErrInvalidInput) {
		t.Errorf("Expected invalid input for NaN, got %v", err)
	}
}

func TestDurbinWatson(t *testing.T) {
	d, err := DurbinWatson(alternating(20))
	if err != nil {
		t.Fatalf("DurbinWatson failed: %v", err)
	}
	if math.Abs(d-3.8) > 1e-12 {
		t.Errorf("Expected 3.8 for an alternating series, got %f", d)
	}

	if _, err := DurbinWatson(sample.New([]float64{0, 0, 0})); !errors.Is(err, sample.ErrDegenerateData) {
		t.Errorf("Expected degenerate data for zeros, got %v", err)
	}
	if _, err := DurbinWatson(sample.New([]float64{1})); !errors.Is(err, sample.ErrInvalidInput) {
		t.Errorf("Expected invalid input for one observation, got %v", err)
	}
}

func TestIsStationaryBoundary(t *testing.T) {
	unitRoot := &StationarityResult{PValue: 0.05}
	if !unitRoot.IsStationary(0.05) {
		t.Error("p == alpha should reject the unit root null")
	}
	levelNull := &StationarityResult{PValue: 0.05, nullStationary: true}
	if levelNull.IsStationary(0.05) {
		t.Error("p == alpha should reject the stationarity null")
	}
	res := &Result{PValue: 0.05}
	if !res.Reject(0.05) {
		t.Error("p == alpha should reject in Result.Reject")
	}
}

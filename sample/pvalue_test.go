package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneToHundred() []float64 {
	dist := make([]float64, 100)
	for i := range dist {
		dist[i] = float64(i + 1)
	}
	return dist
}

func TestEmpiricalPValue(t *testing.T) {
	tests := []struct {
		name       string
		alpha      float64
		tail       Tail
		wantCutoff float64
		wantP      float64
	}{
		// h = 99 * 0.95 = 94.05, so the cutoff is 95 + 0.05
		{"one tail 5%", 0.05, OneTail, 95.05, 0.05},
		{"one tail 10%", 0.10, OneTail, 90.1, 0.10},
		// 1 - 0.05/2 = 0.975, h = 96.525
		{"two tail 5%", 0.05, TwoTail, 97.525, 0.03},
		// the two-tail cutoff at alpha matches the one-tail cutoff at alpha/2
		{"two tail 10%", 0.10, TwoTail, 95.05, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cutoff, p, err := EmpiricalPValue(oneToHundred(), tt.alpha, tt.tail)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantCutoff, cutoff, 1e-9)
			assert.InDelta(t, tt.wantP, p, 1e-12)
		})
	}
}

func TestEmpiricalPValueUnsortedInput(t *testing.T) {
	dist := []float64{9, 1, 8, 2, 7, 3, 6, 4, 5, 10}
	orig := append([]float64(nil), dist...)

	cutoff, p, err := EmpiricalPValue(dist, 0.2, OneTail)
	require.NoError(t, err)

	// h = 9 * 0.8 = 7.2
	assert.InDelta(t, 8.2, cutoff, 1e-9)
	assert.InDelta(t, 0.2, p, 1e-12)
	assert.Equal(t, orig, dist)
}

func TestEmpiricalPValueConstantDistribution(t *testing.T) {
	cutoff, p, err := EmpiricalPValue([]float64{4, 4, 4, 4}, 0.05, TwoTail)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cutoff)
	assert.Equal(t, 1.0, p)
}

func TestEmpiricalPValueErrors(t *testing.T) {
	_, _, err := EmpiricalPValue(nil, 0.05, OneTail)
	require.ErrorIs(t, err, ErrInvalidInput)

	for _, alpha := range []float64{0, 1, -0.1, 1.5} {
		_, _, err = EmpiricalPValue(oneToHundred(), alpha, OneTail)
		require.ErrorIs(t, err, ErrInvalidInput, "alpha %v", alpha)
	}

	for _, tail := range []Tail{"", "one", "both", "left-tail", "One-Tail"} {
		_, _, err = EmpiricalPValue(oneToHundred(), 0.05, tail)
		require.ErrorIs(t, err, ErrInvalidInput, "tail %q", tail)
	}
}

func TestEmpiricalPValueNonFinite(t *testing.T) {
	tests := []struct {
		name string
		dist []float64
	}{
		{"all NaN", []float64{math.NaN(), math.NaN()}},
		{"one NaN", []float64{1, 2, math.NaN(), 3}},
		{"infinite", []float64{1, math.Inf(1), 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := EmpiricalPValue(tt.dist, 0.05, OneTail)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParseTail(t *testing.T) {
	tail, err := ParseTail("one-tail")
	require.NoError(t, err)
	assert.Equal(t, OneTail, tail)

	tail, err = ParseTail("two-tail")
	require.NoError(t, err)
	assert.Equal(t, TwoTail, tail)

	for _, s := range []string{"", "one_tail", " two-tail", "TWO-TAIL", "three-tail"} {
		_, err = ParseTail(s)
		require.ErrorIs(t, err, ErrInvalidInput, "tail %q", s)
	}
}

func TestValidateAlpha(t *testing.T) {
	assert.NoError(t, ValidateAlpha(0.05))
	assert.NoError(t, ValidateAlpha(0.999))
	assert.ErrorIs(t, ValidateAlpha(0), ErrInvalidInput)
	assert.ErrorIs(t, ValidateAlpha(1), ErrInvalidInput)
}

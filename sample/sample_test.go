package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleBasicStats(t *testing.T) {
	s := New([]float64{4, 1, 3, 5, 2})

	assert.Equal(t, 5, s.Len())
	assert.InDelta(t, 3.0, s.Mean(), 1e-12)
	assert.InDelta(t, 2.5, s.Variance(), 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.Std(), 1e-12)
	assert.Equal(t, 1.0, s.Min())
	assert.Equal(t, 5.0, s.Max())
	assert.Equal(t, 3.0, s.Median())

	// Sorting for the median must not reorder the caller's data
	assert.Equal(t, []float64{4, 1, 3, 5, 2}, s.Values)
}

func TestSampleEmpty(t *testing.T) {
	s := New(nil)

	assert.True(t, math.IsNaN(s.Mean()))
	assert.True(t, math.IsNaN(s.Variance()))
	assert.True(t, math.IsNaN(s.Min()))
	assert.True(t, math.IsNaN(s.Max()))
	assert.True(t, math.IsNaN(s.Median()))
}

func TestSampleDiff(t *testing.T) {
	s := NewNamed("level", []float64{1, 4, 9, 16})
	d := s.Diff()

	assert.Equal(t, []float64{3, 5, 7}, d.Values)
	assert.Equal(t, "level_diff", d.Name)
	assert.Equal(t, 0, New([]float64{1}).Diff().Len())
}

func TestSampleCopyIsDeep(t *testing.T) {
	s := New([]float64{1, 2, 3})
	c := s.Copy()
	c.Values[0] = 100

	assert.Equal(t, 1.0, s.Values[0])
}

func TestSampleNormalize(t *testing.T) {
	n := New([]float64{2, 4, 6, 8}).Normalize()

	assert.InDelta(t, 0.0, n.Mean(), 1e-12)
	assert.InDelta(t, 1.0, n.Std(), 1e-12)

	// Constant data is returned unchanged
	c := New([]float64{3, 3, 3}).Normalize()
	assert.Equal(t, []float64{3, 3, 3}, c.Values)
}

func TestRanks(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{"distinct", []float64{30, 10, 20}, []float64{3, 1, 2}},
		{"ties", []float64{10, 20, 20, 30}, []float64{1, 2.5, 2.5, 4}},
		{"all tied", []float64{7, 7, 7}, []float64{2, 2, 2}},
		{"empty", nil, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ranks(tt.values))
		})
	}
}

func TestQuantile(t *testing.T) {
	sorted := []float64{15, 20, 35, 40, 50}

	tests := map[float64]float64{
		-1:   15,
		0:    15,
		0.25: 20,
		0.30: 23,
		0.40: 29,
		0.50: 35,
		0.95: 48,
		1:    50,
		2:    50,
	}

	for q, want := range tests {
		if got := Quantile(sorted, q); math.Abs(got-want) > 1e-9 {
			t.Errorf("Quantile(%v) = %v, want %v", q, got, want)
		}
	}

	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
	assert.Equal(t, 7.0, Quantile([]float64{7}, 0.3))
}

func TestPercentilesLeavesInputUnsorted(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}
	got := Percentiles(values, 0.25, 0.5, 0.75)

	assert.Equal(t, []float64{2, 3, 4}, got)
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, values)
}

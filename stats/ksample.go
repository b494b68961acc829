package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/statshypo/sample"
)

// OneWayANOVA tests whether two or more independent groups share a mean.
// The statistic is the ratio of the between-group to the within-group mean
// square, F-distributed with k-1 and N-k degrees of freedom.
func OneWayANOVA(groups ...[]float64) (*Result, error) {
	n, err := checkGroups(groups, 2)
	if err != nil {
		return nil, err
	}
	k := len(groups)
	if n <= k {
		return nil, invalid("ANOVA needs more observations than groups, got %d for %d groups", n, k)
	}

	grand := 0.0
	for _, g := range groups {
		for _, v := range g {
			grand += v
		}
	}
	grand /= float64(n)

	var ssb, ssw float64
	for _, g := range groups {
		m := stat.Mean(g, nil)
		ssb += float64(len(g)) * (m - grand) * (m - grand)
		for _, v := range g {
			ssw += (v - m) * (v - m)
		}
	}
	if ssw == 0 {
		return nil, degenerate("ANOVA undefined when every group is constant")
	}

	d1, d2 := float64(k-1), float64(n-k)
	f := (ssb / d1) / (ssw / d2)

	return &Result{
		Test:        "One-Way ANOVA",
		Statistic:   f,
		PValue:      distuv.F{D1: d1, D2: d2}.Survival(f),
		DF:          d1,
		DF2:         d2,
		N:           n,
		Alternative: Greater,
	}, nil
}

// KruskalWallis is the rank-based counterpart of OneWayANOVA. H is
// corrected for ties and compared with a chi-square distribution with k-1
// degrees of freedom.
func KruskalWallis(groups ...[]float64) (*Result, error) {
	n, err := checkGroups(groups, 2)
	if err != nil {
		return nil, err
	}

	pooled := make([]float64, 0, n)
	for _, g := range groups {
		pooled = append(pooled, g...)
	}
	ranks := sample.Ranks(pooled)

	h, offset := 0.0, 0
	for _, g := range groups {
		sum := 0.0
		for _, r := range ranks[offset : offset+len(g)] {
			sum += r
		}
		offset += len(g)
		h += sum * sum / float64(len(g))
	}
	nf := float64(n)
	h = 12/(nf*(nf+1))*h - 3*(nf+1)

	c := 1 - tieSum(pooled)/(nf*nf*nf-nf)
	if c == 0 {
		return nil, degenerate("Kruskal-Wallis undefined when all values are equal")
	}
	h /= c

	df := float64(len(groups) - 1)
	return &Result{
		Test:        "Kruskal-Wallis H Test",
		Statistic:   h,
		PValue:      distuv.ChiSquared{K: df}.Survival(h),
		DF:          df,
		N:           n,
		Alternative: Greater,
	}, nil
}

// Friedman tests whether k >= 3 repeated measurements on the same subjects
// share a distribution. groups[j][i] is treatment j on subject i, so every
// group must have the same length. Values are ranked within each subject.
func Friedman(groups ...[]float64) (*Result, error) {
	if _, err := checkGroups(groups, 3); err != nil {
		return nil, err
	}
	k, n := len(groups), len(groups[0])
	for j, g := range groups {
		if len(g) != n {
			return nil, invalid("Friedman test needs equal group sizes, group %d has %d values, expected %d", j, len(g), n)
		}
	}
	if n < 2 {
		return nil, invalid("Friedman test needs at least 2 subjects, got %d", n)
	}

	rankSums := make([]float64, k)
	row := make([]float64, k)
	ties := 0.0
	for i := 0; i < n; i++ {
		for j := range groups {
			row[j] = groups[j][i]
		}
		for j, r := range sample.Ranks(row) {
			rankSums[j] += r
		}
		ties += tieSum(row)
	}

	kf, nf := float64(k), float64(n)
	c := 1 - ties/(kf*(kf*kf-1)*nf)
	if c == 0 {
		return nil, degenerate("Friedman test undefined when every subject is constant")
	}
	ss := 0.0
	for _, r := range rankSums {
		ss += r * r
	}
	chi := (12/(kf*nf*(kf+1))*ss - 3*nf*(kf+1)) / c

	df := kf - 1
	return &Result{
		Test:        "Friedman Chi-Square Test",
		Statistic:   chi,
		PValue:      distuv.ChiSquared{K: df}.Survival(chi),
		DF:          df,
		N:           n,
		Alternative: Greater,
	}, nil
}

// checkGroups validates a k-sample input and returns the total count.
func checkGroups(groups [][]float64, minGroups int) (int, error) {
	if len(groups) < minGroups {
		return 0, invalid("need at least %d groups, got %d", minGroups, len(groups))
	}
	n := 0
	for j, g := range groups {
		if len(g) == 0 {
			return 0, invalid("group %d is empty", j)
		}
		if err := checkFinite("group", g); err != nil {
			return 0, err
		}
		n += len(g)
	}
	return n, nil
}

// tieSum returns the sum of t^3 - t over groups of t tied values.
func tieSum(values []float64) float64 {
	sum := 0.0
	for _, t := range tieCounts(values) {
		sum += t*t*t - t
	}
	return sum
}

// tieCounts returns the sizes of the groups of tied values.
func tieCounts(values []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var counts []float64
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if j-i > 1 {
			counts = append(counts, float64(j-i))
		}
		i = j
	}
	return counts
}

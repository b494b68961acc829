package sample

// Tail selects the cutoff used by EmpiricalPValue.
type Tail string

const (
	OneTail Tail = "one-tail"
	TwoTail Tail = "two-tail"
)

// ParseTail converts a tail mode name into a Tail.
func ParseTail(s string) (Tail, error) {
	switch Tail(s) {
	case OneTail:
		return OneTail, nil
	case TwoTail:
		return TwoTail, nil
	}
	return "", invalidInput("unrecognised tail mode %q", s)
}

// EmpiricalPValue derives a cutoff and p-value from a statistic distribution.
//
// The cutoff is the (1-alpha) quantile for OneTail and the (1-alpha/2)
// quantile for TwoTail; p is the fraction of dist at or above the cutoff in
// both modes. The TwoTail p-value therefore only counts the upper tail and
// is not doubled. A distribution holding NaN or infinite values is rejected.
func EmpiricalPValue(dist []float64, alpha float64, tail Tail) (cutoff, p float64, err error) {
	if len(dist) == 0 {
		return 0, 0, invalidInput("empty statistic distribution")
	}
	if err := ValidateAlpha(alpha); err != nil {
		return 0, 0, err
	}
	if err := checkFinite("statistic distribution", dist); err != nil {
		return 0, 0, err
	}

	var q float64
	switch tail {
	case OneTail:
		q = 1 - alpha
	case TwoTail:
		q = 1 - alpha/2
	default:
		return 0, 0, invalidInput("unrecognised tail mode %q", string(tail))
	}

	cutoff = Quantile(sortedCopy(dist), q)

	count := 0
	for _, v := range dist {
		if v >= cutoff {
			count++
		}
	}
	return cutoff, float64(count) / float64(len(dist)), nil
}

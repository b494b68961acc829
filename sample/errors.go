package sample

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput reports an empty or undersized sample, an out of range
	// parameter, or an unrecognised tail mode.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateData reports data with no spread where a computation
	// divides by the variance.
	ErrDegenerateData = errors.New("degenerate data")
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func degenerateData(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDegenerateData, fmt.Sprintf(format, args...))
}

// ValidateAlpha checks that a significance level lies in the open interval (0,1).
func ValidateAlpha(alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return invalidInput("significance level %v outside (0,1)", alpha)
	}
	return nil
}

func checkFinite(what string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidInput("%s holds non-finite value %v at index %d", what, v, i)
		}
	}
	return nil
}

package stat

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidInput is returned for empty samples, samples containing
	// NaN or ±Inf and, where sorted input is required, unsorted samples.
	ErrInvalidInput = errors.New("stat: invalid input")

	// ErrInvalidParameter is returned for out-of-range parameters like a
	// non-positive bin count or a quantile probability outside [0,1].
	ErrInvalidParameter = errors.New("stat: invalid parameter")
)

// checkFinite reports an ErrInvalidInput for empty or non-finite samples.
func checkFinite(op string, values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%s: empty sample: %w", op, ErrInvalidInput)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: value #%d is %v: %w", op, i, v, ErrInvalidInput)
		}
	}
	return nil
}

// checkSorted is checkFinite plus an ascending order check.
func checkSorted(op string, sorted []float64) error {
	if err := checkFinite(op, sorted); err != nil {
		return err
	}
	if !sort.Float64sAreSorted(sorted) {
		return fmt.Errorf("%s: sample not sorted ascending: %w", op, ErrInvalidInput)
	}
	return nil
}

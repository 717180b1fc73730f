// Package stat computes the statistical summaries drawn by the widgets:
// median, mean, R-7 quantiles, IQR fences, outlier buckets, histogram
// bins and group means.
//
// Functions documented to take a sorted sample check the order and fail
// with ErrInvalidInput instead of producing garbage.
package stat

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"
)

// Summary contains the location and spread of a sample.
type Summary struct {
	N      int     `json:"n" yaml:"n"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Q25    float64 `json:"q25" yaml:"q25"`
	Q75    float64 `json:"q75" yaml:"q75"`
	IQR    float64 `json:"iqr" yaml:"iqr"` // Q75 - Q25
}

// Median of the ascending sorted sample. For an even number of values
// this is the average of the two middle ones.
func Median(sorted []float64) (float64, error) {
	if err := checkSorted("Median", sorted); err != nil {
		return 0, err
	}
	return median(sorted), nil
}

func median(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Mean is the arithmetic mean of values. Order does not matter.
func Mean(values []float64) (float64, error) {
	if err := checkFinite("Mean", values); err != nil {
		return 0, err
	}
	return gstat.Mean(values, nil), nil
}

// Quantile returns the p-quantile of the sorted sample, linearly
// interpolated between closest ranks (R's type 7, also used by d3 and
// numpy's default).
func Quantile(sorted []float64, p float64) (float64, error) {
	if err := checkSorted("Quantile", sorted); err != nil {
		return 0, err
	}
	if !(p >= 0 && p <= 1) {
		return 0, fmt.Errorf("Quantile: p=%v not in [0,1]: %w", p, ErrInvalidParameter)
	}
	return quantile(sorted, p), nil
}

func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Summarize computes the Summary of values. The input is not modified.
func Summarize(values []float64) (Summary, error) {
	if err := checkFinite("Summarize", values); err != nil {
		return Summary{}, err
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s := Summary{
		N:      len(sorted),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Mean:   gstat.Mean(sorted, nil),
		Median: median(sorted),
		Q25:    quantile(sorted, 0.25),
		Q75:    quantile(sorted, 0.75),
	}
	s.IQR = s.Q75 - s.Q25
	return s, nil
}

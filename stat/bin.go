package stat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"
)

// Histogram is the result of binning a sample into equally wide bins.
// Bin i covers [Ticks[i], Ticks[i+1]); the last bin is closed on both ends.
type Histogram struct {
	Ticks  []float64 // len(Counts)+1 bin boundaries, ascending
	Counts []int
}

// Width of a single bin.
func (h Histogram) Width() float64 {
	if len(h.Ticks) < 2 {
		return 0
	}
	return h.Ticks[1] - h.Ticks[0]
}

// HistogramBins groups values into numBins bins spanning [min, max] of
// the sample. If all values are equal the range is widened to
// [min-1, max+1] so the bins have a width. A range too wide for a
// float64 is rejected.
func HistogramBins(values []float64, numBins int) (Histogram, error) {
	if err := checkFinite("HistogramBins", values); err != nil {
		return Histogram{}, err
	}
	if numBins <= 0 {
		return Histogram{}, fmt.Errorf("HistogramBins: %d bins: %w", numBins, ErrInvalidParameter)
	}

	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		lo, hi = lo-1, hi+1
		if lo == hi {
			// ±1 is lost to rounding for large magnitudes.
			lo, hi = math.Nextafter(lo, math.Inf(-1)), math.Nextafter(hi, math.Inf(+1))
		}
	}
	if math.IsInf(hi-lo, 0) {
		return Histogram{}, fmt.Errorf("HistogramBins: range [%g, %g] overflows: %w", lo, hi, ErrInvalidInput)
	}

	h := Histogram{
		Ticks:  floats.Span(make([]float64, numBins+1), lo, hi),
		Counts: make([]int, numBins),
	}
	h.Ticks[numBins] = hi
	width := (hi - lo) / float64(numBins)
	for _, v := range values {
		bin := numBins - 1
		if f := (v - lo) / width; f < float64(numBins) {
			bin = max(int(f), 0)
		}
		// Rounding in the division may be off by one near a tick.
		for bin > 0 && v < h.Ticks[bin] {
			bin--
		}
		for bin < numBins-1 && v >= h.Ticks[bin+1] {
			bin++
		}
		h.Counts[bin]++
	}

	return h, nil
}

// Aggregate replaces each run of groupSize consecutive values by its mean.
// The last group may be shorter. If the sample has fewer than
// groupSize*minGroups values no aggregation happens so that at least
// minGroups values remain. The effective group size is returned too.
func Aggregate(values []float64, groupSize, minGroups int) ([]float64, int, error) {
	if err := checkFinite("Aggregate", values); err != nil {
		return nil, 0, err
	}
	if groupSize < 1 {
		return nil, 0, fmt.Errorf("Aggregate: group size %d: %w", groupSize, ErrInvalidParameter)
	}
	if minGroups < 0 {
		return nil, 0, fmt.Errorf("Aggregate: %d minimum groups: %w", minGroups, ErrInvalidParameter)
	}

	n := len(values)
	if minGroups > 0 && n/minGroups < groupSize {
		groupSize = 1
	}

	groups := n / groupSize
	if n%groupSize != 0 {
		groups++
	}
	means := make([]float64, groups)
	for i := range means {
		start := i * groupSize
		end := min(start+groupSize, n)
		means[i] = gstat.Mean(values[start:end], nil)
	}
	return means, groupSize, nil
}

package statvis

import (
	"fmt"
	"math"
	"sort"

	"github.com/vdobler/statvis/divider"
	"github.com/vdobler/statvis/stat"
)

// The statistical steps shared by the geoms.

// sortedCopy returns the values sorted ascending without touching values.
func sortedCopy(values []float64) []float64 {
	s := make([]float64, len(values))
	copy(s, values)
	sort.Float64s(s)
	return s
}

// boxplotStats computes fences of the requested anchor and the outlier
// buckets of sorted.
func boxplotStats(sorted []float64, anchor string) (stat.Fences, stat.Outliers, error) {
	fences := stat.IQRFences
	if anchor == FencesQuartile {
		fences = stat.TukeyFences
	}
	f, err := fences(sorted)
	if err != nil {
		return stat.Fences{}, stat.Outliers{}, err
	}
	o, err := stat.ClassifyOutliers(sorted, f)
	if err != nil {
		return stat.Fences{}, stat.Outliers{}, err
	}
	return f, o, nil
}

// histogramBins turns a histogram into Bins.
func histogramBins(h stat.Histogram) []Bin {
	bins := make([]Bin, len(h.Counts))
	for i, c := range h.Counts {
		bins[i] = Bin{
			Index:      i,
			Value:      float64(c),
			RangeStart: h.Ticks[i],
			RangeEnd:   h.Ticks[i+1],
		}
	}
	return bins
}

// valueBins has one bin per value at its sample position.
func valueBins(values []float64) []Bin {
	bins := make([]Bin, len(values))
	for i, v := range values {
		bins[i] = Bin{Index: i, Value: v, RangeStart: float64(i), RangeEnd: float64(i + 1)}
	}
	return bins
}

// groupBins has one bin per group mean covering the group's sample
// positions.
func groupBins(means []float64, groupSize, n int) []Bin {
	bins := make([]Bin, len(means))
	for i, m := range means {
		bins[i] = Bin{
			Index:      i,
			Value:      m,
			RangeStart: float64(i * groupSize),
			RangeEnd:   float64(min((i+1)*groupSize, n)),
		}
	}
	return bins
}

// placeDividers sets up the divider model over numBins bins. Explicit
// starts are used as given. Otherwise divider j of k is put on the tick
// nearest to target(j/(k+1)) and pushed right of its predecessor while
// leaving room for the dividers after it.
func placeDividers(starts []int, k, numBins int, ticks []float64, target func(p float64) float64) (*divider.Model, error) {
	if len(starts) > 0 {
		if len(starts) != k {
			return nil, fmt.Errorf("placeDividers: %d starts for %d dividers: %w",
				len(starts), k, ErrInvalidDivider)
		}
		return divider.New(starts, numBins)
	}

	near := divider.NearestTick(ticks)
	auto := make([]int, k)
	for j := range auto {
		idx := near(target(float64(j+1) / float64(k+1)))
		lo, hi := 0, numBins-(k-1-j)
		if j > 0 {
			lo = auto[j-1] + 1
		}
		if lo > hi {
			// More dividers than slots: let them share one.
			lo, hi = 0, numBins
			if j > 0 {
				lo = auto[j-1]
			}
		}
		auto[j] = min(max(idx, lo), hi)
	}
	return divider.New(auto, numBins)
}

// quantileTarget maps p to the p-quantile of sorted.
func quantileTarget(sorted []float64) func(p float64) float64 {
	return func(p float64) float64 {
		q, err := stat.Quantile(sorted, p)
		if err != nil {
			return math.NaN()
		}
		return q
	}
}

// positionTarget maps p to the fraction p of numBins positions.
func positionTarget(numBins int) func(p float64) float64 {
	return func(p float64) float64 { return p * float64(numBins) }
}

// indexTicks are the positions 0, 1, ..., n.
func indexTicks(n int) []float64 {
	t := make([]float64, n+1)
	for i := range t {
		t[i] = float64(i)
	}
	return t
}

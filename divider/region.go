package divider

import "fmt"

// Region is the half-open bin range [Start, End) between two adjacent
// dividers or a divider and an end of the bin range.
type Region struct {
	Start, End int
}

// Len is the number of bins in r.
func (r Region) Len() int { return r.End - r.Start }

// Contains reports whether bin lies in r.
func (r Region) Contains(bin int) bool { return bin >= r.Start && bin < r.End }

// Regions returns the K+1 regions induced by the current dividers. The
// first starts at 0 and the last ends at NumBins.
func (m *Model) Regions() []Region {
	return regions(m.indices, m.numBins)
}

func regions(indices []int, numBins int) []Region {
	rs := make([]Region, len(indices)+1)
	start := 0
	for i, d := range indices {
		rs[i] = Region{Start: start, End: d}
		start = d
	}
	rs[len(indices)] = Region{Start: start, End: numBins}
	return rs
}

// RegionOf returns the number of the region containing bin, or -1 if bin
// is outside every region.
func RegionOf(regions []Region, bin int) int {
	for i, r := range regions {
		if r.Contains(bin) {
			return i
		}
	}
	return -1
}

// SliceByRegions cuts labels, a slice running parallel to the bins at a
// finer granularity of scale labels per bin, into one sub-slice per
// region. Region [s, e) maps to labels[s*scale : e*scale], clamped to
// len(labels). The sub-slices share labels' backing array.
func SliceByRegions[T any](labels []T, regions []Region, scale int) ([][]T, error) {
	if scale < 1 {
		return nil, fmt.Errorf("SliceByRegions: scale %d: %w", scale, ErrInvalidParameter)
	}
	n := len(labels)
	parts := make([][]T, len(regions))
	for i, r := range regions {
		start := min(max(r.Start*scale, 0), n)
		end := min(max(r.End*scale, start), n)
		parts[i] = labels[start:end]
	}
	return parts, nil
}

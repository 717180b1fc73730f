// Package divider maintains an ordered set of draggable dividers over a
// sequence of numBins bins.
//
// A Model holds K divider indices d[0] <= ... <= d[K-1] in [0, numBins].
// Moving divider i keeps it strictly between its neighbours, which in
// turn splits [0, numBins] into K+1 contiguous regions.
//
// A Model is not safe for concurrent use; callers serialise moves against
// replacing the model.
package divider

import (
	"fmt"
	"math"
	"sort"
)

// IndexFunc maps a continuous pointer position to a candidate bin index.
type IndexFunc func(pos float64) int

// Model is the divider state of one widget.
type Model struct {
	indices  []int
	numBins  int
	dragging int // index of the divider being dragged, -1 if idle
}

// New sets up K = len(starts) dividers at the given bin indices.
func New(starts []int, numBins int) (*Model, error) {
	if numBins < 0 {
		return nil, fmt.Errorf("New: %d bins: %w", numBins, ErrInvalidParameter)
	}
	for i, s := range starts {
		if s < 0 || s > numBins {
			return nil, fmt.Errorf("New: divider %d at %d outside [0,%d]: %w",
				i, s, numBins, ErrInvalidDivider)
		}
		if i > 0 && s < starts[i-1] {
			return nil, fmt.Errorf("New: divider %d at %d before divider %d at %d: %w",
				i, s, i-1, starts[i-1], ErrInvalidDivider)
		}
	}

	m := &Model{
		indices:  make([]int, len(starts)),
		numBins:  numBins,
		dragging: -1,
	}
	copy(m.indices, starts)
	return m, nil
}

// Len is the number of dividers.
func (m *Model) Len() int { return len(m.indices) }

// NumBins is the number of bins the dividers partition.
func (m *Model) NumBins() int { return m.numBins }

// Index of divider i.
func (m *Model) Index(i int) int { return m.indices[i] }

// Indices returns a copy of the current divider positions.
func (m *Model) Indices() []int {
	c := make([]int, len(m.indices))
	copy(c, m.indices)
	return c
}

// Bounds returns the legal range [lo, hi] of divider i: one bin past its
// left neighbour up to one bin before its right neighbour, or the ends of
// the bin range for the outermost dividers. lo > hi if the neighbours
// leave no room.
func (m *Model) Bounds(i int) (lo, hi int) {
	lo, hi = 0, m.numBins
	if i > 0 {
		lo = m.indices[i-1] + 1
	}
	if i < len(m.indices)-1 {
		hi = m.indices[i+1] - 1
	}
	return lo, hi
}

// Move moves divider i towards the bin toIndex(pos), clamped to Bounds(i).
// It returns the resulting index and whether the divider actually moved.
// A divider whose neighbours leave no room stays where it is.
func (m *Model) Move(i int, pos float64, toIndex IndexFunc) (int, bool, error) {
	if i < 0 || i >= len(m.indices) {
		return 0, false, fmt.Errorf("Move: no divider %d of %d: %w", i, len(m.indices), ErrInvalidDivider)
	}
	if toIndex == nil {
		return m.indices[i], false, fmt.Errorf("Move: nil index function: %w", ErrInvalidParameter)
	}

	cur := m.indices[i]
	lo, hi := m.Bounds(i)
	if lo > hi {
		return cur, false, nil
	}
	idx := min(max(toIndex(pos), lo), hi)
	if idx == cur {
		return cur, false, nil
	}
	m.indices[i] = idx
	return idx, true, nil
}

// NearestTick returns an IndexFunc selecting the tick closest to pos.
// Ties go to the lower index. The ticks must be sorted ascending.
func NearestTick(ticks []float64) IndexFunc {
	return func(pos float64) int {
		n := len(ticks)
		if n == 0 || math.IsNaN(pos) {
			return 0
		}
		j := sort.SearchFloat64s(ticks, pos) // first tick >= pos
		switch {
		case j == 0:
			return 0
		case j == n:
			return n - 1
		}
		if ticks[j]-pos < pos-ticks[j-1] {
			return j
		}
		return j - 1
	}
}

package statvis

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Scale maps the continuous domain [DomainMin, DomainMax] linearly onto
// the pixel range [RangeMin, RangeMax]. The range may be inverted, e.g.
// for y axes growing downward.
type Scale struct {
	DomainMin, DomainMax float64
	RangeMin, RangeMax   float64
}

// NewScale sets up a scale with an untrained domain.
func NewScale(rangeMin, rangeMax float64) *Scale {
	return &Scale{
		DomainMin: math.Inf(+1),
		DomainMax: math.Inf(-1),
		RangeMin:  rangeMin,
		RangeMax:  rangeMax,
	}
}

// Train widens the domain of s to include all values.
func (s *Scale) Train(values ...float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s.DomainMin = math.Min(s.DomainMin, v)
		s.DomainMax = math.Max(s.DomainMax, v)
	}
}

// Pos maps x into the range. A domain of zero width maps everything to
// the middle of the range.
func (s *Scale) Pos(x float64) float64 {
	span := s.DomainMax - s.DomainMin
	if !(span > 0) {
		return (s.RangeMin + s.RangeMax) / 2
	}
	return s.RangeMin + (x-s.DomainMin)/span*(s.RangeMax-s.RangeMin)
}

// Invert maps the pixel position p back into the domain.
func (s *Scale) Invert(p float64) float64 {
	span := s.RangeMax - s.RangeMin
	if span == 0 || !(s.DomainMax >= s.DomainMin) {
		return s.DomainMin
	}
	return s.DomainMin + (p-s.RangeMin)/span*(s.DomainMax-s.DomainMin)
}

// Ticks returns n+1 equidistant domain values from DomainMin to DomainMax.
func (s *Scale) Ticks(n int) []float64 {
	if n < 1 || s.DomainMin > s.DomainMax {
		return nil
	}
	t := floats.Span(make([]float64, n+1), s.DomainMin, s.DomainMax)
	t[n] = s.DomainMax
	return t
}

// PosAll maps all values into the range.
func (s *Scale) PosAll(values []float64) []float64 {
	p := make([]float64, len(values))
	for i, v := range values {
		p[i] = s.Pos(v)
	}
	return p
}

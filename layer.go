package statvis

import (
	"image/color"
	"math"

	"github.com/vdobler/statvis/divider"
	"github.com/vdobler/statvis/stat"
)

// Bin is one bar of a widget: a histogram bin, an aggregated group or a
// single value. RangeStart and RangeEnd are the bin boundaries in data
// space, or sample positions for widgets over the value sequence.
type Bin struct {
	Index      int
	Value      float64
	RangeStart float64
	RangeEnd   float64
}

// Region is the range of bins [Start, End) between two dividers.
type Region struct {
	Index      int
	Start, End int
	Color      string
}

// Layer is everything a geom derives from one sample.
type Layer struct {
	Name          string
	Width, Height float64

	Values  []float64 // the resolved sample, in input order
	Summary stat.Summary

	// Fences and Outliers are set by the box plot only.
	Fences   *stat.Fences
	Outliers *stat.Outliers

	Bins []Bin

	// GroupSize is the number of sample positions per bin of widgets
	// over the value sequence, 1 for all others.
	GroupSize int

	// Ticks are the NumBins+1 positions a divider can take, in data space
	// (sample positions for the box slider). TickPos are the same in
	// pixels along the drag axis, which is y if Vertical.
	Ticks    []float64
	TickPos  []float64
	Vertical bool

	// Dividers and Regions are the divider state when the layer was
	// handed out. Widgets without dividers have no regions.
	Dividers divider.Snapshot
	Regions  []Region

	model   *divider.Model
	palette []string
	axis    *Scale // drag axis, maps Ticks to TickPos

	static  []Grob
	bars    []GrobRect // recoloured per region, one per divider bin
	handle  GrobRect   // template for divider handles at offset 0
	barFill color.Color
}

// HasDividers reports whether the layer has draggable dividers.
func (l *Layer) HasDividers() bool { return l.Dividers.Len() > 0 }

// DividerValues returns the tick value at each divider.
func (l *Layer) DividerValues() []float64 {
	idx := l.Dividers.Indices()
	v := make([]float64, len(idx))
	for i, j := range idx {
		v[i] = l.Ticks[j]
	}
	return v
}

// valueAt maps the pixel position pos along the drag axis back to data
// space, the space of Ticks. It is NaN for layers without dividers.
func (l *Layer) valueAt(pos float64) float64 {
	if l.axis == nil {
		return math.NaN()
	}
	return l.axis.Invert(pos)
}

// refresh updates the divider snapshot, the regions and the bar colours
// from the model.
func (l *Layer) refresh() {
	if l.model == nil {
		return
	}
	l.Dividers = l.model.Snapshot()
	regions := l.Dividers.Regions()
	l.Regions = make([]Region, len(regions))
	for i, r := range regions {
		l.Regions[i] = Region{
			Index: i,
			Start: r.Start,
			End:   r.End,
			Color: l.palette[i%len(l.palette)],
		}
	}
	for i := range l.bars {
		if j := divider.RegionOf(regions, i); j >= 0 {
			l.bars[i].Fill = String2Color(l.Regions[j].Color)
		} else {
			l.bars[i].Fill = l.barFill
		}
	}
}

// draggedAlpha is the opacity of the handle being dragged.
const draggedAlpha = 0.5

// Grobs returns the grobs of the layer in drawing order.
func (l *Layer) Grobs() []Grob {
	grobs := make([]Grob, 0, len(l.static)+len(l.bars)+l.Dividers.Len())
	grobs = append(grobs, l.static...)
	for _, b := range l.bars {
		grobs = append(grobs, b)
	}
	dragged, _ := l.Dividers.Dragging()
	for i, j := range l.Dividers.Indices() {
		h := l.handle
		if i == dragged {
			h.Fill = SetAlpha(h.Fill, draggedAlpha)
		}
		if l.Vertical {
			h.YMin += l.TickPos[j]
			h.YMax += l.TickPos[j]
		} else {
			h.XMin += l.TickPos[j]
			h.XMax += l.TickPos[j]
		}
		grobs = append(grobs, h)
	}
	return grobs
}

// clone returns a copy of l which shares no mutable state with it.
func (l *Layer) clone() *Layer {
	c := *l
	c.Regions = append([]Region(nil), l.Regions...)
	c.bars = append([]GrobRect(nil), l.bars...)
	c.model = nil
	return &c
}

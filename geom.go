package statvis

import (
	"fmt"
	"image/color"

	"github.com/vdobler/statvis/stat"
)

// Geom turns a sample into the Layer of one kind of widget.
type Geom interface {
	Info() GeomInfo

	// Construct validates values and opts and builds the layer. Zero
	// size and bin count fields of opts fall back to Info.
	Construct(values []float64, opts Options) (*Layer, error)
}

// GeomInfo describes a geom and its defaults.
type GeomInfo struct {
	Name          string  // Name of this Geom
	Width, Height float64 // Default size in pixels
	BinCount      int     // Default number of bins, 0 if not binned
	Dividers      bool    // Whether the widget has draggable dividers
}

// Geoms lists all geoms by the short name used on the command line.
var Geoms = map[string]Geom{
	"boxchart":  GeomBoxChart{},
	"boxplot":   GeomBoxPlot{},
	"histogram": GeomHistogram{},
	"line":      GeomLine{},
	"cluster":   GeomClusterDivider{},
	"boxslider": GeomBoxSlider{},
	"slider":    GeomDiscreteSlider{},
}

// newLayer validates opts and values and sets up the parts common to all
// layers. It returns the sorted sample too.
func newLayer(info GeomInfo, values []float64, opts Options) (*Layer, Options, []float64, error) {
	opts = opts.withDefaults(info)
	if err := opts.Validate(); err != nil {
		return nil, opts, nil, fmt.Errorf("%s: %w", info.Name, err)
	}
	summary, err := stat.Summarize(values)
	if err != nil {
		return nil, opts, nil, fmt.Errorf("%s: %w", info.Name, err)
	}
	l := &Layer{
		Name:      info.Name,
		Width:     opts.Width,
		Height:    opts.Height,
		Values:    append([]float64(nil), values...),
		Summary:   summary,
		GroupSize: 1,
		palette:   opts.ColorPalette,
		barFill:   String2Color(opts.BarColor),
	}
	return l, opts, sortedCopy(values), nil
}

// histogramBars draws one bar per bin of h between x positions of its
// ticks, inset on both sides, with heights scaled to [top, height].
func histogramBars(h stat.Histogram, x *Scale, height, top, inset float64, fill color.Color) []GrobRect {
	maxCount := 0
	for _, c := range h.Counts {
		maxCount = max(maxCount, c)
	}
	y := &Scale{DomainMin: 0, DomainMax: float64(maxCount), RangeMin: height, RangeMax: top}

	bars := make([]GrobRect, len(h.Counts))
	for i, c := range h.Counts {
		x0, x1 := x.Pos(h.Ticks[i]), x.Pos(h.Ticks[i+1])
		in := min(inset, (x1-x0)/2)
		ymin := height
		if c > 0 {
			ymin = y.Pos(float64(c))
		}
		bars[i] = GrobRect{XMin: x0 + in, XMax: x1 - in, YMin: ymin, YMax: height, Fill: fill}
	}
	return bars
}

// -------------------------------------------------------------------------
// Geom BoxChart

// GeomBoxChart draws one bar per value from the zero line, shaded by
// sign and magnitude.
type GeomBoxChart struct{}

var _ Geom = GeomBoxChart{}

func (GeomBoxChart) Info() GeomInfo {
	return GeomInfo{Name: "GeomBoxChart", Width: 300, Height: 100}
}

func (g GeomBoxChart) Construct(values []float64, opts Options) (*Layer, error) {
	l, opts, _, err := newLayer(g.Info(), values, opts)
	if err != nil {
		return nil, err
	}
	l.Bins = valueBins(values)

	lo, hi := min(l.Summary.Min, 0), max(l.Summary.Max, 0)
	y := &Scale{DomainMin: lo, DomainMax: hi, RangeMin: l.Height, RangeMax: 0}
	zero := y.Pos(0)
	bw := l.Width / float64(len(values))
	off := opts.BarOffsetRatio * bw / 2

	th := opts.Theme
	low0, low1 := String2Color(th.Low[0]), String2Color(th.Low[1])
	high0, high1 := String2Color(th.High[0]), String2Color(th.High[1])
	for i, v := range values {
		var fill color.Color
		if v < 0 {
			fill = Lerp(low0, low1, (v-lo)/(0-lo))
		} else {
			t := 0.0
			if hi > 0 {
				t = v / hi
			}
			fill = Lerp(high0, high1, t)
		}
		yv := y.Pos(v)
		l.static = append(l.static, GrobRect{
			XMin: float64(i)*bw + off,
			XMax: float64(i+1)*bw - off,
			YMin: min(zero, yv),
			YMax: max(zero, yv),
			Fill: fill,
		})
	}
	l.static = append(l.static, GrobLine{
		X0: 0, Y0: zero, X1: l.Width, Y1: zero,
		Color: String2Color(th.ZeroLine), Width: 1,
	})
	return l, nil
}

// -------------------------------------------------------------------------
// Geom BoxPlot

// GeomBoxPlot draws a vertical notched box plot with whiskers and
// outliers beyond the inner (hollow) and outer (filled) fences.
type GeomBoxPlot struct{}

var _ Geom = GeomBoxPlot{}

func (GeomBoxPlot) Info() GeomInfo {
	return GeomInfo{Name: "GeomBoxPlot", Width: 150, Height: 300}
}

// notchRatio is the depth of the notch relative to the smaller half box.
const notchRatio = 0.25

func (g GeomBoxPlot) Construct(values []float64, opts Options) (*Layer, error) {
	l, opts, sorted, err := newLayer(g.Info(), values, opts)
	if err != nil {
		return nil, err
	}
	f, o, err := boxplotStats(sorted, opts.Fences)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}
	l.Fences, l.Outliers = &f, &o

	pad := opts.Padding
	y := &Scale{
		DomainMin: l.Summary.Min, DomainMax: l.Summary.Max,
		RangeMin: l.Height - pad, RangeMax: pad,
	}
	cx, half := l.Width/2, l.Width/4
	x0, x1 := cx-half, cx+half
	notch := notchRatio * min(f.Q75-f.Median, f.Median-f.Q25)
	indent := half * notchRatio

	stroke := String2Color(opts.Theme.Stroke)
	fill := String2Color(opts.BarColor)
	yq1, yq3, ym := y.Pos(f.Q25), y.Pos(f.Q75), y.Pos(f.Median)
	yn1, yn3 := y.Pos(f.Median-notch), y.Pos(f.Median+notch)
	l.static = append(l.static,
		// Whiskers with caps.
		GrobLine{X0: cx, Y0: yq3, X1: cx, Y1: y.Pos(o.Whiskers[1]), Color: stroke, Width: 1},
		GrobLine{X0: cx, Y0: yq1, X1: cx, Y1: y.Pos(o.Whiskers[0]), Color: stroke, Width: 1},
		GrobLine{X0: cx - half/2, Y0: y.Pos(o.Whiskers[1]), X1: cx + half/2, Y1: y.Pos(o.Whiskers[1]), Color: stroke, Width: 1},
		GrobLine{X0: cx - half/2, Y0: y.Pos(o.Whiskers[0]), X1: cx + half/2, Y1: y.Pos(o.Whiskers[0]), Color: stroke, Width: 1},
		GrobPath{
			Points: []Point{
				{x0, yq3}, {x1, yq3}, {x1, yn3}, {x1 - indent, ym}, {x1, yn1},
				{x1, yq1}, {x0, yq1}, {x0, yn1}, {x0 + indent, ym}, {x0, yn3},
			},
			Closed: true, Color: stroke, Fill: fill, Width: 1,
		},
		GrobLine{X0: x0 + indent, Y0: ym, X1: x1 - indent, Y1: ym, Color: stroke, Width: 2},
	)

	outlier := String2Color(opts.Theme.Outlier)
	for _, v := range o.InnerFence {
		l.static = append(l.static, GrobCircle{X: cx, Y: y.Pos(v), R: 3, Stroke: outlier, Width: 1})
	}
	for _, v := range o.OuterFence {
		l.static = append(l.static, GrobCircle{X: cx, Y: y.Pos(v), R: 3, Stroke: outlier, Fill: outlier, Width: 1})
	}
	return l, nil
}

// -------------------------------------------------------------------------
// Geom Histogram

// GeomHistogram draws BinCount equally wide bins.
type GeomHistogram struct{}

var _ Geom = GeomHistogram{}

func (GeomHistogram) Info() GeomInfo {
	return GeomInfo{Name: "GeomHistogram", Width: 300, Height: 50, BinCount: 10}
}

func (g GeomHistogram) Construct(values []float64, opts Options) (*Layer, error) {
	l, opts, _, err := newLayer(g.Info(), values, opts)
	if err != nil {
		return nil, err
	}
	h, err := stat.HistogramBins(values, opts.BinCount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}
	l.Bins = histogramBins(h)
	l.Ticks = h.Ticks

	n := len(h.Counts)
	x := &Scale{DomainMin: h.Ticks[0], DomainMax: h.Ticks[n], RangeMin: 0, RangeMax: l.Width}
	l.TickPos = x.PosAll(h.Ticks)
	gap := opts.BarOffsetRatio * l.Width / float64(n) / 2
	for _, b := range histogramBars(h, x, l.Height, opts.Padding, gap, l.barFill) {
		l.static = append(l.static, b)
	}
	return l, nil
}

// -------------------------------------------------------------------------
// Geom Line

// GeomLine draws the values as a polyline over their position, with a
// zero line if zero lies within the value range.
type GeomLine struct{}

var _ Geom = GeomLine{}

func (GeomLine) Info() GeomInfo {
	return GeomInfo{Name: "GeomLine", Width: 300, Height: 50}
}

func (g GeomLine) Construct(values []float64, opts Options) (*Layer, error) {
	l, opts, _, err := newLayer(g.Info(), values, opts)
	if err != nil {
		return nil, err
	}
	l.Bins = valueBins(values)

	pad := opts.Padding
	x := &Scale{DomainMin: 0, DomainMax: float64(len(values) - 1), RangeMin: pad, RangeMax: l.Width - pad}
	y := &Scale{DomainMin: l.Summary.Min, DomainMax: l.Summary.Max, RangeMin: l.Height - pad, RangeMax: pad}

	if l.Summary.Min <= 0 && 0 <= l.Summary.Max {
		l.static = append(l.static, GrobLine{
			X0: 0, Y0: y.Pos(0), X1: l.Width, Y1: y.Pos(0),
			Color: String2Color(opts.Theme.ZeroLine), Width: 1,
		})
	}
	path := GrobPath{Color: String2Color(opts.Theme.Stroke), Width: 1.5}
	for i, v := range values {
		path.Points = append(path.Points, Point{x.Pos(float64(i)), y.Pos(v)})
	}
	if len(values) == 1 {
		// A single value still gets a visible segment.
		path.Points = append(path.Points, Point{l.Width - pad, y.Pos(values[0])})
		path.Points[0].X = pad
	}
	l.static = append(l.static, path)
	return l, nil
}

// -------------------------------------------------------------------------
// Geom ClusterDivider

// GeomClusterDivider draws a histogram with NumDividers draggable
// dividers on the bin boundaries. Bars take the colour of their region.
type GeomClusterDivider struct{}

var _ Geom = GeomClusterDivider{}

func (GeomClusterDivider) Info() GeomInfo {
	return GeomInfo{Name: "GeomClusterDivider", Width: 300, Height: 50, BinCount: 20, Dividers: true}
}

func (g GeomClusterDivider) Construct(values []float64, opts Options) (*Layer, error) {
	l, opts, sorted, err := newLayer(g.Info(), values, opts)
	if err != nil {
		return nil, err
	}
	h, err := stat.HistogramBins(values, opts.BinCount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}
	n := len(h.Counts)
	l.Bins = histogramBins(h)
	l.Ticks = h.Ticks

	pad := opts.Padding
	x := &Scale{DomainMin: h.Ticks[0], DomainMax: h.Ticks[n], RangeMin: pad / 2, RangeMax: l.Width - pad/2}
	l.TickPos = x.PosAll(h.Ticks)
	l.axis = x
	top := opts.BarOffsetRatio * l.Height
	l.bars = histogramBars(h, x, l.Height, top, pad/2, l.barFill)

	l.model, err = placeDividers(opts.StartIndices, opts.NumDividers, n, l.Ticks, quantileTarget(sorted))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}
	l.handle = GrobRect{XMin: -pad / 2, XMax: pad / 2, YMin: 0, YMax: l.Height, Fill: String2Color(opts.SliderColor)}
	l.refresh()
	return l, nil
}

// -------------------------------------------------------------------------
// Geom BoxSlider

// GeomBoxSlider draws the sample as horizontal bars of group means, top
// to bottom in sample order, with dividers dragged vertically between
// the bars. Regions map back to sample positions via the group size.
type GeomBoxSlider struct{}

var _ Geom = GeomBoxSlider{}

func (GeomBoxSlider) Info() GeomInfo {
	return GeomInfo{Name: "GeomBoxSlider", Width: 150, Height: 300, Dividers: true}
}

func (g GeomBoxSlider) Construct(values []float64, opts Options) (*Layer, error) {
	l, opts, _, err := newLayer(g.Info(), values, opts)
	if err != nil {
		return nil, err
	}
	means, size, err := stat.Aggregate(values, opts.GroupSize, opts.NumDividers+1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}
	n := len(means)
	l.GroupSize = size
	l.Bins = groupBins(means, size, len(values))
	l.Vertical = true

	l.Ticks = make([]float64, n+1)
	for j := range l.Ticks {
		l.Ticks[j] = float64(min(j*size, len(values)))
	}
	pad := opts.Padding
	pos := &Scale{DomainMin: 0, DomainMax: float64(n), RangeMin: pad / 2, RangeMax: l.Height - pad/2}
	l.TickPos = pos.PosAll(indexTicks(n))
	l.axis = &Scale{
		DomainMin: 0, DomainMax: float64(n) * float64(size),
		RangeMin: pos.RangeMin, RangeMax: pos.RangeMax,
	}

	x := NewScale(0.1*l.Width, l.Width)
	x.Train(means...)
	l.bars = make([]GrobRect, n)
	for i, m := range means {
		y0, y1 := l.TickPos[i], l.TickPos[i+1]
		in := min(pad/2, (y1-y0)/2)
		l.bars[i] = GrobRect{XMin: 0, XMax: x.Pos(m), YMin: y0 + in, YMax: y1 - in, Fill: l.barFill}
	}

	l.model, err = placeDividers(opts.StartIndices, opts.NumDividers, n, indexTicks(n), positionTarget(n))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}
	l.handle = GrobRect{XMin: 0, XMax: l.Width, YMin: -pad / 2, YMax: pad / 2, Fill: String2Color(opts.SliderColor)}
	l.refresh()
	return l, nil
}

// -------------------------------------------------------------------------
// Geom DiscreteSlider

// GeomDiscreteSlider is a range slider whose dividers snap to BinCount+1
// equidistant ticks over the value range. The track segments between
// dividers take the colour of their region.
type GeomDiscreteSlider struct{}

var _ Geom = GeomDiscreteSlider{}

func (GeomDiscreteSlider) Info() GeomInfo {
	return GeomInfo{Name: "GeomDiscreteSlider", Width: 300, Height: 30, BinCount: 10, Dividers: true}
}

func (g GeomDiscreteSlider) Construct(values []float64, opts Options) (*Layer, error) {
	l, opts, sorted, err := newLayer(g.Info(), values, opts)
	if err != nil {
		return nil, err
	}
	h, err := stat.HistogramBins(values, opts.BinCount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}
	n := len(h.Counts)
	l.Bins = histogramBins(h)

	pad := opts.Padding
	x := &Scale{DomainMin: h.Ticks[0], DomainMax: h.Ticks[n], RangeMin: pad / 2, RangeMax: l.Width - pad/2}
	l.Ticks = x.Ticks(n)
	l.TickPos = x.PosAll(l.Ticks)
	l.axis = x
	l.barFill = String2Color(opts.Theme.Background)
	l.bars = make([]GrobRect, n)
	for i := range l.bars {
		l.bars[i] = GrobRect{
			XMin: l.TickPos[i], XMax: l.TickPos[i+1],
			YMin: l.Height / 3, YMax: 2 * l.Height / 3,
			Fill: l.barFill,
		}
	}
	stroke := String2Color(opts.Theme.Stroke)
	for _, p := range l.TickPos {
		l.static = append(l.static, GrobLine{X0: p, Y0: l.Height / 4, X1: p, Y1: 3 * l.Height / 4, Color: stroke, Width: 0.5})
	}

	l.model, err = placeDividers(opts.StartIndices, opts.NumDividers, n, l.Ticks, quantileTarget(sorted))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}
	l.handle = GrobRect{XMin: -pad / 2, XMax: pad / 2, YMin: 0, YMax: l.Height, Fill: String2Color(opts.SliderColor)}
	l.refresh()
	return l, nil
}

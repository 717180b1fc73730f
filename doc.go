// Statvis provides the data side of small interactive chart widgets:
// box charts, box plots, histograms, line charts and range-divider
// sliders.
//
//
// Samples
//
// A widget draws one Sample, a sequence of finite float64 values. A
// sample is either known up front (Eager) or fetched once on first use
// (Deferred):
//      s := statvis.Eager{3, 1, 4, 1, 5}
//      d := statvis.NewDeferred(func() ([]float64, error) { return load(path) })
// NewSample converts other numeric slices ([]int, []float32, ...).
//
//
// Geoms and Layers
//
// A Geom turns the resolved sample into a Layer: the statistical summary
// (package stat), the derived bins, the divider model (package divider)
// and the grobs a rendering surface has to draw. There is one geom per
// widget kind, e.g. GeomBoxPlot or GeomClusterDivider.
//
//
// Widgets
//
// A Widget owns a geom, a sample and its Options. Build resolves the
// sample and constructs the layer, Update replaces the sample and throws
// away all divider state, BeginDrag/Move/End reposition dividers and
// recolour the regions between them. Render writes the current grobs as
// SVG through gonum's vg canvas. Rebuilds and drags on one widget are
// serialised.
//
package statvis

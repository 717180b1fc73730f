package statvis

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/vdobler/statvis/divider"
)

// Widget ties a geom to a sample. All methods are safe for concurrent
// use; a rebuild waits for a running Move and invalidates open drags.
type Widget struct {
	mu     sync.Mutex
	geom   Geom
	sample Sample
	opts   Options
	logger *slog.Logger

	layer      *Layer
	generation int // bumped on every build
}

// NewWidget validates opts for geom. The widget is drawn by Build.
func NewWidget(geom Geom, sample Sample, opts Options) (*Widget, error) {
	if geom == nil || sample == nil {
		return nil, fmt.Errorf("NewWidget: nil geom or sample: %w", ErrInvalidParameter)
	}
	opts = opts.withDefaults(geom.Info())
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("NewWidget: %w", err)
	}
	return &Widget{
		geom:   geom,
		sample: sample,
		opts:   opts,
		logger: opts.Logger.With("geom", geom.Info().Name),
	}, nil
}

// Build resolves the sample and constructs the layer. Any previous
// layer and its divider state are discarded, also if Build fails.
func (w *Widget) Build(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.build(ctx)
}

// Update replaces the sample and rebuilds.
func (w *Widget) Update(ctx context.Context, sample Sample) error {
	if sample == nil {
		return fmt.Errorf("Update: nil sample: %w", ErrInvalidParameter)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sample = sample
	return w.build(ctx)
}

func (w *Widget) build(ctx context.Context) error {
	w.layer = nil
	w.generation++

	values, err := w.sample.Resolve(ctx)
	if err != nil {
		w.logger.Debug("resolving sample failed", "error", err)
		return fmt.Errorf("Build: %w", err)
	}
	layer, err := w.geom.Construct(values, w.opts)
	if err != nil {
		w.logger.Debug("construct failed", "n", len(values), "error", err)
		return fmt.Errorf("Build: %w", err)
	}
	if n := len(layer.Regions); n > len(w.opts.ColorPalette) {
		w.logger.Warn("palette shorter than region count, colours repeat",
			"regions", n, "palette", len(w.opts.ColorPalette))
	}
	w.layer = layer
	w.logger.Debug("built",
		"n", len(values), "bins", len(layer.Bins), "dividers", layer.Dividers.Indices(),
		"generation", w.generation)
	return nil
}

// Layer returns a copy of the current layer or ErrNotBuilt.
func (w *Widget) Layer() (*Layer, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.layer == nil {
		return nil, ErrNotBuilt
	}
	return w.layer.clone(), nil
}

// Regions returns the current regions between the dividers.
func (w *Widget) Regions() ([]Region, error) {
	l, err := w.Layer()
	if err != nil {
		return nil, err
	}
	return l.Regions, nil
}

// Values returns the tick value at each divider, e.g. the selected
// range of a discrete slider.
func (w *Widget) Values() ([]float64, error) {
	l, err := w.Layer()
	if err != nil {
		return nil, err
	}
	return l.DividerValues(), nil
}

// Render writes the current layer as SVG.
func (w *Widget) Render(out io.Writer) error {
	w.mu.Lock()
	if w.layer == nil {
		w.mu.Unlock()
		return fmt.Errorf("Render: %w", ErrNotBuilt)
	}
	l := w.layer.clone()
	w.mu.Unlock()
	return RenderSVG(out, l.Width, l.Height, l.Grobs())
}

// SliceByRegions splits labels, one per sample position (or per bin for
// binned widgets), into one slice per region of w.
func SliceByRegions[T any](w *Widget, labels []T) ([][]T, error) {
	l, err := w.Layer()
	if err != nil {
		return nil, err
	}
	if !l.HasDividers() {
		return nil, fmt.Errorf("SliceByRegions: %w", ErrNoDividers)
	}
	return divider.SliceByRegions(labels, l.Dividers.Regions(), l.GroupSize)
}

// -------------------------------------------------------------------------
// Dragging

// Drag moves one divider of a widget with pointer positions in pixels
// along the layer's drag axis.
type Drag struct {
	w          *Widget
	d          *divider.Drag
	generation int
}

// BeginDrag starts dragging divider i.
func (w *Widget) BeginDrag(i int) (*Drag, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.layer == nil {
		return nil, fmt.Errorf("BeginDrag: %w", ErrNotBuilt)
	}
	if !w.layer.HasDividers() {
		return nil, fmt.Errorf("BeginDrag: %w", ErrNoDividers)
	}
	d, err := w.layer.model.BeginDrag(i)
	if err != nil {
		return nil, err
	}
	w.layer.refresh()
	w.logger.Debug("drag start", "divider", i)
	return &Drag{w: w, d: d, generation: w.generation}, nil
}

// Index of the dragged divider.
func (d *Drag) Index() int { return d.d.Index() }

// Move drags the divider to the tick nearest to the pixel position pos,
// within the limits set by its neighbours. It reports whether the
// divider moved.
func (d *Drag) Move(pos float64) (divider.Snapshot, bool, error) {
	w := d.w
	w.mu.Lock()
	defer w.mu.Unlock()
	if d.generation != w.generation || w.layer == nil {
		return divider.Snapshot{}, false, fmt.Errorf("Move: %w", ErrStaleDrag)
	}
	snap, changed, err := d.d.Move(pos, divider.NearestTick(w.layer.TickPos))
	if err != nil {
		return snap, false, err
	}
	if changed {
		w.layer.refresh()
		w.logger.Debug("drag move", "divider", d.d.Index(), "pos", pos,
			"value", w.layer.valueAt(pos), "dividers", snap.Indices())
	}
	return snap, changed, nil
}

// End finishes the drag. Ending a stale drag is a no-op returning
// ErrStaleDrag.
func (d *Drag) End() (divider.Snapshot, error) {
	w := d.w
	w.mu.Lock()
	defer w.mu.Unlock()
	if d.generation != w.generation || w.layer == nil {
		return divider.Snapshot{}, fmt.Errorf("End: %w", ErrStaleDrag)
	}
	snap := d.d.End()
	w.layer.refresh()
	w.logger.Debug("drag end", "divider", d.d.Index(), "dividers", snap.Indices())
	return snap, nil
}

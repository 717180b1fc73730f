package statvis

import (
	"errors"

	"github.com/vdobler/statvis/divider"
	"github.com/vdobler/statvis/stat"
)

// The error kinds of the statistics engine and the divider model.
var (
	ErrInvalidInput     = stat.ErrInvalidInput
	ErrInvalidParameter = stat.ErrInvalidParameter
	ErrInvalidDivider   = divider.ErrInvalidDivider

	// ErrDragInProgress is returned by BeginDrag while another divider
	// of the widget is dragged.
	ErrDragInProgress = divider.ErrDragInProgress
)

var (
	// ErrNotBuilt is returned by operations that need a built widget.
	ErrNotBuilt = errors.New("statvis: widget not built")

	// ErrNoDividers is returned when dragging on a widget without dividers.
	ErrNoDividers = errors.New("statvis: widget has no dividers")

	// ErrStaleDrag is returned when a drag is used after its widget has
	// been rebuilt.
	ErrStaleDrag = errors.New("statvis: drag outlived a rebuild")
)

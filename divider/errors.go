package divider

import "errors"

var (
	// ErrInvalidDivider is returned for start indices which are out of
	// order or out of [0, numBins], and for unknown divider numbers.
	ErrInvalidDivider = errors.New("divider: invalid divider")

	// ErrInvalidParameter is returned for bad arguments like a
	// negative bin count or a non-positive scale factor.
	ErrInvalidParameter = errors.New("divider: invalid parameter")

	// ErrDragInProgress is returned when a drag is started while another
	// divider is still being dragged.
	ErrDragInProgress = errors.New("divider: drag in progress")

	// ErrNotDragging is returned when a finished drag is moved.
	ErrNotDragging = errors.New("divider: not dragging")
)

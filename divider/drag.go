package divider

import "fmt"

// State of a single divider.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Snapshot is an immutable view of a Model taken after an operation.
type Snapshot struct {
	indices  []int
	numBins  int
	dragging int
}

// Snapshot captures the current state of m.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{indices: m.Indices(), numBins: m.numBins, dragging: m.dragging}
}

// Indices returns a copy of the divider positions.
func (s Snapshot) Indices() []int {
	c := make([]int, len(s.indices))
	copy(c, s.indices)
	return c
}

// Len is the number of dividers.
func (s Snapshot) Len() int { return len(s.indices) }

// NumBins of the snapshotted model.
func (s Snapshot) NumBins() int { return s.numBins }

// Regions induced by the snapshotted dividers.
func (s Snapshot) Regions() []Region { return regions(s.indices, s.numBins) }

// Dragging returns the divider being dragged and true, or -1 and false.
func (s Snapshot) Dragging() (int, bool) { return s.dragging, s.dragging >= 0 }

// State returns whether divider i is idle or being dragged.
func (m *Model) State(i int) State {
	if i == m.dragging {
		return Dragging
	}
	return Idle
}

// Drag tracks one divider between drag start and drag end.
type Drag struct {
	model *Model
	index int
	done  bool
}

// BeginDrag switches divider i from idle to dragging. Only one divider
// can be dragged at a time.
func (m *Model) BeginDrag(i int) (*Drag, error) {
	if i < 0 || i >= len(m.indices) {
		return nil, fmt.Errorf("BeginDrag: no divider %d of %d: %w", i, len(m.indices), ErrInvalidDivider)
	}
	if m.dragging >= 0 {
		return nil, fmt.Errorf("BeginDrag: divider %d: %w (divider %d)", i, ErrDragInProgress, m.dragging)
	}
	m.dragging = i
	return &Drag{model: m, index: i}, nil
}

// Index of the dragged divider.
func (d *Drag) Index() int { return d.index }

// Move repositions the dragged divider, see Model.Move. The returned
// bool reports whether the divider moved.
func (d *Drag) Move(pos float64, toIndex IndexFunc) (Snapshot, bool, error) {
	if d.done {
		return d.model.Snapshot(), false, fmt.Errorf("Move: divider %d: %w", d.index, ErrNotDragging)
	}
	_, changed, err := d.model.Move(d.index, pos, toIndex)
	return d.model.Snapshot(), changed, err
}

// End switches the divider back to idle. Calling End twice is harmless.
func (d *Drag) End() Snapshot {
	if !d.done {
		d.done = true
		if d.model.dragging == d.index {
			d.model.dragging = -1
		}
	}
	return d.model.Snapshot()
}

// Package warehouse holds the immutable grid snapshot of a puzzle: walls,
// targets, boxes, worker and per-box weights.
package warehouse

// Cell is a grid coordinate. X is the column, Y the row; the origin is the
// top-left corner and Y grows downward.
type Cell struct {
	X, Y int
}

func (c Cell) Add(d Cell) Cell { return Cell{c.X + d.X, c.Y + d.Y} }

// Manhattan returns the L1 distance between two cells.
func (c Cell) Manhattan(t Cell) int {
	return abs(c.X-t.X) + abs(c.Y-t.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Warehouse is a parsed puzzle instance. Walls, targets and weights are fixed
// for the lifetime of a puzzle; Boxes and Worker are the mutable snapshot.
// Box order is stable: Boxes[i] always carries Weights[i].
type Warehouse struct {
	Walls   map[Cell]struct{}
	Targets []Cell
	Boxes   []Cell
	Weights []int
	Worker  Cell

	Rows, Cols int

	targetSet map[Cell]struct{}
}

// InBounds reports whether c lies within the wall bounding box. An enclosed
// grid never lets the worker reach the boundary, so this only fires on
// malformed input.
func (w *Warehouse) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < w.Cols && c.Y < w.Rows
}

func (w *Warehouse) IsWall(c Cell) bool {
	_, ok := w.Walls[c]
	return ok
}

func (w *Warehouse) IsTarget(c Cell) bool {
	_, ok := w.targetSet[c]
	return ok
}

// BoxAt returns the index of the box occupying c, or -1.
func (w *Warehouse) BoxAt(c Cell) int {
	for i, b := range w.Boxes {
		if b == c {
			return i
		}
	}
	return -1
}

// Clone deep-copies the mutable snapshot. Walls, targets and weights are
// shared: they never change after parsing.
func (w *Warehouse) Clone() *Warehouse {
	cp := *w
	cp.Boxes = make([]Cell, len(w.Boxes))
	copy(cp.Boxes, w.Boxes)
	return &cp
}

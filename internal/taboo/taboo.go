// Package taboo computes the static set of cells that can never safely hold
// a box. Pushing a box onto such a cell makes the puzzle unsolvable, so the
// search prunes those pushes up front. Only walls and targets matter here:
// boxes and the worker (beyond seeding the reachability fill) are ignored.
package taboo

import (
	"sort"

	"sokoban/internal/warehouse"
)

// Set is a collection of taboo cells, computed once per puzzle instance and
// shared read-only afterwards.
type Set map[warehouse.Cell]struct{}

func (s Set) Contains(c warehouse.Cell) bool {
	_, ok := s[c]
	return ok
}

// Compute derives the taboo set for a warehouse.
//
// Rule 1: a reachable non-target corner is taboo.
// Rule 2: the cells strictly between two aligned taboo corners are taboo when
// an unbroken wall runs along the same side of the whole span and no cell in
// between is a wall or a target. A single broken cell voids the whole span.
func Compute(w *warehouse.Warehouse) Set {
	inside := insideCells(w)

	var corners []warehouse.Cell
	for c := range inside {
		if isCorner(w, c) {
			corners = append(corners, c)
		}
	}
	sort.Slice(corners, func(i, j int) bool {
		a, b := corners[i], corners[j]
		return a.Y*w.Cols+a.X < b.Y*w.Cols+b.X
	})

	out := make(Set)
	for _, c := range corners {
		if !w.IsTarget(c) {
			out[c] = struct{}{}
		}
	}
	for i, a := range corners {
		if w.IsTarget(a) {
			continue
		}
		for _, b := range corners[i+1:] {
			if w.IsTarget(b) {
				continue
			}
			for _, c := range wallSpan(w, a, b) {
				out[c] = struct{}{}
			}
		}
	}

	// Cells outside the reachable region are never taboo.
	for c := range out {
		if _, ok := inside[c]; !ok {
			delete(out, c)
		}
	}
	return out
}

// insideCells flood-fills from the worker, ignoring boxes, and returns every
// cell the worker could ever stand in. Worklist instead of recursion: large
// warehouses would blow the stack otherwise. The fill is clamped to the wall
// bounding box so an unenclosed grid still terminates.
func insideCells(w *warehouse.Warehouse) Set {
	inside := make(Set)
	stack := []warehouse.Cell{w.Worker}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.X < 0 || c.Y < 0 || c.X >= w.Cols || c.Y >= w.Rows {
			continue
		}
		if inside.Contains(c) || w.IsWall(c) {
			continue
		}
		inside[c] = struct{}{}
		stack = append(stack,
			warehouse.Cell{X: c.X, Y: c.Y - 1},
			warehouse.Cell{X: c.X, Y: c.Y + 1},
			warehouse.Cell{X: c.X - 1, Y: c.Y},
			warehouse.Cell{X: c.X + 1, Y: c.Y},
		)
	}
	return inside
}

// isCorner reports whether c has a wall neighbour on each axis. Diagonals do
// not matter.
func isCorner(w *warehouse.Warehouse, c warehouse.Cell) bool {
	wallX := w.IsWall(warehouse.Cell{X: c.X - 1, Y: c.Y}) || w.IsWall(warehouse.Cell{X: c.X + 1, Y: c.Y})
	wallY := w.IsWall(warehouse.Cell{X: c.X, Y: c.Y - 1}) || w.IsWall(warehouse.Cell{X: c.X, Y: c.Y + 1})
	return wallX && wallY
}

// wallSpan returns the cells strictly between two aligned corners, or nil if
// the pair contributes nothing: corners not aligned, adjacent, no shared wall
// side, or a span cell that is a wall, a target, or loses the wall on both
// sides.
func wallSpan(w *warehouse.Warehouse, a, b warehouse.Cell) []warehouse.Cell {
	switch {
	case a.X == b.X:
		// Vertical span; walls run on the left (x-1) or right (x+1) side.
		neg := w.IsWall(warehouse.Cell{X: a.X - 1, Y: a.Y}) && w.IsWall(warehouse.Cell{X: b.X - 1, Y: b.Y})
		pos := w.IsWall(warehouse.Cell{X: a.X + 1, Y: a.Y}) && w.IsWall(warehouse.Cell{X: b.X + 1, Y: b.Y})
		if !neg && !pos {
			return nil
		}
		return walk(w, a, b, warehouse.Cell{X: 0, Y: sign(b.Y - a.Y)}, warehouse.Cell{X: -1, Y: 0}, warehouse.Cell{X: 1, Y: 0}, neg, pos)
	case a.Y == b.Y:
		// Horizontal span; walls run above (y-1) or below (y+1).
		neg := w.IsWall(warehouse.Cell{X: a.X, Y: a.Y - 1}) && w.IsWall(warehouse.Cell{X: b.X, Y: b.Y - 1})
		pos := w.IsWall(warehouse.Cell{X: a.X, Y: a.Y + 1}) && w.IsWall(warehouse.Cell{X: b.X, Y: b.Y + 1})
		if !neg && !pos {
			return nil
		}
		return walk(w, a, b, warehouse.Cell{X: sign(b.X - a.X), Y: 0}, warehouse.Cell{X: 0, Y: -1}, warehouse.Cell{X: 0, Y: 1}, neg, pos)
	default:
		return nil
	}
}

func walk(w *warehouse.Warehouse, a, b, step, negSide, posSide warehouse.Cell, neg, pos bool) []warehouse.Cell {
	var cells []warehouse.Cell
	for c := a.Add(step); c != b; c = c.Add(step) {
		if w.IsWall(c) || w.IsTarget(c) {
			return nil
		}
		neg = neg && w.IsWall(c.Add(negSide))
		pos = pos && w.IsWall(c.Add(posSide))
		if !neg && !pos {
			return nil
		}
		cells = append(cells, c)
	}
	return cells
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

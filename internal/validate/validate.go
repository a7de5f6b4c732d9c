// Package validate replays an action sequence against a warehouse copy,
// independently of the search. It is both the post-hoc check for candidate
// solutions and the reference for what "legal" means: pushing onto a taboo
// cell is allowed here, since taboo is a search pruning device, not a game rule.
package validate

import (
	"errors"

	"sokoban/internal/puzzle"
	"sokoban/internal/warehouse"
)

// Impossible is the literal marker callers print for an illegal sequence or
// an unsolvable puzzle.
const Impossible = "Impossible"

// ErrImpossible reports an action sequence that walks into a wall, pushes a
// box into a wall, pushes two boxes at once, or leaves the grid bounds (only
// possible on an unenclosed grid).
var ErrImpossible = errors.New("impossible action sequence")

// ApplySequence replays actions on a copy of w (the caller's warehouse is
// never touched) and returns the rendered final grid. Any illegal action
// aborts with ErrImpossible.
func ApplySequence(w *warehouse.Warehouse, actions []puzzle.Action) (string, error) {
	cp := w.Clone()
	for _, a := range actions {
		d := a.Delta()
		dest := cp.Worker.Add(d)
		if !cp.InBounds(dest) || cp.IsWall(dest) {
			return "", ErrImpossible
		}
		if i := cp.BoxAt(dest); i >= 0 {
			beyond := dest.Add(d)
			if !cp.InBounds(beyond) || cp.IsWall(beyond) || cp.BoxAt(beyond) >= 0 {
				return "", ErrImpossible
			}
			cp.Boxes[i] = beyond
		}
		cp.Worker = dest
	}
	return cp.String(), nil
}

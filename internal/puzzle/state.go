package puzzle

import (
	"fmt"
	"strings"

	"sokoban/internal/warehouse"
)

// State is a search node: the worker cell plus the ordered box cells. Box
// order is identity: Boxes[i] keeps index i through every transition, so the
// weight sequence established at puzzle construction keeps lining up.
type State struct {
	Worker warehouse.Cell
	Boxes  []warehouse.Cell
}

// Key is a stable string form used for visited bookkeeping. Box order is
// preserved: boxes are distinguishable by weight, so permutations are
// distinct states.
func (s State) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d,%d", s.Worker.X, s.Worker.Y)
	for _, box := range s.Boxes {
		fmt.Fprintf(&b, "_%d,%d", box.X, box.Y)
	}
	return b.String()
}

// BoxAt returns the index of the box on c, or -1.
func (s State) BoxAt(c warehouse.Cell) int {
	for i, b := range s.Boxes {
		if b == c {
			return i
		}
	}
	return -1
}

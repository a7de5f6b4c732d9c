// Package puzzle defines the Sokoban state space: states, legal actions, the
// transition function, the goal test and path cost. It is pure: transitions
// return fresh states and never touch shared mutable data, so it is safe to
// drive from concurrent search workers.
package puzzle

import (
	"fmt"
	"slices"

	"sokoban/internal/taboo"
	"sokoban/internal/warehouse"
)

// Puzzle is one puzzle instance. The taboo set is computed once at
// construction and consulted by Actions to prune doomed pushes.
type Puzzle struct {
	w       *warehouse.Warehouse
	taboo   taboo.Set
	initial State
}

func New(w *warehouse.Warehouse) *Puzzle {
	return &Puzzle{
		w:     w,
		taboo: taboo.Compute(w),
		initial: State{
			Worker: w.Worker,
			Boxes:  slices.Clone(w.Boxes),
		},
	}
}

func (p *Puzzle) Initial() State         { return p.initial }
func (p *Puzzle) Taboo() taboo.Set       { return p.taboo }
func (p *Puzzle) Weights() []int         { return p.w.Weights }
func (p *Puzzle) Warehouse() *warehouse.Warehouse { return p.w }

// IsGoal reports whether every box sits on a target. Box and target counts
// match by construction, so coverage of the target set follows. The worker
// position is irrelevant.
func (p *Puzzle) IsGoal(s State) bool {
	for _, b := range s.Boxes {
		if !p.w.IsTarget(b) {
			return false
		}
	}
	return true
}

// Actions returns the legal moves in s, in Directions order. A step is legal
// when the destination is in bounds and not a wall, and a push additionally
// needs the cell beyond the box to be free of walls, boxes and taboo cells.
func (p *Puzzle) Actions(s State) []Action {
	var out []Action
	for _, a := range Directions {
		d := a.Delta()
		dest := s.Worker.Add(d)
		if !p.w.InBounds(dest) || p.w.IsWall(dest) {
			continue
		}
		if s.BoxAt(dest) >= 0 {
			beyond := dest.Add(d)
			if !p.w.InBounds(beyond) || p.w.IsWall(beyond) || p.taboo.Contains(beyond) || s.BoxAt(beyond) >= 0 {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// Result applies an action and returns the successor state. The input state
// is never mutated. Callers must only pass actions obtained from Actions;
// Result panics on a physically impossible move, since that is a programming
// error rather than a puzzle outcome.
func (p *Puzzle) Result(s State, a Action) State {
	d := a.Delta()
	dest := s.Worker.Add(d)
	if !p.w.InBounds(dest) || p.w.IsWall(dest) {
		panic(fmt.Sprintf("puzzle: illegal action %s from %s: wall at destination", a, s.Key()))
	}
	next := State{Worker: dest, Boxes: slices.Clone(s.Boxes)}
	if i := s.BoxAt(dest); i >= 0 {
		beyond := dest.Add(d)
		if !p.w.InBounds(beyond) || p.w.IsWall(beyond) || s.BoxAt(beyond) >= 0 {
			panic(fmt.Sprintf("puzzle: illegal action %s from %s: blocked push", a, s.Key()))
		}
		next.Boxes[i] = beyond
	}
	return next
}

// PathCost accumulates cost: one unit per worker move, plus the weight of the
// pushed box. The moved box is found by index comparison; exactly one box
// moves per valid transition.
func (p *Puzzle) PathCost(c int, s1 State, a Action, s2 State) int {
	cost := c + 1
	for i := range s1.Boxes {
		if s1.Boxes[i] != s2.Boxes[i] {
			cost += p.w.Weights[i]
			break
		}
	}
	return cost
}

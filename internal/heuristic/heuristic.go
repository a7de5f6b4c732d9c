// Package heuristic provides lower-bound estimators for the remaining cost of
// a puzzle state, used to order A* node expansion.
package heuristic

import (
	"sokoban/internal/puzzle"
	"sokoban/internal/warehouse"
)

// Estimator computes a non-negative estimate of the remaining cost to reach
// any goal from s.
type Estimator interface {
	Estimate(s puzzle.State) int
}

// NearestTarget sums, per box, the cheapest weighted Manhattan distance to
// any target. Targets may be claimed by several boxes at once, so the
// estimate is fast but not admissible; A* guided by it can return
// non-minimal-cost solutions.
type NearestTarget struct {
	targets []warehouse.Cell
	weights []int
}

func NewNearestTarget(w *warehouse.Warehouse) *NearestTarget {
	return &NearestTarget{targets: w.Targets, weights: w.Weights}
}

func (h *NearestTarget) Estimate(s puzzle.State) int {
	total := 0
	for i, box := range s.Boxes {
		best := -1
		for _, t := range h.targets {
			d := box.Manhattan(t) * (1 + h.weights[i])
			if best < 0 || d < best {
				best = d
			}
		}
		if best > 0 {
			total += best
		}
	}
	return total
}

// Assignment solves a minimum-cost box-to-target assignment over the same
// weighted Manhattan costs. Every target is claimed exactly once, which keeps
// the bound admissible; the price is an O(n³) assignment per call.
type Assignment struct {
	targets []warehouse.Cell
	weights []int
}

func NewAssignment(w *warehouse.Warehouse) *Assignment {
	return &Assignment{targets: w.Targets, weights: w.Weights}
}

func (h *Assignment) Estimate(s puzzle.State) int {
	n := len(s.Boxes)
	if n == 0 {
		return 0
	}
	cost := make([][]int, n)
	for i, box := range s.Boxes {
		row := make([]int, n)
		for j, t := range h.targets {
			row[j] = box.Manhattan(t) * (1 + h.weights[i])
		}
		cost[i] = row
	}
	return minCostAssignment(cost)
}

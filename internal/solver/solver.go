// Package solver is the top level: it wires the puzzle, heuristic, search,
// validator and cache together. It is the single place where unsolvability
// surfaces as a value (ErrImpossible) rather than a fatal condition.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sokoban/internal/cache"
	"sokoban/internal/config"
	"sokoban/internal/ctxlog"
	"sokoban/internal/heuristic"
	"sokoban/internal/puzzle"
	"sokoban/internal/search"
	"sokoban/internal/validate"
	"sokoban/internal/warehouse"
)

// ErrImpossible reports that the puzzle has no solution (or that none was
// found within the configured limits, which callers must treat the same).
var ErrImpossible = errors.New("puzzle is impossible")

// Options tunes a solve. The zero value means: assignment heuristic, no
// node cap, no cache, verify the result.
type Options struct {
	// Heuristic is config.HeuristicAssignment (default) or
	// config.HeuristicNearest. The nearest-target sum is faster per node but
	// not admissible, so it can return a non-minimal-cost solution.
	Heuristic string
	// NodeLimit caps A* node expansions; 0 means unlimited.
	NodeLimit int
	// Cache, when set, is consulted before searching and updated after.
	Cache *cache.Store
	// SkipVerify disables the post-hoc validator replay of the solution.
	SkipVerify bool
}

// Solution is a successful solve. An already-solved puzzle yields an empty
// action list at cost zero.
type Solution struct {
	Actions   []puzzle.Action
	Cost      int
	Expanded  int
	FromCache bool
}

// domain glues the puzzle and a swappable estimator into the search contract.
type domain struct {
	p *puzzle.Puzzle
	h heuristic.Estimator
}

func (d domain) Initial() puzzle.State                  { return d.p.Initial() }
func (d domain) Actions(s puzzle.State) []puzzle.Action { return d.p.Actions(s) }
func (d domain) IsGoal(s puzzle.State) bool             { return d.p.IsGoal(s) }
func (d domain) Heuristic(s puzzle.State) int           { return d.h.Estimate(s) }

func (d domain) Result(s puzzle.State, a puzzle.Action) puzzle.State {
	return d.p.Result(s, a)
}

func (d domain) PathCost(c int, s1 puzzle.State, a puzzle.Action, s2 puzzle.State) int {
	return d.p.PathCost(c, s1, a, s2)
}

// Solve finds a minimal-cost action sequence for w, or ErrImpossible. The
// context owns any deadline; hitting it counts as unsolvable.
func Solve(ctx context.Context, w *warehouse.Warehouse, opts Options) (*Solution, error) {
	log := ctxlog.From(ctx)

	if opts.Cache != nil {
		if sol, ok := fromCache(w, opts.Cache, log); ok {
			return sol, nil
		}
	}

	est, err := newEstimator(opts.Heuristic, w)
	if err != nil {
		return nil, err
	}

	p := puzzle.New(w)
	log.Debug("puzzle constructed",
		"boxes", len(w.Boxes), "targets", len(w.Targets), "taboo_cells", len(p.Taboo()))

	start := time.Now()
	res, err := search.AStar[puzzle.State, puzzle.Action](ctx, domain{p: p, h: est},
		search.WithNodeLimit(opts.NodeLimit))
	switch {
	case err == nil:
	case errors.Is(err, search.ErrNoSolution),
		errors.Is(err, search.ErrLimitReached),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		log.Info("no solution found", "reason", err)
		return nil, ErrImpossible
	default:
		return nil, err
	}
	log.Info("solved",
		"cost", res.Cost, "moves", len(res.Actions), "expanded", res.Expanded,
		"elapsed", time.Since(start))

	sol := &Solution{Actions: res.Actions, Cost: res.Cost, Expanded: res.Expanded}
	if !opts.SkipVerify {
		if err := verify(w, sol); err != nil {
			return nil, err
		}
	}
	if opts.Cache != nil {
		entry := &cache.Entry{Actions: sol.Actions, Cost: sol.Cost}
		if err := opts.Cache.Put(w, entry); err != nil {
			log.Warn("cache store failed", "error", err)
		}
	}
	return sol, nil
}

func newEstimator(name string, w *warehouse.Warehouse) (heuristic.Estimator, error) {
	switch name {
	case "", config.HeuristicAssignment:
		return heuristic.NewAssignment(w), nil
	case config.HeuristicNearest:
		return heuristic.NewNearestTarget(w), nil
	}
	return nil, fmt.Errorf("unknown heuristic %q", name)
}

// verify replays the plan through the independent validator; a disagreement
// means a solver bug, not a puzzle property.
func verify(w *warehouse.Warehouse, sol *Solution) error {
	if _, err := validate.ApplySequence(w, sol.Actions); err != nil {
		return fmt.Errorf("solution failed validation: %w", err)
	}
	return nil
}

// fromCache returns a cached solution if present and still replayable.
func fromCache(w *warehouse.Warehouse, store *cache.Store, log *slog.Logger) (*Solution, bool) {
	entry, ok, err := store.Get(w)
	if err != nil {
		log.Warn("cache lookup failed", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if _, err := validate.ApplySequence(w, entry.Actions); err != nil {
		log.Warn("cached solution no longer validates, ignoring")
		return nil, false
	}
	log.Debug("cache hit", "cost", entry.Cost, "moves", len(entry.Actions))
	return &Solution{Actions: entry.Actions, Cost: entry.Cost, FromCache: true}, true
}

// Package search implements A* graph search over a generic problem domain.
// The puzzle plugs in behind the Domain interface; nothing in here knows
// about Sokoban.
package search

import (
	"container/heap"
	"context"
	"errors"
	"slices"
)

var (
	// ErrNoSolution means the reachable state space was exhausted without
	// finding a goal.
	ErrNoSolution = errors.New("search: no solution")
	// ErrLimitReached means the node expansion cap ran out first.
	ErrLimitReached = errors.New("search: node limit reached")
)

// State is anything with a stable identity string for visited bookkeeping.
type State interface {
	Key() string
}

// Domain is the capability contract a problem exposes to the search: initial
// state, action enumeration, transition, goal test, accumulated path cost and
// a heuristic estimate. Implementations must be referentially transparent.
type Domain[S State, A any] interface {
	Initial() S
	Actions(s S) []A
	Result(s S, a A) S
	IsGoal(s S) bool
	PathCost(c int, from S, a A, to S) int
	Heuristic(s S) int
}

// Result is a found plan.
type Result[A any] struct {
	Actions  []A
	Cost     int
	Expanded int
}

type Option func(*options)

type options struct {
	nodeLimit int
}

// WithNodeLimit caps the number of node expansions; 0 means no cap.
func WithNodeLimit(n int) Option {
	return func(o *options) { o.nodeLimit = n }
}

// node carries the parent chain for plan reconstruction.
type node[S State, A any] struct {
	state  S
	action A
	parent *node[S, A]
	g, f   int
}

// AStar runs best-first graph search ordered by g+h. With an admissible
// heuristic the returned plan has minimal cost. An already-solved initial
// state yields an empty plan at cost zero.
func AStar[S State, A any](ctx context.Context, d Domain[S, A], opts ...Option) (*Result[A], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	start := d.Initial()
	open := &queue[S, A]{{state: start, g: 0, f: d.Heuristic(start)}}
	heap.Init(open)

	best := map[string]int{start.Key(): 0}
	closed := make(map[string]bool)
	expanded := 0

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n := heap.Pop(open).(*node[S, A])
		key := n.state.Key()
		if closed[key] {
			continue
		}
		if d.IsGoal(n.state) {
			return &Result[A]{Actions: backtrack(n), Cost: n.g, Expanded: expanded}, nil
		}
		closed[key] = true

		expanded++
		if o.nodeLimit > 0 && expanded > o.nodeLimit {
			return nil, ErrLimitReached
		}

		for _, a := range d.Actions(n.state) {
			next := d.Result(n.state, a)
			nextKey := next.Key()
			if closed[nextKey] {
				continue
			}
			g := d.PathCost(n.g, n.state, a, next)
			if prev, ok := best[nextKey]; ok && g >= prev {
				continue
			}
			best[nextKey] = g
			heap.Push(open, &node[S, A]{
				state:  next,
				action: a,
				parent: n,
				g:      g,
				f:      g + d.Heuristic(next),
			})
		}
	}
	return nil, ErrNoSolution
}

// backtrack walks the parent chain to the root and returns the actions in
// execution order.
func backtrack[S State, A any](n *node[S, A]) []A {
	actions := []A{}
	for ; n.parent != nil; n = n.parent {
		actions = append(actions, n.action)
	}
	slices.Reverse(actions)
	return actions
}

// queue is a min-heap on f.
type queue[S State, A any] []*node[S, A]

func (q queue[S, A]) Len() int           { return len(q) }
func (q queue[S, A]) Less(i, j int) bool { return q[i].f < q[j].f }
func (q queue[S, A]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *queue[S, A]) Push(x any) { *q = append(*q, x.(*node[S, A])) }

func (q *queue[S, A]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

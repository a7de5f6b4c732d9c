package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokoban/internal/warehouse"
)

const weightedGrid = `2
#######
#.    #
#  $  #
#  @  #
#######`

func newPuzzle(t *testing.T, grid string) *Puzzle {
	t.Helper()
	w, err := warehouse.Parse(grid)
	require.NoError(t, err)
	return New(w)
}

func TestInitialState(t *testing.T) {
	p := newPuzzle(t, weightedGrid)
	s := p.Initial()
	assert.Equal(t, warehouse.Cell{X: 3, Y: 3}, s.Worker)
	assert.Equal(t, []warehouse.Cell{{X: 3, Y: 2}}, s.Boxes)
	assert.Equal(t, []int{2}, p.Weights())
}

func TestActionsOrderAndPruning(t *testing.T) {
	p := newPuzzle(t, weightedGrid)

	// Down walks into the bottom wall; the other three moves are free steps
	// or a safe push, in enumeration order.
	assert.Equal(t, []Action{Left, Right, Up}, p.Actions(p.Initial()))
}

func TestTabooPushPruned(t *testing.T) {
	p := newPuzzle(t, `#####
#@$ #
#  .#
#####`)

	// Right would push the box into the top-right corner. The step survives
	// physically but the taboo set prunes it, leaving Down as the only move.
	assert.Equal(t, []Action{Down}, p.Actions(p.Initial()))
}

func TestResultPush(t *testing.T) {
	p := newPuzzle(t, weightedGrid)
	s := p.Initial()

	s2 := p.Result(s, Up)
	assert.Equal(t, warehouse.Cell{X: 3, Y: 2}, s2.Worker)
	assert.Equal(t, []warehouse.Cell{{X: 3, Y: 1}}, s2.Boxes)
	assert.Equal(t, 3, p.PathCost(0, s, Up, s2), "push costs one move plus the box weight")

	// The input state is untouched.
	assert.Equal(t, warehouse.Cell{X: 3, Y: 3}, s.Worker)
	assert.Equal(t, []warehouse.Cell{{X: 3, Y: 2}}, s.Boxes)
}

func TestResultStep(t *testing.T) {
	p := newPuzzle(t, weightedGrid)
	s := p.Initial()

	s2 := p.Result(s, Left)
	assert.Equal(t, warehouse.Cell{X: 2, Y: 3}, s2.Worker)
	assert.Equal(t, s.Boxes, s2.Boxes)
	assert.Equal(t, 1, p.PathCost(0, s, Left, s2))
	assert.Equal(t, 6, p.PathCost(5, s, Left, s2))
}

func TestActionsStayInBounds(t *testing.T) {
	// The top wall has a gap; moves through it must stop at the bounding box
	// instead of wandering off-grid.
	p := newPuzzle(t, `## ##
#@  #
#####`)

	s := p.Result(p.Result(p.Initial(), Right), Up)
	assert.Equal(t, warehouse.Cell{X: 2, Y: 0}, s.Worker)
	assert.Equal(t, []Action{Down}, p.Actions(s))
	require.Panics(t, func() { p.Result(s, Up) })
}

func TestResultPanicsOnIllegalMove(t *testing.T) {
	p := newPuzzle(t, weightedGrid)

	require.Panics(t, func() { p.Result(p.Initial(), Down) })

	// Pushing the box into the top wall is equally illegal.
	s := p.Result(p.Initial(), Up)
	require.Panics(t, func() { p.Result(s, Up) })
}

func TestTransitionMovesAtMostOneBox(t *testing.T) {
	p := newPuzzle(t, `#######
#@$  .#
# $  .#
#######`)

	s := p.Initial()
	for _, a := range p.Actions(s) {
		s2 := p.Result(s, a)
		moved := 0
		for i := range s.Boxes {
			if s.Boxes[i] != s2.Boxes[i] {
				moved++
			}
		}
		assert.LessOrEqual(t, moved, 1, "action %s moved %d boxes", a, moved)
		assert.Len(t, s2.Boxes, len(s.Boxes))
	}
}

func TestIsGoalIgnoresWorker(t *testing.T) {
	p := newPuzzle(t, weightedGrid)

	assert.False(t, p.IsGoal(p.Initial()))

	done := State{Worker: warehouse.Cell{X: 2, Y: 1}, Boxes: []warehouse.Cell{{X: 1, Y: 1}}}
	assert.True(t, p.IsGoal(done))

	elsewhere := State{Worker: warehouse.Cell{X: 4, Y: 3}, Boxes: []warehouse.Cell{{X: 1, Y: 1}}}
	assert.True(t, p.IsGoal(elsewhere))
}

func TestStateKey(t *testing.T) {
	a := State{Worker: warehouse.Cell{X: 1, Y: 2}, Boxes: []warehouse.Cell{{X: 3, Y: 4}, {X: 5, Y: 6}}}
	b := State{Worker: warehouse.Cell{X: 1, Y: 2}, Boxes: []warehouse.Cell{{X: 5, Y: 6}, {X: 3, Y: 4}}}

	assert.Equal(t, a.Key(), State{Worker: a.Worker, Boxes: []warehouse.Cell{{X: 3, Y: 4}, {X: 5, Y: 6}}}.Key())
	assert.NotEqual(t, a.Key(), b.Key(), "box identity is positional")
}

func TestParseSequence(t *testing.T) {
	got, err := ParseSequence([]string{"Up", "Left", "Down", "Right"})
	require.NoError(t, err)
	assert.Equal(t, []Action{Up, Left, Down, Right}, got)

	_, err = ParseSequence([]string{"Up", "left"})
	assert.Error(t, err)
}

func TestDeltaPanicsOnUnknownAction(t *testing.T) {
	require.Panics(t, func() { Action("Sideways").Delta() })
}

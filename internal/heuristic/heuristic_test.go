package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokoban/internal/puzzle"
	"sokoban/internal/warehouse"
)

func parse(t *testing.T, grid string) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.Parse(grid)
	require.NoError(t, err)
	return w
}

func TestNearestTargetSharesTargets(t *testing.T) {
	w := parse(t, `1 0
########
#@     #
# $.$ .#
########`)
	s := puzzle.New(w).Initial()

	// Both boxes claim the near target: 1*(1+1) for the heavy box plus
	// 1*(1+0) for the light one.
	assert.Equal(t, 3, NewNearestTarget(w).Estimate(s))

	// The assignment estimator forces distinct targets: heavy box to the
	// near target, light box two cells to the far one.
	assert.Equal(t, 4, NewAssignment(w).Estimate(s))
}

func TestEstimateZeroAtGoal(t *testing.T) {
	w := parse(t, `#####
#@* #
#####`)
	s := puzzle.New(w).Initial()

	assert.Zero(t, NewNearestTarget(w).Estimate(s))
	assert.Zero(t, NewAssignment(w).Estimate(s))
}

func TestWeightedDistance(t *testing.T) {
	w := parse(t, `2
#######
#.    #
#  $  #
#  @  #
#######`)
	s := puzzle.New(w).Initial()

	// One box, distance 3, weight 2: both estimators agree on 3*(1+2),
	// which stays below the true solution cost of 11.
	assert.Equal(t, 9, NewNearestTarget(w).Estimate(s))
	assert.Equal(t, 9, NewAssignment(w).Estimate(s))
}

func TestMinCostAssignment(t *testing.T) {
	cases := []struct {
		name string
		cost [][]int
		want int
	}{
		{"empty", nil, 0},
		{"single", [][]int{{7}}, 7},
		{"two by two", [][]int{{4, 1}, {2, 0}}, 3},
		{"three by three", [][]int{{7, 5, 11}, {5, 4, 1}, {9, 3, 2}}, 11},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, minCostAssignment(tc.cost))
		})
	}
}

package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallGrid = `#######
#.    #
#  $  #
#  @  #
#######`

func TestParse(t *testing.T) {
	w, err := Parse(smallGrid)
	require.NoError(t, err)

	assert.Equal(t, 5, w.Rows)
	assert.Equal(t, 7, w.Cols)
	assert.Equal(t, Cell{3, 3}, w.Worker)
	assert.Equal(t, []Cell{{3, 2}}, w.Boxes)
	assert.Equal(t, []Cell{{1, 1}}, w.Targets)
	assert.Equal(t, []int{0}, w.Weights)
	assert.True(t, w.IsWall(Cell{0, 0}))
	assert.True(t, w.IsTarget(Cell{1, 1}))
	assert.False(t, w.IsTarget(Cell{2, 2}))
	assert.Equal(t, 0, w.BoxAt(Cell{3, 2}))
	assert.Equal(t, -1, w.BoxAt(Cell{3, 3}))
}

func TestParseWeightLine(t *testing.T) {
	w, err := Parse("2\n" + smallGrid)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, w.Weights)
	assert.Equal(t, 5, w.Rows, "weight line must not count as a grid row")
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"no worker":       "####\n#$.#\n####",
		"two workers":     "#####\n#@@.#\n##$##\n#####",
		"count mismatch":  "#####\n#@$ #\n#####",
		"weight mismatch": "1 2\n" + smallGrid,
		"no walls":        "@",
		"bad character":   "####\n#@?#\n####",
	}
	for name, grid := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(grid)
			assert.Error(t, err)
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	w, err := Parse(smallGrid)
	require.NoError(t, err)
	assert.Equal(t, smallGrid, w.String())
}

func TestRenderAllCharacters(t *testing.T) {
	grid := "#####\n#!*$#\n# $.#\n#####"
	w, err := Parse(grid)
	require.NoError(t, err)
	assert.Equal(t, grid, w.String())
}

func TestParseRaggedRows(t *testing.T) {
	w, err := Parse("####\n#@ #\n#####")
	require.NoError(t, err)
	assert.Equal(t, 5, w.Cols)
	assert.Equal(t, 3, w.Rows)
}

func TestCloneIsIndependent(t *testing.T) {
	w, err := Parse(smallGrid)
	require.NoError(t, err)

	cp := w.Clone()
	cp.Worker = Cell{1, 2}
	cp.Boxes[0] = Cell{4, 2}

	assert.Equal(t, Cell{3, 3}, w.Worker)
	assert.Equal(t, Cell{3, 2}, w.Boxes[0])
}

func TestInBounds(t *testing.T) {
	w, err := Parse(smallGrid)
	require.NoError(t, err)

	assert.True(t, w.InBounds(Cell{0, 0}))
	assert.True(t, w.InBounds(Cell{6, 4}))
	assert.False(t, w.InBounds(Cell{-1, 0}))
	assert.False(t, w.InBounds(Cell{0, -1}))
	assert.False(t, w.InBounds(Cell{7, 0}))
	assert.False(t, w.InBounds(Cell{0, 5}))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Cell{2, 3}.Manhattan(Cell{2, 3}))
	assert.Equal(t, 5, Cell{1, 1}.Manhattan(Cell{3, 4}))
	assert.Equal(t, 5, Cell{3, 4}.Manhattan(Cell{1, 1}))
}

package taboo

import (
	"strings"

	"sokoban/internal/warehouse"
)

// Render draws the taboo analysis: walls as '#', taboo cells as 'X' and
// everything else as a space. Dynamic puzzle state (boxes, worker, targets)
// is deliberately absent.
func Render(w *warehouse.Warehouse, s Set) string {
	var b strings.Builder
	for y := 0; y < w.Rows; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w.Cols; x++ {
			c := warehouse.Cell{X: x, Y: y}
			switch {
			case w.IsWall(c):
				b.WriteByte(warehouse.WallChar)
			case s.Contains(c):
				b.WriteByte('X')
			default:
				b.WriteByte(warehouse.FloorChar)
			}
		}
	}
	return b.String()
}

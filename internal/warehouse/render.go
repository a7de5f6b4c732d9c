package warehouse

import "strings"

// String renders the warehouse in its canonical text form: the rectangular
// bounding box of the walls, rows joined by newlines, no trailing newline.
func (w *Warehouse) String() string {
	grid := make([][]byte, w.Rows)
	for y := range grid {
		row := make([]byte, w.Cols)
		for x := range row {
			row[x] = FloorChar
		}
		grid[y] = row
	}

	for _, t := range w.Targets {
		grid[t.Y][t.X] = TargetChar
	}
	for _, b := range w.Boxes {
		if w.IsTarget(b) {
			grid[b.Y][b.X] = BoxOnTargetChar
		} else {
			grid[b.Y][b.X] = BoxChar
		}
	}
	if w.IsTarget(w.Worker) {
		grid[w.Worker.Y][w.Worker.X] = WorkerOnTargetChar
	} else {
		grid[w.Worker.Y][w.Worker.X] = WorkerChar
	}
	for c := range w.Walls {
		grid[c.Y][c.X] = WallChar
	}

	rows := make([]string, len(grid))
	for y, row := range grid {
		rows[y] = string(row)
	}
	return strings.Join(rows, "\n")
}

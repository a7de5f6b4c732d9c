package warehouse

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Grid characters, shared with the renderer.
const (
	WallChar           = '#'
	FloorChar          = ' '
	TargetChar         = '.'
	BoxChar            = '$'
	WorkerChar         = '@'
	BoxOnTargetChar    = '*'
	WorkerOnTargetChar = '!'
)

// Parse builds a warehouse from its text form. The first line may carry the
// box weights as whitespace-separated integers; without it every box weighs
// zero. Rows may be ragged.
func Parse(text string) (*Warehouse, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	var weights []int
	if len(lines) > 0 {
		if ws, ok := parseWeights(lines[0]); ok {
			weights = ws
			lines = lines[1:]
		}
	}

	w := &Warehouse{
		Walls:     make(map[Cell]struct{}),
		targetSet: make(map[Cell]struct{}),
	}
	workers := 0
	for y, line := range lines {
		for x, ch := range line {
			c := Cell{x, y}
			switch ch {
			case WallChar:
				w.Walls[c] = struct{}{}
			case FloorChar:
			case TargetChar:
				w.addTarget(c)
			case BoxChar:
				w.Boxes = append(w.Boxes, c)
			case WorkerChar:
				w.Worker = c
				workers++
			case BoxOnTargetChar:
				w.Boxes = append(w.Boxes, c)
				w.addTarget(c)
			case WorkerOnTargetChar:
				w.Worker = c
				w.addTarget(c)
				workers++
			default:
				return nil, fmt.Errorf("unknown grid character %q at (%d,%d)", ch, x, y)
			}
		}
	}

	if len(w.Walls) == 0 {
		return nil, fmt.Errorf("grid has no walls")
	}
	if workers != 1 {
		return nil, fmt.Errorf("grid must contain exactly one worker, found %d", workers)
	}
	if len(w.Boxes) != len(w.Targets) {
		return nil, fmt.Errorf("box count %d does not match target count %d", len(w.Boxes), len(w.Targets))
	}
	switch {
	case weights == nil:
		w.Weights = make([]int, len(w.Boxes))
	case len(weights) != len(w.Boxes):
		return nil, fmt.Errorf("weight count %d does not match box count %d", len(weights), len(w.Boxes))
	default:
		w.Weights = weights
	}

	for c := range w.Walls {
		if c.X >= w.Cols {
			w.Cols = c.X + 1
		}
		if c.Y >= w.Rows {
			w.Rows = c.Y + 1
		}
	}
	// Stable target order for estimators and rendering.
	sort.Slice(w.Targets, func(i, j int) bool {
		a, b := w.Targets[i], w.Targets[j]
		return a.Y*w.Cols+a.X < b.Y*w.Cols+b.X
	})
	return w, nil
}

// LoadFile reads and parses a warehouse file.
func LoadFile(path string) (*Warehouse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load warehouse: %w", err)
	}
	w, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("load warehouse %s: %w", path, err)
	}
	return w, nil
}

func (w *Warehouse) addTarget(c Cell) {
	w.Targets = append(w.Targets, c)
	w.targetSet[c] = struct{}{}
}

// parseWeights reports whether line is a weight header: at least one token
// and nothing but integers.
func parseWeights(line string) ([]int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}
	ws := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, false
		}
		ws[i] = n
	}
	return ws, true
}

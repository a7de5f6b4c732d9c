package puzzle

import (
	"fmt"

	"sokoban/internal/warehouse"
)

// Action is one of the four worker moves. The labels are part of the solve
// contract and are case-sensitive.
type Action string

const (
	Left  Action = "Left"
	Right Action = "Right"
	Up    Action = "Up"
	Down  Action = "Down"
)

// Directions is the fixed enumeration order used everywhere actions are
// generated, so action lists are deterministic.
var Directions = []Action{Left, Right, Up, Down}

// Delta returns the unit coordinate offset of the action.
func (a Action) Delta() warehouse.Cell {
	switch a {
	case Left:
		return warehouse.Cell{X: -1, Y: 0}
	case Right:
		return warehouse.Cell{X: 1, Y: 0}
	case Up:
		return warehouse.Cell{X: 0, Y: -1}
	case Down:
		return warehouse.Cell{X: 0, Y: 1}
	}
	panic(fmt.Sprintf("puzzle: unknown action %q", string(a)))
}

// ParseAction validates a symbolic action label.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case Left, Right, Up, Down:
		return Action(s), nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// ParseSequence validates a list of action labels.
func ParseSequence(labels []string) ([]Action, error) {
	actions := make([]Action, 0, len(labels))
	for _, l := range labels {
		a, err := ParseAction(l)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

package states

import "fmt"

// SelectionState holds at most one armed cell waiting for a second click.
// The zero value is Empty.
type SelectionState struct {
	armed bool
	cell  int
}

// Empty returns a selection with nothing armed
func Empty() SelectionState {
	return SelectionState{}
}

// Armed returns a selection holding cell
func Armed(cell int) SelectionState {
	return SelectionState{armed: true, cell: cell}
}

// IsArmed returns true if a cell is selected
func (s SelectionState) IsArmed() bool {
	return s.armed
}

// Cell returns the armed cell and whether one is armed
func (s SelectionState) Cell() (int, bool) {
	return s.cell, s.armed
}

// Is reports whether cell is the armed cell
func (s SelectionState) Is(cell int) bool {
	return s.armed && s.cell == cell
}

func (s SelectionState) String() string {
	if !s.armed {
		return "Empty"
	}
	return fmt.Sprintf("Armed(%d)", s.cell)
}

package core

import "fmt"

// Coordinate is a (row, col) position on the board
type Coordinate struct {
	Row, Col int
}

// NewCoordinate creates a new coordinate with the given row and column
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// FromIndex converts a slot index into a coordinate using row-major ordering
func FromIndex(idx int) Coordinate {
	return Coordinate{Row: idx / Cols, Col: idx % Cols}
}

// IsValid checks if the coordinate is on the board
func (c Coordinate) IsValid() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// ToIndex converts the coordinate to a slot index using row-major ordering
func (c Coordinate) ToIndex() int {
	return c.Row*Cols + c.Col
}

// DistanceTo calculates the Manhattan distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) int {
	return abs(c.Row-other.Row) + abs(c.Col-other.Col)
}

// IsAdjacentTo checks if this coordinate is orthogonally adjacent to another
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	return c.DistanceTo(other) == 1
}

// SharesLine reports whether both coordinates lie on the same row or column
func (c Coordinate) SharesLine(other Coordinate) bool {
	return c.Row == other.Row || c.Col == other.Col
}

// Neighbors returns the four orthogonal neighbors of this coordinate
func (c Coordinate) Neighbors() []Coordinate {
	return []Coordinate{
		{Row: c.Row - 1, Col: c.Col}, // North
		{Row: c.Row, Col: c.Col + 1}, // East
		{Row: c.Row + 1, Col: c.Col}, // South
		{Row: c.Row, Col: c.Col - 1}, // West
	}
}

// ValidNeighbors returns only the neighbors that are on the board
func (c Coordinate) ValidNeighbors() []Coordinate {
	valid := make([]Coordinate, 0, 4)
	for _, n := range c.Neighbors() {
		if n.IsValid() {
			valid = append(valid, n)
		}
	}
	return valid
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package core

import "fmt"

// Color identifies a side. Every piece belongs to exactly one.
type Color int

const (
	Black Color = iota
	Red
)

// Opponent returns the other color
func (c Color) Opponent() Color {
	if c == Black {
		return Red
	}
	return Black
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

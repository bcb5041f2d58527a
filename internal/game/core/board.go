package core

import (
	"fmt"
	"math/rand"
)

const (
	Rows = 4
	Cols = 8
	Size = Rows * Cols

	// NoCell marks an unused cell field
	NoCell = -1
)

// Board holds the 32 slots of the game. A nil slot is empty.
type Board struct {
	cells [Size]*Piece
}

// NewEmptyBoard returns a board with every slot empty
func NewEmptyBoard() *Board {
	return &Board{}
}

// NewBoard builds the canonical 32 pieces face down and permutes them into
// the slots with a Fisher-Yates shuffle driven by rng.
func NewBoard(rng *rand.Rand) *Board {
	pieces := CanonicalPieces()
	rng.Shuffle(len(pieces), func(i, j int) { pieces[i], pieces[j] = pieces[j], pieces[i] })

	b := &Board{}
	copy(b.cells[:], pieces)
	return b
}

// CanonicalPieces returns one Black and one Red face down piece for every
// entry of RankSet.
func CanonicalPieces() []*Piece {
	pieces := make([]*Piece, 0, Size)
	for _, rank := range RankSet {
		pieces = append(pieces, NewPiece(rank, Black), NewPiece(rank, Red))
	}
	return pieces
}

// InBounds checks if idx addresses a slot
func InBounds(idx int) bool {
	return idx >= 0 && idx < Size
}

func Idx(row, col int) int                { return row*Cols + col }
func Pos(idx int) (row, col int)          { return idx / Cols, idx % Cols }
func (b *Board) Coord(idx int) Coordinate { return FromIndex(idx) }

// Get returns the piece at idx, or nil if the slot is empty or off the board
func (b *Board) Get(idx int) *Piece {
	if !InBounds(idx) {
		return nil
	}
	return b.cells[idx]
}

// IsEmpty reports whether the slot at idx holds no piece
func (b *Board) IsEmpty(idx int) bool {
	return b.Get(idx) == nil
}

// Place puts p on an empty slot
func (b *Board) Place(idx int, p *Piece) error {
	if !InBounds(idx) {
		return fmt.Errorf("%w: %d", ErrInvalidCell, idx)
	}
	if b.cells[idx] != nil {
		return fmt.Errorf("%w: slot %d holds %s", ErrCellOccupied, idx, b.cells[idx])
	}
	b.cells[idx] = p
	return nil
}

// PiecesBetween counts occupied slots strictly between from and to. It
// returns -1 when the two slots do not share a row or column.
func (b *Board) PiecesBetween(from, to int) int {
	fc, tc := FromIndex(from), FromIndex(to)
	if !fc.SharesLine(tc) || from == to {
		return -1
	}

	step := 1 // along a row
	if fc.Col == tc.Col {
		step = Cols
	}
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}

	count := 0
	for i := lo + step; i < hi; i += step {
		if b.cells[i] != nil {
			count++
		}
	}
	return count
}

// Count returns how many pieces of color c are still on the board
func (b *Board) Count(c Color) int {
	n := 0
	for _, p := range b.cells {
		if p != nil && p.color == c {
			n++
		}
	}
	return n
}

// Occupied returns the number of non-empty slots
func (b *Board) Occupied() int {
	n := 0
	for _, p := range b.cells {
		if p != nil {
			n++
		}
	}
	return n
}

// Clone returns a deep copy; pieces in the clone are distinct values.
func (b *Board) Clone() *Board {
	c := &Board{}
	for i, p := range b.cells {
		if p != nil {
			cp := *p
			c.cells[i] = &cp
		}
	}
	return c
}

// Equal reports whether both boards hold the same pieces in the same state
func (b *Board) Equal(other *Board) bool {
	for i := range b.cells {
		p, q := b.cells[i], other.cells[i]
		if (p == nil) != (q == nil) {
			return false
		}
		if p != nil && *p != *q {
			return false
		}
	}
	return true
}

package core

import "fmt"

// Piece is a single game piece. Rank and color are fixed at construction;
// the revealed flag only ever goes from false to true.
type Piece struct {
	rank     Rank
	color    Color
	revealed bool
}

// NewPiece creates a face down piece
func NewPiece(rank Rank, color Color) *Piece {
	return &Piece{rank: rank, color: color}
}

// NewRevealedPiece creates a face up piece, for scripted boards
func NewRevealedPiece(rank Rank, color Color) *Piece {
	return &Piece{rank: rank, color: color, revealed: true}
}

func (p *Piece) Rank() Rank       { return p.rank }
func (p *Piece) Color() Color     { return p.color }
func (p *Piece) IsRevealed() bool { return p.revealed }

// Reveal turns the piece face up. Revealing a face up piece does nothing.
func (p *Piece) Reveal() {
	p.revealed = true
}

// CanAttack applies the rank hierarchy between p and other
func (p *Piece) CanAttack(other *Piece) bool {
	return p.rank.CanAttack(other.rank)
}

func (p *Piece) String() string {
	if !p.revealed {
		return fmt.Sprintf("hidden %s %s", p.color, p.rank)
	}
	return fmt.Sprintf("%s %s", p.color, p.rank)
}

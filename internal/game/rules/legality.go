package rules

import (
	"fmt"

	"github.com/mitchelldurbincs/banqi/internal/game/core"
	"github.com/mitchelldurbincs/banqi/internal/game/states"
)

// CannonScreens is the number of occupied slots a cannon must jump over to
// capture.
const CannonScreens = 2

// ValidateReveal checks that pos holds a face down piece. Reveals are not
// gated by whose turn it is.
func ValidateReveal(b *core.Board, pos int) error {
	if !core.InBounds(pos) {
		return fmt.Errorf("%w: %w %d", core.ErrInvalidReveal, core.ErrInvalidCell, pos)
	}
	p := b.Get(pos)
	if p == nil {
		return fmt.Errorf("%w: slot %d is empty", core.ErrInvalidReveal, pos)
	}
	if p.IsRevealed() {
		return fmt.Errorf("%w: %s at %d is already face up", core.ErrInvalidReveal, p, pos)
	}
	return nil
}

// ValidateSelect checks that pos holds a face up piece
func ValidateSelect(b *core.Board, pos int) error {
	if !core.InBounds(pos) {
		return fmt.Errorf("%w: %w %d", core.ErrInvalidSelect, core.ErrInvalidCell, pos)
	}
	p := b.Get(pos)
	if p == nil {
		return fmt.Errorf("%w: slot %d is empty", core.ErrInvalidSelect, pos)
	}
	if !p.IsRevealed() {
		return fmt.Errorf("%w: slot %d is face down", core.ErrInvalidSelect, pos)
	}
	return nil
}

// ValidateMove checks a step of the piece at from onto the empty slot to.
// It returns ErrIllegalTurnQuery, unwrapped, if no turn has been determined.
func ValidateMove(b *core.Board, turn states.TurnState, from, to int) error {
	toMove, err := turn.Color()
	if err != nil {
		return err
	}
	mover, err := actingPiece(b, core.ErrInvalidMove, toMove, from, to)
	if err != nil {
		return err
	}
	if !b.IsEmpty(to) {
		return fmt.Errorf("%w: destination %d is occupied", core.ErrInvalidMove, to)
	}
	if !b.Coord(from).IsAdjacentTo(b.Coord(to)) {
		return fmt.Errorf("%w: %s at %d cannot reach %d", core.ErrInvalidMove, mover, from, to)
	}
	return nil
}

// ValidateAttack checks a capture of the piece at to by the piece at from.
// It returns ErrIllegalTurnQuery, unwrapped, if no turn has been determined.
func ValidateAttack(b *core.Board, turn states.TurnState, from, to int) error {
	toMove, err := turn.Color()
	if err != nil {
		return err
	}
	attacker, err := actingPiece(b, core.ErrInvalidAttack, toMove, from, to)
	if err != nil {
		return err
	}

	defender := b.Get(to)
	if defender == nil {
		return fmt.Errorf("%w: slot %d is empty", core.ErrInvalidAttack, to)
	}
	if !defender.IsRevealed() {
		return fmt.Errorf("%w: target at %d is face down", core.ErrInvalidAttack, to)
	}
	if attacker.Color() == defender.Color() {
		return fmt.Errorf("%w: %s cannot capture its own side", core.ErrInvalidAttack, attacker)
	}

	fc, tc := b.Coord(from), b.Coord(to)
	if !fc.SharesLine(tc) {
		return fmt.Errorf("%w: %d and %d share no row or column", core.ErrInvalidAttack, from, to)
	}
	if attacker.Rank() == core.Cannon {
		if n := b.PiecesBetween(from, to); n != CannonScreens {
			return fmt.Errorf("%w: cannon needs %d pieces between %d and %d, found %d",
				core.ErrInvalidAttack, CannonScreens, from, to, n)
		}
	} else if !fc.IsAdjacentTo(tc) {
		return fmt.Errorf("%w: %s at %d is not adjacent to %d", core.ErrInvalidAttack, attacker, from, to)
	}

	if !attacker.CanAttack(defender) {
		return fmt.Errorf("%w: %s cannot capture %s", core.ErrInvalidAttack, attacker, defender)
	}
	return nil
}

// actingPiece returns the face up piece at from after checking both slots
// are on the board and the piece belongs to the side to move.
func actingPiece(b *core.Board, kind error, toMove core.Color, from, to int) (*core.Piece, error) {
	if !core.InBounds(from) {
		return nil, fmt.Errorf("%w: %w %d", kind, core.ErrInvalidCell, from)
	}
	if !core.InBounds(to) {
		return nil, fmt.Errorf("%w: %w %d", kind, core.ErrInvalidCell, to)
	}
	if from == to {
		return nil, fmt.Errorf("%w: source and destination are both %d", kind, from)
	}
	p := b.Get(from)
	if p == nil {
		return nil, fmt.Errorf("%w: no piece at %d", kind, from)
	}
	if !p.IsRevealed() {
		return nil, fmt.Errorf("%w: piece at %d is face down", kind, from)
	}
	if p.Color() != toMove {
		return nil, fmt.Errorf("%w: %s cannot act while %s is to move", kind, p, toMove)
	}
	return p, nil
}

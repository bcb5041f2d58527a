package game

import (
	"errors"
	"fmt"

	"github.com/mitchelldurbincs/banqi/internal/game/core"
	"github.com/mitchelldurbincs/banqi/internal/game/rules"
	"github.com/mitchelldurbincs/banqi/internal/game/states"
)

// Resolve decides which command a click on pos issues. It never mutates
// its inputs.
//
// With nothing armed a face down piece is revealed, a face up piece is
// selected and an empty slot does nothing. With a cell armed, clicking it
// again unselects, a face down piece is revealed with the selection kept,
// a face up piece is attacked when legal and re-armed otherwise, and an
// empty slot is moved to when legal and unselects otherwise.
//
// ErrIllegalTurnQuery is returned when a cell is armed before any turn
// exists, which only a scripted board can produce.
func Resolve(b *core.Board, sel states.SelectionState, turn states.TurnState, pos int) (core.Command, error) {
	if !core.InBounds(pos) {
		return core.NoOpCommand(), fmt.Errorf("%w %d", core.ErrInvalidCell, pos)
	}
	target := b.Get(pos)

	armed, ok := sel.Cell()
	if !ok {
		switch {
		case target == nil:
			return core.NoOpCommand(), nil
		case !target.IsRevealed():
			return core.RevealCommand(pos), nil
		default:
			return core.SelectCommand(pos), nil
		}
	}

	if pos == armed {
		return core.UnselectCommand(), nil
	}

	if target != nil {
		if !target.IsRevealed() {
			return core.RevealCommand(pos), nil
		}
		err := rules.ValidateAttack(b, turn, armed, pos)
		switch {
		case err == nil:
			return core.AttackCommand(armed, pos), nil
		case errors.Is(err, core.ErrIllegalTurnQuery):
			return core.NoOpCommand(), err
		default:
			return core.SelectCommand(pos), nil
		}
	}

	err := rules.ValidateMove(b, turn, armed, pos)
	switch {
	case err == nil:
		return core.MoveCommand(armed, pos), nil
	case errors.Is(err, core.ErrIllegalTurnQuery):
		return core.NoOpCommand(), err
	default:
		return core.UnselectCommand(), nil
	}
}

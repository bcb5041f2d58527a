package states

import (
	"fmt"

	"github.com/mitchelldurbincs/banqi/internal/game/core"
)

// TurnState records whose turn it is. The zero value is Undetermined: no
// piece has been revealed yet, so no side owns a color.
type TurnState struct {
	determined bool
	color      core.Color
}

// Undetermined returns the opening turn state
func Undetermined() TurnState {
	return TurnState{}
}

// ToMove returns the state in which color c moves next
func ToMove(c core.Color) TurnState {
	return TurnState{determined: true, color: c}
}

// IsDetermined returns true once the first piece has been revealed
func (t TurnState) IsDetermined() bool {
	return t.determined
}

// Color returns the color to move, or ErrIllegalTurnQuery while undetermined.
func (t TurnState) Color() (core.Color, error) {
	if !t.determined {
		return 0, core.ErrIllegalTurnQuery
	}
	return t.color, nil
}

// Flip passes the turn to the other color. Flipping an undetermined turn
// is a contract violation and returns ErrIllegalTurnQuery.
func (t TurnState) Flip() (TurnState, error) {
	if !t.determined {
		return t, core.ErrIllegalTurnQuery
	}
	return ToMove(t.color.Opponent()), nil
}

// AfterReveal returns the state following a reveal of a piece of color
// revealed. The first reveal hands the move to the opponent of the revealed
// color; later reveals flip as any other completed command does.
func (t TurnState) AfterReveal(revealed core.Color) TurnState {
	if !t.determined {
		return ToMove(revealed.Opponent())
	}
	return ToMove(t.color.Opponent())
}

// Allows reports whether a piece of color c may act now
func (t TurnState) Allows(c core.Color) bool {
	return t.determined && t.color == c
}

func (t TurnState) String() string {
	if !t.determined {
		return "Undetermined"
	}
	return fmt.Sprintf("%s to move", t.color)
}

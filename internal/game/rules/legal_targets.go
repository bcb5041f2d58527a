package rules

import (
	"github.com/mitchelldurbincs/banqi/internal/game/core"
	"github.com/mitchelldurbincs/banqi/internal/game/states"
)

// LegalTargetMask returns a mask over the 32 slots: true where the piece at
// from could move (empty slot) or attack (occupied slot) right now. The mask
// is all false when from is empty, face down, off turn, or the turn is
// undetermined.
func LegalTargetMask(b *core.Board, turn states.TurnState, from int) []bool {
	mask := make([]bool, core.Size)

	p := b.Get(from)
	if p == nil || !p.IsRevealed() || !turn.Allows(p.Color()) {
		return mask
	}

	for to := 0; to < core.Size; to++ {
		if to == from {
			continue
		}
		var err error
		if b.IsEmpty(to) {
			err = ValidateMove(b, turn, from, to)
		} else {
			err = ValidateAttack(b, turn, from, to)
		}
		mask[to] = err == nil
	}
	return mask
}

// LegalTargets lists the slots set in LegalTargetMask, in index order
func LegalTargets(b *core.Board, turn states.TurnState, from int) []int {
	var targets []int
	for idx, ok := range LegalTargetMask(b, turn, from) {
		if ok {
			targets = append(targets, idx)
		}
	}
	return targets
}

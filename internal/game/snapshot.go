package game

import (
	"github.com/mitchelldurbincs/banqi/internal/game/core"
	"github.com/mitchelldurbincs/banqi/internal/game/rules"
	"github.com/mitchelldurbincs/banqi/internal/game/states"
)

// CellView is the read-only view of one board slot
type CellView struct {
	Index    int             `json:"index"`
	Coord    core.Coordinate `json:"coord"`
	Occupied bool            `json:"occupied"`
	Revealed bool            `json:"revealed"`
	Rank     core.Rank       `json:"rank"`
	Color    core.Color      `json:"color"`
}

// Snapshot is what a presentation queries after each interaction
type Snapshot struct {
	GameID    string                `json:"game_id"`
	Cells     [core.Size]CellView   `json:"cells"`
	Selection states.SelectionState `json:"-"`
	Turn      states.TurnState      `json:"-"`
	// LegalTargets lists the cells the armed piece could move to or
	// attack. Empty when nothing is armed.
	LegalTargets []int `json:"legal_targets"`
	Stats        Stats `json:"stats"`
	Commands     int   `json:"commands"`
}

// Snapshot returns a read-only view of the current state
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		GameID:    e.gameID,
		Selection: e.selection,
		Turn:      e.turn,
		Stats:     e.Stats(),
		Commands:  e.commands,
	}
	for idx := 0; idx < core.Size; idx++ {
		view := CellView{Index: idx, Coord: core.FromIndex(idx)}
		if p := e.board.Get(idx); p != nil {
			view.Occupied = true
			view.Revealed = p.IsRevealed()
			view.Rank = p.Rank()
			view.Color = p.Color()
		}
		snap.Cells[idx] = view
	}
	if armed, ok := e.selection.Cell(); ok {
		snap.LegalTargets = rules.LegalTargets(e.board, e.turn, armed)
	}
	return snap
}

// IsLegalTarget reports whether the armed piece could act on cell
func (s Snapshot) IsLegalTarget(cell int) bool {
	for _, t := range s.LegalTargets {
		if t == cell {
			return true
		}
	}
	return false
}

package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/banqi/internal/game/core"
	"github.com/mitchelldurbincs/banqi/internal/game/events"
	"github.com/mitchelldurbincs/banqi/internal/game/rules"
	"github.com/mitchelldurbincs/banqi/internal/game/states"
)

// Engine owns the board, the turn and the selection of one game. It is
// not safe for concurrent use; callers serialize interactions.
type Engine struct {
	gameID    string
	seed      int64
	board     *core.Board
	turn      states.TurnState
	selection states.SelectionState
	logger    zerolog.Logger
	eventBus  *events.EventBus

	commands int
	counters [2]ColorStats
}

// NewEngine deals a new game
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Apply resolves a click on cell and executes the resulting command.
// The returned snapshot always reflects the current state, including
// when the interaction was rejected.
func (e *Engine) Apply(cell int) (Snapshot, error) {
	cmd, err := Resolve(e.board, e.selection, e.turn, cell)
	if err != nil {
		e.publishRejected("resolve", cell, err)
		return e.Snapshot(), err
	}
	if err := e.Execute(cmd); err != nil {
		return e.Snapshot(), err
	}
	return e.Snapshot(), nil
}

// Execute runs an already resolved command
func (e *Engine) Execute(cmd core.Command) error {
	switch cmd.Type {
	case core.CommandNoOp:
		return nil
	case core.CommandReveal:
		return e.Reveal(cmd.To)
	case core.CommandSelect:
		return e.Select(cmd.To)
	case core.CommandUnselect:
		e.Unselect()
		return nil
	case core.CommandMove:
		return e.Move(cmd.From, cmd.To)
	case core.CommandAttack:
		return e.Attack(cmd.From, cmd.To)
	default:
		return fmt.Errorf("unknown command type %d", int(cmd.Type))
	}
}

// Reveal turns over the face down piece at pos. The selection is left as
// it was and the reveal is allowed on either side's turn.
func (e *Engine) Reveal(pos int) error {
	cmd := core.RevealCommand(pos)
	if err := rules.ValidateReveal(e.board, pos); err != nil {
		return e.reject(cmd, pos, err)
	}

	p := e.board.Get(pos)
	wasDetermined := e.turn.IsDetermined()
	p.Reveal()
	e.turn = e.turn.AfterReveal(p.Color())
	e.counters[p.Color()].Revealed++
	e.commands++

	e.eventBus.Publish(events.NewPieceRevealedEvent(e.gameID, e.meta(), pos, p))
	toMove, _ := e.turn.Color()
	if wasDetermined {
		e.eventBus.Publish(events.NewTurnChangedEvent(e.gameID, e.meta(), toMove))
	} else {
		e.eventBus.Publish(events.NewTurnDeterminedEvent(e.gameID, e.meta(), p.Color(), toMove))
	}

	e.logger.Debug().Int("cell", pos).Str("piece", p.String()).Str("turn", e.turn.String()).Msg("Piece revealed")
	return nil
}

// Select arms the face up piece at pos, of either color
func (e *Engine) Select(pos int) error {
	cmd := core.SelectCommand(pos)
	if err := rules.ValidateSelect(e.board, pos); err != nil {
		return e.reject(cmd, pos, err)
	}

	e.selection = states.Armed(pos)
	e.commands++
	e.eventBus.Publish(events.NewPieceSelectedEvent(e.gameID, e.meta(), pos, e.board.Get(pos)))
	return nil
}

// Unselect clears the selection. It is a no-op when nothing is armed.
func (e *Engine) Unselect() {
	if !e.selection.IsArmed() {
		return
	}
	e.commands++
	e.clearSelection("unselect")
}

// Move steps the piece at from onto the empty adjacent slot to
func (e *Engine) Move(from, to int) error {
	cmd := core.MoveCommand(from, to)
	if err := rules.ValidateMove(e.board, e.turn, from, to); err != nil {
		return e.reject(cmd, to, err)
	}
	next, err := e.turn.Flip()
	if err != nil {
		return e.reject(cmd, to, err)
	}

	mover := e.board.Get(from)
	core.Relocate(e.board, from, to)
	e.counters[mover.Color()].Moves++
	e.commands++

	e.eventBus.Publish(events.NewPieceMovedEvent(e.gameID, e.meta(), from, to, mover))
	e.clearSelection("move")
	e.setTurn(next)
	return nil
}

// Attack captures the piece at to with the piece at from. The defender
// leaves the game and the attacker takes its slot.
func (e *Engine) Attack(from, to int) error {
	cmd := core.AttackCommand(from, to)
	if err := rules.ValidateAttack(e.board, e.turn, from, to); err != nil {
		return e.reject(cmd, to, err)
	}
	next, err := e.turn.Flip()
	if err != nil {
		return e.reject(cmd, to, err)
	}

	attacker := e.board.Get(from)
	captured := core.Capture(e.board, from, to)
	e.counters[attacker.Color()].Captures++
	e.commands++

	e.eventBus.Publish(events.NewPieceCapturedEvent(e.gameID, e.meta(), from, to, attacker, captured))
	e.clearSelection("attack")
	e.setTurn(next)

	e.logger.Debug().
		Str("attacker", attacker.String()).
		Str("captured", captured.String()).
		Int("from", from).
		Int("to", to).
		Msg("Piece captured")
	return nil
}

// Public accessors
func (e *Engine) GameID() string                   { return e.gameID }
func (e *Engine) Seed() int64                      { return e.seed }
func (e *Engine) Turn() states.TurnState           { return e.turn }
func (e *Engine) Selection() states.SelectionState { return e.selection }
func (e *Engine) EventBus() *events.EventBus       { return e.eventBus }

// Board returns a copy of the board
func (e *Engine) Board() *core.Board { return e.board.Clone() }

func (e *Engine) setTurn(next states.TurnState) {
	e.turn = next
	toMove, _ := next.Color()
	e.eventBus.Publish(events.NewTurnChangedEvent(e.gameID, e.meta(), toMove))
}

func (e *Engine) clearSelection(reason string) {
	cell, ok := e.selection.Cell()
	if !ok {
		return
	}
	e.selection = states.Empty()
	e.eventBus.Publish(events.NewSelectionClearedEvent(e.gameID, e.meta(), cell, reason))
}

// reject reports a refused command and returns it with command context.
// Nothing has been mutated when it is called.
func (e *Engine) reject(cmd core.Command, cell int, err error) error {
	e.publishRejected(cmd.String(), cell, err)
	return core.WrapCommandError(cmd, err)
}

func (e *Engine) publishRejected(command string, cell int, err error) {
	e.logger.Debug().
		Err(err).
		Str("command", command).
		Int("cell", cell).
		Str("turn", e.turn.String()).
		Str("selection", e.selection.String()).
		Msg("Command rejected")
	e.eventBus.Publish(events.NewCommandRejectedEvent(e.gameID, e.meta(), command, cell, err))
}

func (e *Engine) meta() events.EventMetadata {
	meta := events.EventMetadata{Sequence: e.commands}
	if c, err := e.turn.Color(); err == nil {
		meta.ToMove = c.String()
	}
	return meta
}

func (e *Engine) hiddenCount() int {
	n := 0
	for idx := 0; idx < core.Size; idx++ {
		if p := e.board.Get(idx); p != nil && !p.IsRevealed() {
			n++
		}
	}
	return n
}

package events

import (
	"github.com/mitchelldurbincs/banqi/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted      = "game.started"
	TypePieceRevealed    = "piece.revealed"
	TypeTurnDetermined   = "turn.determined"
	TypeTurnChanged      = "turn.changed"
	TypePieceSelected    = "piece.selected"
	TypeSelectionCleared = "selection.cleared"
	TypePieceMoved       = "piece.moved"
	TypePieceCaptured    = "piece.captured"
	TypeCommandRejected  = "command.rejected"
	TypeConfigReloaded   = "config.reloaded"
)

// GameStartedEvent is published when a new board has been dealt
type GameStartedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Seed     int64
	Pieces   int
	Hidden   int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, seed int64, pieces, hidden int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		Seed:      seed,
		Pieces:    pieces,
		Hidden:    hidden,
	}
}

// PieceRevealedEvent is published when a face down piece is turned over
type PieceRevealedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Cell     int
	Rank     core.Rank
	Color    core.Color
}

// NewPieceRevealedEvent creates a new PieceRevealedEvent
func NewPieceRevealedEvent(gameID string, meta EventMetadata, cell int, p *core.Piece) *PieceRevealedEvent {
	return &PieceRevealedEvent{
		BaseEvent: newBase(TypePieceRevealed, gameID),
		Metadata:  meta,
		Cell:      cell,
		Rank:      p.Rank(),
		Color:     p.Color(),
	}
}

// TurnDeterminedEvent is published once, on the first reveal, when the
// colors are assigned
type TurnDeterminedEvent struct {
	BaseEvent
	Metadata      EventMetadata
	FirstRevealed core.Color
	ToMove        core.Color
}

// NewTurnDeterminedEvent creates a new TurnDeterminedEvent
func NewTurnDeterminedEvent(gameID string, meta EventMetadata, revealed, toMove core.Color) *TurnDeterminedEvent {
	return &TurnDeterminedEvent{
		BaseEvent:     newBase(TypeTurnDetermined, gameID),
		Metadata:      meta,
		FirstRevealed: revealed,
		ToMove:        toMove,
	}
}

// TurnChangedEvent is published after every completed reveal, move or attack
type TurnChangedEvent struct {
	BaseEvent
	Metadata EventMetadata
	ToMove   core.Color
}

// NewTurnChangedEvent creates a new TurnChangedEvent
func NewTurnChangedEvent(gameID string, meta EventMetadata, toMove core.Color) *TurnChangedEvent {
	return &TurnChangedEvent{
		BaseEvent: newBase(TypeTurnChanged, gameID),
		Metadata:  meta,
		ToMove:    toMove,
	}
}

// PieceSelectedEvent is published when a cell is armed
type PieceSelectedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Cell     int
	Rank     core.Rank
	Color    core.Color
}

// NewPieceSelectedEvent creates a new PieceSelectedEvent
func NewPieceSelectedEvent(gameID string, meta EventMetadata, cell int, p *core.Piece) *PieceSelectedEvent {
	return &PieceSelectedEvent{
		BaseEvent: newBase(TypePieceSelected, gameID),
		Metadata:  meta,
		Cell:      cell,
		Rank:      p.Rank(),
		Color:     p.Color(),
	}
}

// SelectionClearedEvent is published when an armed cell is released
type SelectionClearedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Cell     int
	Reason   string
}

// NewSelectionClearedEvent creates a new SelectionClearedEvent
func NewSelectionClearedEvent(gameID string, meta EventMetadata, cell int, reason string) *SelectionClearedEvent {
	return &SelectionClearedEvent{
		BaseEvent: newBase(TypeSelectionCleared, gameID),
		Metadata:  meta,
		Cell:      cell,
		Reason:    reason,
	}
}

// PieceMovedEvent is published when a piece steps onto an empty slot
type PieceMovedEvent struct {
	BaseEvent
	Metadata EventMetadata
	From     core.Coordinate
	To       core.Coordinate
	Rank     core.Rank
	Color    core.Color
}

// NewPieceMovedEvent creates a new PieceMovedEvent
func NewPieceMovedEvent(gameID string, meta EventMetadata, from, to int, p *core.Piece) *PieceMovedEvent {
	return &PieceMovedEvent{
		BaseEvent: newBase(TypePieceMoved, gameID),
		Metadata:  meta,
		From:      core.FromIndex(from),
		To:        core.FromIndex(to),
		Rank:      p.Rank(),
		Color:     p.Color(),
	}
}

// PieceCapturedEvent is published when an attack removes a piece
type PieceCapturedEvent struct {
	BaseEvent
	Metadata      EventMetadata
	From          core.Coordinate
	To            core.Coordinate
	AttackerRank  core.Rank
	AttackerColor core.Color
	CapturedRank  core.Rank
	CapturedColor core.Color
}

// NewPieceCapturedEvent creates a new PieceCapturedEvent
func NewPieceCapturedEvent(gameID string, meta EventMetadata, from, to int, attacker, captured *core.Piece) *PieceCapturedEvent {
	return &PieceCapturedEvent{
		BaseEvent:     newBase(TypePieceCaptured, gameID),
		Metadata:      meta,
		From:          core.FromIndex(from),
		To:            core.FromIndex(to),
		AttackerRank:  attacker.Rank(),
		AttackerColor: attacker.Color(),
		CapturedRank:  captured.Rank(),
		CapturedColor: captured.Color(),
	}
}

// CommandRejectedEvent is published when a clicked cell or a command fails
// validation. Nothing on the board changed.
type CommandRejectedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Command  string
	Cell     int
	Reason   string
}

// NewCommandRejectedEvent creates a new CommandRejectedEvent
func NewCommandRejectedEvent(gameID string, meta EventMetadata, command string, cell int, err error) *CommandRejectedEvent {
	return &CommandRejectedEvent{
		BaseEvent: newBase(TypeCommandRejected, gameID),
		Metadata:  meta,
		Command:   command,
		Cell:      cell,
		Reason:    err.Error(),
	}
}

// ConfigReloadedEvent is published by the shell when the config file changes
type ConfigReloadedEvent struct {
	BaseEvent
	Path string
}

// NewConfigReloadedEvent creates a new ConfigReloadedEvent
func NewConfigReloadedEvent(gameID, path string) *ConfigReloadedEvent {
	return &ConfigReloadedEvent{
		BaseEvent: newBase(TypeConfigReloaded, gameID),
		Path:      path,
	}
}

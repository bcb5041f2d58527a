package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/banqi/internal/game/core"
)

// Hidden returns a face down piece
func Hidden(rank core.Rank, color core.Color) *core.Piece {
	return core.NewPiece(rank, color)
}

// Shown returns a face up piece
func Shown(rank core.Rank, color core.Color) *core.Piece {
	return core.NewRevealedPiece(rank, color)
}

// BoardWith builds an otherwise empty board holding the given pieces
func BoardWith(t *testing.T, layout map[int]*core.Piece) *core.Board {
	t.Helper()
	board := core.NewEmptyBoard()
	for idx, p := range layout {
		require.NoError(t, board.Place(idx, p), "placing piece at %d", idx)
	}
	return board
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/banqi/internal/game/core"
	"github.com/mitchelldurbincs/banqi/internal/game/states"
	"github.com/mitchelldurbincs/banqi/internal/testutil"
)

func TestValidateReveal(t *testing.T) {
	board := testutil.BoardWith(t, map[int]*core.Piece{
		0: testutil.Hidden(core.Horse, core.Red),
		1: testutil.Shown(core.Horse, core.Black),
	})

	assert.NoError(t, ValidateReveal(board, 0))
	assert.ErrorIs(t, ValidateReveal(board, 1), core.ErrInvalidReveal)
	assert.ErrorIs(t, ValidateReveal(board, 2), core.ErrInvalidReveal)

	err := ValidateReveal(board, 40)
	assert.ErrorIs(t, err, core.ErrInvalidReveal)
	assert.ErrorIs(t, err, core.ErrInvalidCell)
}

func TestValidateSelect(t *testing.T) {
	board := testutil.BoardWith(t, map[int]*core.Piece{
		0: testutil.Hidden(core.Horse, core.Red),
		1: testutil.Shown(core.Horse, core.Black),
	})

	assert.NoError(t, ValidateSelect(board, 1))
	assert.ErrorIs(t, ValidateSelect(board, 0), core.ErrInvalidSelect)
	assert.ErrorIs(t, ValidateSelect(board, 2), core.ErrInvalidSelect)
	assert.ErrorIs(t, ValidateSelect(board, -1), core.ErrInvalidCell)
}

func TestValidateMove(t *testing.T) {
	// Row 1 holds a red chariot at 9, a black horse at 10 and a face down
	// piece at 17 below the chariot.
	board := testutil.BoardWith(t, map[int]*core.Piece{
		9:  testutil.Shown(core.Chariot, core.Red),
		10: testutil.Shown(core.Horse, core.Black),
		17: testutil.Hidden(core.Soldier, core.Red),
		16: testutil.Hidden(core.Cannon, core.Black),
	})
	redToMove := states.ToMove(core.Red)

	tests := []struct {
		name     string
		turn     states.TurnState
		from, to int
		wantErr  error
	}{
		{"step north", redToMove, 9, 1, nil},
		{"step west", redToMove, 9, 8, nil},
		{"occupied destination", redToMove, 9, 10, core.ErrInvalidMove},
		{"occupied by face down piece", redToMove, 9, 17, core.ErrInvalidMove},
		{"two steps along the row", redToMove, 9, 11, core.ErrInvalidMove},
		{"diagonal", redToMove, 9, 0, core.ErrInvalidMove},
		{"wrong turn", states.ToMove(core.Black), 9, 1, core.ErrInvalidMove},
		{"empty source", redToMove, 3, 4, core.ErrInvalidMove},
		{"face down source", redToMove, 16, 24, core.ErrInvalidMove},
		{"same slot", redToMove, 9, 9, core.ErrInvalidMove},
		{"off the board", redToMove, 9, 32, core.ErrInvalidCell},
		{"undetermined turn", states.Undetermined(), 9, 1, core.ErrIllegalTurnQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMove(board, tt.turn, tt.from, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMove_RowsDoNotWrap(t *testing.T) {
	board := testutil.BoardWith(t, map[int]*core.Piece{
		7: testutil.Shown(core.Horse, core.Red),
	})
	assert.ErrorIs(t, ValidateMove(board, states.ToMove(core.Red), 7, 8), core.ErrInvalidMove)
}

func TestValidateMove_UndeterminedIsNotWrapped(t *testing.T) {
	board := testutil.BoardWith(t, map[int]*core.Piece{
		9: testutil.Shown(core.Chariot, core.Red),
	})

	err := ValidateMove(board, states.Undetermined(), 9, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrInvalidMove)
	assert.ErrorIs(t, ValidateAttack(board, states.Undetermined(), 9, 1), core.ErrIllegalTurnQuery)
}

func TestValidateAttack_Ordinary(t *testing.T) {
	board := testutil.BoardWith(t, map[int]*core.Piece{
		9:  testutil.Shown(core.Chariot, core.Red),
		10: testutil.Shown(core.Horse, core.Black),
		1:  testutil.Shown(core.Advisor, core.Black),
		8:  testutil.Shown(core.Elephant, core.Red),
		17: testutil.Hidden(core.Soldier, core.Black),
		11: testutil.Shown(core.Horse, core.Black),
		24: testutil.Shown(core.General, core.Red),
		25: testutil.Shown(core.Soldier, core.Black),
		26: testutil.Shown(core.Soldier, core.Red),
		27: testutil.Shown(core.General, core.Black),
		31: testutil.Shown(core.Chariot, core.Black),
	})
	redToMove := states.ToMove(core.Red)

	tests := []struct {
		name     string
		turn     states.TurnState
		from, to int
		wantErr  error
	}{
		{"chariot takes weaker horse", redToMove, 9, 10, nil},
		{"chariot cannot take stronger advisor", redToMove, 9, 1, core.ErrInvalidAttack},
		{"same color", redToMove, 9, 8, core.ErrInvalidAttack},
		{"face down target", redToMove, 9, 17, core.ErrInvalidAttack},
		{"empty target", redToMove, 9, 2, core.ErrInvalidAttack},
		{"not adjacent on a row", redToMove, 9, 11, core.ErrInvalidAttack},
		{"not on a line", redToMove, 9, 31, core.ErrInvalidAttack},
		{"general cannot take soldier", redToMove, 24, 25, core.ErrInvalidAttack},
		{"soldier takes general", redToMove, 26, 27, nil},
		{"soldier takes soldier", redToMove, 26, 25, nil},
		{"wrong turn", states.ToMove(core.Black), 9, 10, core.ErrInvalidAttack},
		{"horse cannot take stronger chariot", states.ToMove(core.Black), 10, 9, core.ErrInvalidAttack},
		{"undetermined turn", states.Undetermined(), 9, 10, core.ErrIllegalTurnQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAttack(board, tt.turn, tt.from, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAttack_Cannon(t *testing.T) {
	// Row 0: red cannon at 0, screens at 1 (black) and 3 (red), black
	// targets at 4 and 6. Column 0: screens at 8 and 16, target at 24.
	board := testutil.BoardWith(t, map[int]*core.Piece{
		0:  testutil.Shown(core.Cannon, core.Red),
		1:  testutil.Hidden(core.Soldier, core.Black),
		3:  testutil.Shown(core.Horse, core.Red),
		4:  testutil.Shown(core.General, core.Black),
		6:  testutil.Shown(core.Soldier, core.Black),
		8:  testutil.Shown(core.Soldier, core.Red),
		16: testutil.Shown(core.Soldier, core.Black),
		24: testutil.Shown(core.Advisor, core.Black),
		9:  testutil.Shown(core.Elephant, core.Black),
	})
	redToMove := states.ToMove(core.Red)

	tests := []struct {
		name     string
		from, to int
		wantErr  error
	}{
		{"two screens of mixed color on a row", 0, 4, nil},
		{"two screens on a column", 0, 24, nil},
		{"three screens", 0, 6, core.ErrInvalidAttack},
		{"one screen", 0, 16, core.ErrInvalidAttack},
		{"diagonal", 0, 9, core.ErrInvalidAttack},
		{"face down target between screens", 0, 1, core.ErrInvalidAttack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAttack(board, redToMove, tt.from, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAttack_CannonCannotTakeAdjacent(t *testing.T) {
	board := testutil.BoardWith(t, map[int]*core.Piece{
		0: testutil.Shown(core.Cannon, core.Red),
		1: testutil.Shown(core.Soldier, core.Black),
	})
	assert.ErrorIs(t, ValidateAttack(board, states.ToMove(core.Red), 0, 1), core.ErrInvalidAttack)
}

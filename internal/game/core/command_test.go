package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "reveal 5", RevealCommand(5).String())
	assert.Equal(t, "select 9", SelectCommand(9).String())
	assert.Equal(t, "unselect", UnselectCommand().String())
	assert.Equal(t, "move 3->4", MoveCommand(3, 4).String())
	assert.Equal(t, "attack 13->5", AttackCommand(13, 5).String())
	assert.Equal(t, "noop", NoOpCommand().String())
	assert.Equal(t, "Unknown(9)", CommandType(9).String())
}

func TestWrapCommandError(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		err      error
		expected string
		sentinel error
	}{
		{
			name:     "move with reason",
			cmd:      MoveCommand(3, 4),
			err:      fmt.Errorf("%w: destination occupied", ErrInvalidMove),
			expected: "move 3->4: invalid move: destination occupied",
			sentinel: ErrInvalidMove,
		},
		{
			name:     "reveal",
			cmd:      RevealCommand(2),
			err:      ErrInvalidReveal,
			expected: "reveal 2: invalid reveal",
			sentinel: ErrInvalidReveal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapCommandError(tt.cmd, tt.err)
			require.NotNil(t, wrapped)
			assert.Equal(t, tt.expected, wrapped.Error())
			assert.True(t, errors.Is(wrapped, tt.sentinel))
		})
	}

	assert.Nil(t, WrapCommandError(MoveCommand(0, 1), nil))
}

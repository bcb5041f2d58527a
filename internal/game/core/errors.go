package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidReveal    = errors.New("invalid reveal")
	ErrInvalidSelect    = errors.New("invalid select")
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidAttack    = errors.New("invalid attack")
	ErrIllegalTurnQuery = errors.New("turn is undetermined")
	ErrInvalidCell      = errors.New("invalid cell")
	ErrCellOccupied     = errors.New("cell occupied")
)

// WrapCommandError adds the command to err, keeping the sentinel reachable
// through errors.Is.
func WrapCommandError(cmd Command, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", cmd, err)
}

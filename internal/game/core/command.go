package core

import "fmt"

// CommandType is the kind of state change an interaction resolves to
type CommandType int

const (
	CommandNoOp CommandType = iota
	CommandReveal
	CommandSelect
	CommandUnselect
	CommandMove
	CommandAttack
)

func (t CommandType) String() string {
	switch t {
	case CommandNoOp:
		return "noop"
	case CommandReveal:
		return "reveal"
	case CommandSelect:
		return "select"
	case CommandUnselect:
		return "unselect"
	case CommandMove:
		return "move"
	case CommandAttack:
		return "attack"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Command is a resolved interaction. Reveal and Select use To as their
// target and leave From as NoCell; Unselect and NoOp use neither.
type Command struct {
	Type CommandType
	From int
	To   int
}

func NoOpCommand() Command          { return Command{Type: CommandNoOp, From: NoCell, To: NoCell} }
func RevealCommand(pos int) Command { return Command{Type: CommandReveal, From: NoCell, To: pos} }
func SelectCommand(pos int) Command { return Command{Type: CommandSelect, From: NoCell, To: pos} }
func UnselectCommand() Command      { return Command{Type: CommandUnselect, From: NoCell, To: NoCell} }
func MoveCommand(from, to int) Command {
	return Command{Type: CommandMove, From: from, To: to}
}
func AttackCommand(from, to int) Command {
	return Command{Type: CommandAttack, From: from, To: to}
}

func (c Command) String() string {
	switch c.Type {
	case CommandReveal, CommandSelect:
		return fmt.Sprintf("%s %d", c.Type, c.To)
	case CommandMove, CommandAttack:
		return fmt.Sprintf("%s %d->%d", c.Type, c.From, c.To)
	default:
		return c.Type.String()
	}
}

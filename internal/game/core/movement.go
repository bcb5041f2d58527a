package core

// Relocate transfers the piece at from onto the empty slot to. Callers
// validate the move first; Relocate only moves the pointer.
func Relocate(b *Board, from, to int) {
	b.cells[to] = b.cells[from]
	b.cells[from] = nil
}

// Capture discards the piece at to, moves the attacker from from onto it and
// returns the captured piece. Callers validate the attack first.
func Capture(b *Board, from, to int) *Piece {
	captured := b.cells[to]
	b.cells[to] = b.cells[from]
	b.cells[from] = nil
	return captured
}

package core

import "fmt"

// Rank is one of the seven piece ranks. Lower values are stronger, with the
// exceptions encoded in CanAttack.
type Rank int

const (
	General Rank = iota
	Advisor
	Elephant
	Chariot
	Horse
	Cannon
	Soldier
)

// NumRanks is the number of distinct ranks
const NumRanks = 7

// RankSet lists the 16 rank slots each color fields at the start of a game.
var RankSet = [16]Rank{
	General,
	Advisor, Advisor,
	Elephant, Elephant,
	Chariot, Chariot,
	Horse, Horse,
	Cannon, Cannon,
	Soldier, Soldier, Soldier, Soldier, Soldier,
}

// CanAttack reports whether a piece of rank r may capture a piece of rank
// defender. Geometry is checked elsewhere.
//
// The Cannon captures anything, the General captures anything but a Soldier,
// and a Soldier captures only Soldiers and the General. All other ranks
// capture pieces of equal or weaker rank.
func (r Rank) CanAttack(defender Rank) bool {
	switch r {
	case Cannon:
		return true
	case General:
		return defender != Soldier
	case Soldier:
		return defender == Soldier || defender == General
	default:
		return r <= defender
	}
}

// IsValid reports whether r is one of the seven ranks
func (r Rank) IsValid() bool {
	return r >= General && r <= Soldier
}

func (r Rank) String() string {
	switch r {
	case General:
		return "General"
	case Advisor:
		return "Advisor"
	case Elephant:
		return "Elephant"
	case Chariot:
		return "Chariot"
	case Horse:
		return "Horse"
	case Cannon:
		return "Cannon"
	case Soldier:
		return "Soldier"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// Symbol returns a one letter code for text boards. Chariot and Horse use
// R and N as in chess notation.
func (r Rank) Symbol() string {
	switch r {
	case General:
		return "G"
	case Advisor:
		return "A"
	case Elephant:
		return "E"
	case Chariot:
		return "R"
	case Horse:
		return "N"
	case Cannon:
		return "C"
	case Soldier:
		return "S"
	default:
		return "?"
	}
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_CanAttack_Exceptions(t *testing.T) {
	tests := []struct {
		name     string
		attacker Rank
		defender Rank
		expected bool
	}{
		{"general cannot take soldier", General, Soldier, false},
		{"general takes general", General, General, true},
		{"general takes cannon", General, Cannon, true},
		{"soldier takes general", Soldier, General, true},
		{"soldier takes soldier", Soldier, Soldier, true},
		{"soldier cannot take advisor", Soldier, Advisor, false},
		{"soldier cannot take cannon", Soldier, Cannon, false},
		{"cannon takes general", Cannon, General, true},
		{"cannon takes soldier", Cannon, Soldier, true},
		{"cannon takes chariot", Cannon, Chariot, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.attacker.CanAttack(tt.defender))
		})
	}
}

func TestRank_CanAttack_OrderForOrdinaryRanks(t *testing.T) {
	for a := General; a <= Soldier; a++ {
		for d := General; d <= Soldier; d++ {
			switch {
			case a == Cannon:
				assert.True(t, a.CanAttack(d), "%s vs %s", a, d)
			case a == General && d == Soldier:
				assert.False(t, a.CanAttack(d))
			case a == Soldier:
				assert.Equal(t, d == Soldier || d == General, a.CanAttack(d), "%s vs %s", a, d)
			default:
				assert.Equal(t, a <= d, a.CanAttack(d), "%s vs %s", a, d)
			}
		}
	}
}

func TestRank_CanAttack_IsAsymmetric(t *testing.T) {
	assert.True(t, Chariot.CanAttack(Horse))
	assert.False(t, Horse.CanAttack(Chariot))
	assert.True(t, Soldier.CanAttack(General))
	assert.False(t, General.CanAttack(Soldier))
}

func TestRankSet(t *testing.T) {
	counts := make(map[Rank]int)
	for _, r := range RankSet {
		counts[r]++
	}

	assert.Equal(t, 1, counts[General])
	for _, r := range []Rank{Advisor, Elephant, Chariot, Horse, Cannon} {
		assert.Equal(t, 2, counts[r], "rank %s", r)
	}
	assert.Equal(t, 5, counts[Soldier])
	assert.Len(t, counts, NumRanks)
}

func TestRank_String(t *testing.T) {
	assert.Equal(t, "General", General.String())
	assert.Equal(t, "Soldier", Soldier.String())
	assert.Equal(t, "Unknown(42)", Rank(42).String())
	assert.Equal(t, "N", Horse.Symbol())
	assert.Equal(t, "?", Rank(-1).Symbol())
	assert.False(t, Rank(7).IsValid())
}

func TestColor(t *testing.T) {
	assert.Equal(t, Red, Black.Opponent())
	assert.Equal(t, Black, Red.Opponent())
	assert.Equal(t, "Black", Black.String())
	assert.Equal(t, "Red", Red.String())
}

func TestPiece_Reveal(t *testing.T) {
	p := NewPiece(Horse, Red)
	assert.False(t, p.IsRevealed())
	assert.Equal(t, "hidden Red Horse", p.String())

	p.Reveal()
	assert.True(t, p.IsRevealed())

	p.Reveal()
	assert.True(t, p.IsRevealed(), "revealing twice keeps the piece face up")
	assert.Equal(t, Horse, p.Rank())
	assert.Equal(t, Red, p.Color())
	assert.Equal(t, "Red Horse", p.String())
}

func TestPiece_CanAttack(t *testing.T) {
	assert.True(t, NewPiece(Soldier, Red).CanAttack(NewPiece(General, Black)))
	assert.False(t, NewPiece(General, Red).CanAttack(NewPiece(Soldier, Black)))
}

package game

import "github.com/mitchelldurbincs/banqi/internal/game/core"

// ColorStats are the running totals for one color. Revealed counts pieces
// of that color turned over by either side; Moves and Captures count
// commands made by that color.
type ColorStats struct {
	Revealed  int `json:"revealed"`
	Moves     int `json:"moves"`
	Captures  int `json:"captures"`
	Remaining int `json:"remaining"`
	Hidden    int `json:"hidden"`
}

// Stats summarizes a game so far. No winner is inferred from it.
type Stats struct {
	Black    ColorStats `json:"black"`
	Red      ColorStats `json:"red"`
	Commands int        `json:"commands"`
}

// For returns the totals of color c
func (s Stats) For(c core.Color) ColorStats {
	if c == core.Red {
		return s.Red
	}
	return s.Black
}

// Stats recomputes piece counts from the board and combines them with the
// command counters
func (e *Engine) Stats() Stats {
	per := e.counters
	for idx := 0; idx < core.Size; idx++ {
		p := e.board.Get(idx)
		if p == nil {
			continue
		}
		per[p.Color()].Remaining++
		if !p.IsRevealed() {
			per[p.Color()].Hidden++
		}
	}
	return Stats{
		Black:    per[core.Black],
		Red:      per[core.Red],
		Commands: e.commands,
	}
}

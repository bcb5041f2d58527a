package game

import (
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/banqi/internal/game/core"
)

// ANSI color codes
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorCyan  = "\033[36m"
	ColorGray  = "\033[90m"
)

const (
	EmptySymbol  = "."
	HiddenSymbol = "#"
)

// RenderOptions control the text board
type RenderOptions struct {
	Color            bool
	ShowCoordinates  bool
	ShowHidden       bool
	ShowLegalTargets bool
}

// DefaultRenderOptions matches the display defaults of the config file
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Color: true, ShowCoordinates: true, ShowLegalTargets: true}
}

// Render returns the current board as text
func (e *Engine) Render(opts RenderOptions) string {
	return e.Snapshot().Render(opts)
}

// Render draws the snapshot as a 4x8 grid. Red pieces are upper case and
// Black pieces lower case; every cell is three characters wide. The armed
// cell is drawn as [x], legal targets as (x) and, with ShowHidden, face
// down pieces as {x}.
func (s Snapshot) Render(opts RenderOptions) string {
	var sb strings.Builder
	sb.Grow((core.Cols*3+4)*(core.Rows+4) + core.Size*len(ColorReset)*2)

	if opts.ShowCoordinates {
		sb.WriteString("  ")
		for col := 0; col < core.Cols; col++ {
			sb.WriteString(" ")
			sb.WriteString(strconv.Itoa(col))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	armed, isArmed := s.Selection.Cell()
	for row := 0; row < core.Rows; row++ {
		if opts.ShowCoordinates {
			sb.WriteString(strconv.Itoa(row))
			sb.WriteString(" ")
		}
		for col := 0; col < core.Cols; col++ {
			idx := core.Idx(row, col)
			cell := s.Cells[idx]

			left, right := " ", " "
			switch {
			case isArmed && idx == armed:
				left, right = "[", "]"
			case opts.ShowLegalTargets && s.IsLegalTarget(idx):
				left, right = "(", ")"
			case opts.ShowHidden && cell.Occupied && !cell.Revealed:
				left, right = "{", "}"
			}

			sb.WriteString(left)
			writeSymbol(&sb, cell, opts)
			sb.WriteString(right)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nTurn: ")
	sb.WriteString(s.Turn.String())
	sb.WriteString("  Selection: ")
	sb.WriteString(s.Selection.String())
	sb.WriteString("\n")
	sb.WriteString(EmptySymbol + "=empty " + HiddenSymbol + "=face down upper=Red lower=Black\n")

	return sb.String()
}

func writeSymbol(sb *strings.Builder, cell CellView, opts RenderOptions) {
	var symbol, color string
	switch {
	case !cell.Occupied:
		symbol, color = EmptySymbol, ColorGray
	case !cell.Revealed && !opts.ShowHidden:
		symbol, color = HiddenSymbol, ColorGray
	default:
		symbol = cell.Rank.Symbol()
		color = ColorCyan
		if cell.Color == core.Black {
			symbol = strings.ToLower(symbol)
		} else {
			color = ColorRed
		}
		if !cell.Revealed {
			color = ColorGray
		}
	}

	if !opts.Color {
		sb.WriteString(symbol)
		return
	}
	sb.WriteString(color)
	sb.WriteString(symbol)
	sb.WriteString(ColorReset)
}

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-lifeseq/automaton"
	"go-lifeseq/theme"
)

// PadSize is the width and height of the Launchpad pad window.
const PadSize = 8

// SoundingColumn returns the column that sounded on the last tick, or -1 when
// stopped. The clock has already moved past it, so it is one behind step.
func SoundingColumn(step, width int, running bool) int {
	if !running || width <= 0 {
		return -1
	}
	return ((step-1)%width + width) % width
}

// RenderGrid draws the grid with the highest row at the top, so pitches rise
// upwards. The sounding column is drawn in the playhead colour and marked
// above the grid; when stopped the marker shows where playback resumes.
func RenderGrid(g *automaton.Grid, step int, running bool, th *theme.Theme) string {
	hot := SoundingColumn(step, g.W, running)
	marker := hot
	if !running {
		marker = step
	}

	cell := lipgloss.NewStyle().Foreground(th.Cell())
	head := lipgloss.NewStyle().Foreground(th.Playhead())
	dim := lipgloss.NewStyle().Foreground(th.Muted())

	var out strings.Builder
	for x := 0; x < g.W; x++ {
		if x == marker {
			out.WriteString(head.Render(string(th.Symbols.Playhead)))
		} else {
			out.WriteString(" ")
		}
		out.WriteString(" ")
	}

	for y := g.H - 1; y >= 0; y-- {
		out.WriteString("\n")
		for x := 0; x < g.W; x++ {
			alive, _ := g.CellAt(x, y)
			switch {
			case alive && x == hot:
				out.WriteString(head.Render(string(th.Symbols.Alive)))
			case alive:
				out.WriteString(cell.Render(string(th.Symbols.Alive)))
			default:
				out.WriteString(dim.Render(string(th.Symbols.Dead)))
			}
			out.WriteString(" ")
		}
	}
	return out.String()
}

// PadWindow returns the 8x8 page of the grid containing column col, rows
// rowOffset..rowOffset+7. Pad row 0 is the bottom row of the Launchpad.
// Live cells in column hot light in the playhead colour; dead cells and
// cells outside the grid are dark.
func PadWindow(g *automaton.Grid, col, rowOffset, hot int, th *theme.Theme) [PadSize][PadSize]theme.RGB {
	var pads [PadSize][PadSize]theme.RGB
	if col < 0 {
		col = 0
	}
	page := col / PadSize * PadSize
	for r := 0; r < PadSize; r++ {
		for c := 0; c < PadSize; c++ {
			x, y := page+c, rowOffset+r
			alive, err := g.CellAt(x, y)
			if err != nil {
				continue
			}
			switch {
			case alive && x == hot:
				pads[r][c] = th.RGB(theme.RolePlayhead)
			case alive:
				pads[r][c] = th.RGB(theme.RoleCell)
			}
		}
	}
	return pads
}

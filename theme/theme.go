package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Alive    rune // ■ live cell
	Dead     rune // · dead cell
	Playhead rune // ▼ column marker
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Alive:    '■',
			Dead:     '·',
			Playhead: '▼',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG       = 0.0
	RoleCell     = 0.2
	RoleMuted    = 0.4
	RolePlayhead = 0.6
	RoleAccent   = 0.8
	RoleFG       = 1.0
)

func (t *Theme) BG() lipgloss.Color       { return t.Color(RoleBG) }
func (t *Theme) Cell() lipgloss.Color     { return t.Color(RoleCell) }
func (t *Theme) Muted() lipgloss.Color    { return t.Color(RoleMuted) }
func (t *Theme) Playhead() lipgloss.Color { return t.Color(RolePlayhead) }
func (t *Theme) Accent() lipgloss.Color   { return t.Color(RoleAccent) }
func (t *Theme) FG() lipgloss.Color       { return t.Color(RoleFG) }

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

// RGB returns raw RGB for any normalized value (for Launchpad)
func (t *Theme) RGB(norm float64) RGB {
	return t.Palette.Lookup(norm)
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}

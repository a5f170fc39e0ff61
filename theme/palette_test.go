package theme

import (
	"strings"
	"testing"
)

func TestParseGPL(t *testing.T) {
	src := `GIMP Palette
Name: Test
Columns: 2
# comment
  0   0   0	Black
255 128   0	Orange
bad line
300 0 0	out of range
`
	p, err := ParseGPL(strings.NewReader(src), "test")
	if err != nil {
		t.Fatalf("ParseGPL: %v", err)
	}
	if p.Name != "Test" || len(p.Colors) != 2 {
		t.Fatalf("parsed %q with %d colors", p.Name, len(p.Colors))
	}
	if p.Colors[1] != (RGB{255, 128, 0}) {
		t.Fatalf("second color %v", p.Colors[1])
	}
}

func TestParseGPLEmpty(t *testing.T) {
	if _, err := ParseGPL(strings.NewReader("GIMP Palette\n"), "empty"); err == nil {
		t.Fatalf("expected error for a palette without colors")
	}
}

func TestLookupEndpointsAndStops(t *testing.T) {
	p := DefaultPalette()
	if p.Lookup(-1) != p.Colors[0] || p.Lookup(2) != p.Colors[len(p.Colors)-1] {
		t.Fatalf("endpoints not clamped")
	}
	if got := p.Lookup(RoleCell); got != (RGB{56, 94, 114}) {
		t.Fatalf("cell colour %v", got)
	}
	if got := p.Lookup(RolePlayhead); got != (RGB{106, 171, 210}) {
		t.Fatalf("playhead colour %v", got)
	}
}

func TestLookupBlendsBetweenStops(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {255, 255, 255}}}
	mid := p.Lookup(0.5)
	for i, v := range mid {
		if v == 0 || v == 255 {
			t.Fatalf("channel %d not blended: %v", i, mid)
		}
	}
}

func TestThemeRoles(t *testing.T) {
	th := New(DefaultPalette())
	if got := th.BG(); got != "#141c24" {
		t.Fatalf("BG() = %q", got)
	}
	if got := th.FG(); got != "#fefefe" {
		t.Fatalf("FG() = %q", got)
	}
	if th.RGB(RolePlayhead) != (RGB{106, 171, 210}) {
		t.Fatalf("RGB(RolePlayhead) = %v", th.RGB(RolePlayhead))
	}
}

package scale

import (
	"errors"
	"strings"
	"testing"
)

var major = []int{0, 2, 4, 5, 7, 9, 11}

func TestBuildLength(t *testing.T) {
	root := Pitch(48)
	for _, n := range []int{0, 1, 7, 8, 36, 100} {
		got, err := Build(root, major, 6, n)
		if err != nil {
			t.Fatalf("Build(n=%d): %v", n, err)
		}
		if len(got) != n {
			t.Fatalf("Build(n=%d) returned %d pitches", n, len(got))
		}
	}
}

func TestBuildFirstOctaveIsPattern(t *testing.T) {
	root := Pitch(50)
	got, err := Build(root, major, 6, 36)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i, iv := range major {
		if got[i] != root+Pitch(iv) {
			t.Fatalf("pitch %d = %d, expected %d", i, got[i], root+Pitch(iv))
		}
	}
	// second repetition is one octave up
	for i, iv := range major {
		if got[len(major)+i] != root+Pitch(12+iv) {
			t.Fatalf("pitch %d = %d, expected %d", len(major)+i, got[len(major)+i], root+Pitch(12+iv))
		}
	}
}

func TestBuildExtendsPastOctaveSpan(t *testing.T) {
	pent := []int{0, 3, 5, 7, 10}
	got, err := Build(Pitch(36), pent, 2, 12)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(got) != 12 {
		t.Fatalf("len=%d, expected 12", len(got))
	}
	if got[10] != Pitch(36+24) || got[11] != Pitch(36+27) {
		t.Fatalf("third repetition wrong: %v", got[10:])
	}
}

func TestBuildEmptyPattern(t *testing.T) {
	if _, err := Build(Pitch(60), nil, 3, 10); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
	if _, err := Build(Pitch(60), []int{}, 3, 0); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern for zero length, got %v", err)
	}
}

func TestPitchNames(t *testing.T) {
	tests := []struct {
		p    Pitch
		want string
	}{
		{60, "C4"},
		{61, "C#4"},
		{69, "A4"},
		{0, "C-1"},
		{-1, "B-2"},
		{47, "B2"},
	}
	for _, tt := range tests {
		if got := tt.p.Name(); got != tt.want {
			t.Fatalf("Pitch(%d).Name()=%q, expected %q", tt.p, got, tt.want)
		}
	}
}

func TestFrequency(t *testing.T) {
	if f := Pitch(69).Frequency(); f != 440 {
		t.Fatalf("A4=%v", f)
	}
	if f := Pitch(81).Frequency(); f != 880 {
		t.Fatalf("A5=%v", f)
	}
}

func TestMIDIFolding(t *testing.T) {
	tests := []struct {
		p    Pitch
		want uint8
	}{
		{60, 60},
		{127, 127},
		{128, 116},
		{140, 116},
		{-3, 9},
	}
	for _, tt := range tests {
		if got := tt.p.MIDI(); got != tt.want {
			t.Fatalf("Pitch(%d).MIDI()=%d, expected %d", tt.p, got, tt.want)
		}
	}
}

func TestParseRoot(t *testing.T) {
	tests := []struct {
		in   string
		want Pitch
	}{
		{"C", 48},
		{"c#", 49},
		{"Db", 49},
		{"F#4", 66},
		{"A", 57},
		{"B#", 48},
		{"Bb-1", 10},
	}
	for _, tt := range tests {
		got, err := ParseRoot(tt.in, 3)
		if err != nil {
			t.Fatalf("ParseRoot(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseRoot(%q)=%d, expected %d", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "H", "C#x", "Q4"} {
		if _, err := ParseRoot(bad, 3); !errors.Is(err, ErrUnknownRoot) {
			t.Fatalf("ParseRoot(%q) err=%v, expected ErrUnknownRoot", bad, err)
		}
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() == 0 {
		t.Fatalf("default catalog is empty")
	}
	i, err := c.Find("dorian")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	p, _ := c.At(i)
	if p.Label() != "Dorian (Modes)" {
		t.Fatalf("Label()=%q", p.Label())
	}
	if _, err := c.At(c.Len()); !errors.Is(err, ErrUnknownScale) {
		t.Fatalf("At(len) err=%v", err)
	}
	if _, err := c.Find("nope"); !errors.Is(err, ErrUnknownScale) {
		t.Fatalf("Find(nope) err=%v", err)
	}
}

func TestLoadCatalogRejectsEmptyPattern(t *testing.T) {
	src := "- {name: Broken, group: X, intervals: []}\n"
	if _, err := LoadCatalog(strings.NewReader(src)); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestLoadCatalogOrder(t *testing.T) {
	src := `
- name: Two
  intervals: [0, 7]
- name: One
  group: G
  intervals: [0]
`
	c, err := LoadCatalog(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Len() != 2 || c.Presets[0].Name != "Two" || c.Presets[1].Label() != "One (G)" {
		t.Fatalf("unexpected catalog %+v", c.Presets)
	}
}

package automaton

import (
	"errors"
	"testing"
)

func gridWith(w, h int, live ...[2]int) *Grid {
	g := NewGrid(w, h)
	for _, c := range live {
		g.Set(c[0], c[1], true)
	}
	return g
}

func expectCells(t *testing.T, g *Grid, live ...[2]int) {
	t.Helper()
	want := map[[2]int]bool{}
	for _, c := range live {
		want[c] = true
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive, _ := g.CellAt(x, y)
			if alive != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, want[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := gridWith(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	g = Step(g)
	expectCells(t, g, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	g = Step(g)
	expectCells(t, g, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	g := NewGrid(32, 36)
	g = Step(Step(g))
	if n := g.Alive(); n != 0 {
		t.Fatalf("empty grid grew %d cells", n)
	}
}

func TestCornerNeighboursAreClamped(t *testing.T) {
	// With wraparound (W-1,0) would be a second neighbour of (0,0) and the
	// corner cell would survive.
	g := gridWith(8, 8, [2]int{0, 0}, [2]int{1, 0}, [2]int{7, 0})

	if n := Neighbours(g, 0, 0); n != 1 {
		t.Fatalf("corner neighbours=%d, expected 1", n)
	}
	next := Step(g)
	if alive, _ := next.CellAt(0, 0); alive {
		t.Fatalf("corner cell survived with a single in-bounds neighbour")
	}
}

func TestBlockInCornerIsStable(t *testing.T) {
	g := gridWith(4, 4, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
	next := Step(g)
	if !next.Equal(g) {
		t.Fatalf("block in corner changed")
	}
}

func TestNextDoesNotMutateInput(t *testing.T) {
	g := gridWith(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	before := g.Clone()
	_ = Step(g)
	if !g.Equal(before) {
		t.Fatalf("Step modified its input")
	}
}

func TestNeighbourCounts(t *testing.T) {
	g := NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Set(x, y, true)
		}
	}
	tests := []struct {
		x, y, want int
	}{
		{0, 0, 3},
		{1, 0, 5},
		{1, 1, 8},
		{2, 2, 3},
		{2, 1, 5},
	}
	for _, tt := range tests {
		if got := Neighbours(g, tt.x, tt.y); got != tt.want {
			t.Fatalf("Neighbours(%d,%d)=%d, expected %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule("B3/S23")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}
	if r != Life {
		t.Fatalf("B3/S23 parsed as %+v, expected %+v", r, Life)
	}
	if s := r.String(); s != "B3/S23" {
		t.Fatalf("String()=%q", s)
	}

	hl, err := ParseRule("b36/s23")
	if err != nil {
		t.Fatalf("ParseRule highlife: %v", err)
	}
	if hl.String() != "B36/S23" {
		t.Fatalf("highlife round trip: %q", hl.String())
	}

	seeds, err := ParseRule("B2/S")
	if err != nil {
		t.Fatalf("ParseRule seeds: %v", err)
	}
	if seeds.Survive != 0 || seeds.Birth != 1<<2 {
		t.Fatalf("B2/S parsed as %+v", seeds)
	}

	for _, bad := range []string{"", "23/3", "B3", "B9/S23", "B3/S2x", "X3/S23", "B3/B3", "S23/S2"} {
		if _, err := ParseRule(bad); !errors.Is(err, ErrBadRule) {
			t.Fatalf("ParseRule(%q) err=%v, expected ErrBadRule", bad, err)
		}
	}
}

func TestParseRuleEitherOrder(t *testing.T) {
	r, err := ParseRule("S23/B3")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}
	if r != Life {
		t.Fatalf("S23/B3 parsed as %s", r)
	}
}

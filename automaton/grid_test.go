package automaton

import (
	"errors"
	"testing"
)

func TestSeededFillDeterministic(t *testing.T) {
	for _, seed := range []int64{1, 42, 1234, -7, 9999} {
		a := NewGrid(32, 36)
		b := NewGrid(32, 36)
		a.SeededFill(seed)
		b.SeededFill(seed)
		if !a.Equal(b) {
			t.Fatalf("seed %d produced different grids", seed)
		}
		if a.Alive() == 0 {
			t.Fatalf("seed %d produced an empty grid", seed)
		}
	}
}

func TestSeededFillSeedsDiffer(t *testing.T) {
	a := NewGrid(32, 36)
	b := NewGrid(32, 36)
	a.SeededFill(1)
	b.SeededFill(2)
	if a.Equal(b) {
		t.Fatalf("seeds 1 and 2 produced identical grids")
	}
}

func TestSeedZeroClears(t *testing.T) {
	g := NewGrid(32, 36)
	g.SeededFill(1234)
	if g.Alive() == 0 {
		t.Fatalf("expected live cells before clearing")
	}
	g.SeededFill(0)
	if n := g.Alive(); n != 0 {
		t.Fatalf("seed 0 left %d live cells", n)
	}
}

func TestFillMatchesSeededFill(t *testing.T) {
	a := NewGrid(8, 6)
	b := NewGrid(8, 6)
	a.SeededFill(77)
	s := NewStream(77)
	s.Skip(SeedDraws)
	b.Fill(s)
	if !a.Equal(b) {
		t.Fatalf("Fill and SeededFill disagree for the same seed")
	}
}

func TestFillIsColumnMajor(t *testing.T) {
	g := NewGrid(3, 4)
	g.Fill(NewStream(5))

	s := NewStream(5)
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			want := s.Coin()
			got, err := g.CellAt(x, y)
			if err != nil {
				t.Fatalf("CellAt(%d,%d): %v", x, y, err)
			}
			if got != want {
				t.Fatalf("cell (%d,%d)=%v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestCellAtOutOfRange(t *testing.T) {
	g := NewGrid(4, 3)
	cases := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {10, 10}}
	for _, c := range cases {
		if _, err := g.CellAt(c[0], c[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("CellAt(%d,%d) err=%v, expected ErrIndexOutOfRange", c[0], c[1], err)
		}
		if err := g.Set(c[0], c[1], true); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Set(%d,%d) err=%v, expected ErrIndexOutOfRange", c[0], c[1], err)
		}
	}
	if _, err := g.Column(4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Column(4) err=%v, expected ErrIndexOutOfRange", err)
	}
}

func TestReplaceWith(t *testing.T) {
	g := NewGrid(4, 4)
	next := NewGrid(4, 4)
	next.Set(1, 2, true)

	if err := g.ReplaceWith(next); err != nil {
		t.Fatalf("ReplaceWith: %v", err)
	}
	if alive, _ := g.CellAt(1, 2); !alive {
		t.Fatalf("expected (1,2) alive after replace")
	}
	if err := g.ReplaceWith(NewGrid(5, 4)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	if g.W != 4 || g.H != 4 {
		t.Fatalf("dimensions changed to %dx%d", g.W, g.H)
	}
}

func TestColumn(t *testing.T) {
	g := NewGrid(3, 5)
	g.Set(1, 4, true)
	g.Set(1, 0, true)
	g.Set(2, 2, true)

	rows, err := g.Column(1)
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if len(rows) != 2 || rows[0] != 0 || rows[1] != 4 {
		t.Fatalf("Column(1)=%v, expected [0 4]", rows)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(0, 0, true)
	c := g.Clone()
	g.Clear()
	if alive, _ := c.CellAt(0, 0); !alive {
		t.Fatalf("clone shares storage with original")
	}
}

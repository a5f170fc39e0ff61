package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned for coordinates outside the grid.
	ErrIndexOutOfRange = errors.New("cell index out of range")
	// ErrDimensionMismatch is returned when replacing a grid with one of a
	// different size.
	ErrDimensionMismatch = errors.New("grid dimensions differ")
)

// Grid is a fixed-size matrix of live/dead cells stored in row-major order.
// Columns are time steps, rows are pitch slots.
type Grid struct {
	W, H  int
	cells []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]bool, w*h)}
}

func (g *Grid) index(x, y int) int { return y*g.W + x }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// alive reads a cell without bounds checking.
func (g *Grid) alive(x, y int) bool { return g.cells[g.index(x, y)] }

// CellAt reports whether the cell at (x, y) is alive.
func (g *Grid) CellAt(x, y int) (bool, error) {
	if !g.inBounds(x, y) {
		return false, fmt.Errorf("cell (%d,%d) of %dx%d grid: %w", x, y, g.W, g.H, ErrIndexOutOfRange)
	}
	return g.alive(x, y), nil
}

// Set changes a single cell. It is meant for building fixtures and patterns,
// not for evolving a generation.
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("cell (%d,%d) of %dx%d grid: %w", x, y, g.W, g.H, ErrIndexOutOfRange)
	}
	g.cells[g.index(x, y)] = alive
	return nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// SeededFill clears the grid for seed 0 and otherwise fills it with
// independent coin flips from seed's stream, after its first SeedDraws
// values.
func (g *Grid) SeededFill(seed int64) {
	if seed == 0 {
		g.Clear()
		return
	}
	s := NewStream(seed)
	s.Skip(SeedDraws)
	g.Fill(s)
}

// Fill draws one coin per cell from s, column by column (x outer, y inner).
// The order is part of a seed's identity and must not change.
func (g *Grid) Fill(s *Stream) {
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			g.cells[g.index(x, y)] = s.Coin()
		}
	}
}

// ReplaceWith swaps in next as the current generation. The grid takes over
// next's buffer; callers must not keep using next afterwards.
func (g *Grid) ReplaceWith(next *Grid) error {
	if next == nil || next.W != g.W || next.H != g.H {
		return ErrDimensionMismatch
	}
	g.cells = next.cells
	next.cells = nil
	return nil
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Alive returns the population.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Column returns the live rows of column x in ascending order.
func (g *Grid) Column(x int) ([]int, error) {
	if x < 0 || x >= g.W {
		return nil, fmt.Errorf("column %d of %dx%d grid: %w", x, g.W, g.H, ErrIndexOutOfRange)
	}
	var rows []int
	for y := 0; y < g.H; y++ {
		if g.alive(x, y) {
			rows = append(rows, y)
		}
	}
	return rows, nil
}

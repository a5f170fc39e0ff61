package automaton

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadRule is returned for rule strings that are not in B/S notation.
var ErrBadRule = errors.New("invalid rule string")

// neighbourOffsets is the Moore neighbourhood, scanned in this order.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Rule is a Life-like rule. Bit n of Birth (Survive) is set when a dead
// (live) cell with n live neighbours is alive in the next generation.
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Life is Conway's B3/S23.
var Life = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// ParseRule parses "B3/S23" style notation. Either half may be empty
// ("B3/S") but there must be exactly one B half and one S half.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%q: %w", s, ErrBadRule)
	}
	var r Rule
	seen := map[byte]bool{}
	for _, p := range parts {
		if p == "" {
			return Rule{}, fmt.Errorf("%q: %w", s, ErrBadRule)
		}
		if seen[p[0]] {
			return Rule{}, fmt.Errorf("%q: %w", s, ErrBadRule)
		}
		seen[p[0]] = true
		var mask *uint16
		switch p[0] {
		case 'B':
			mask = &r.Birth
		case 'S':
			mask = &r.Survive
		default:
			return Rule{}, fmt.Errorf("%q: %w", s, ErrBadRule)
		}
		for _, c := range p[1:] {
			if c < '0' || c > '8' {
				return Rule{}, fmt.Errorf("%q: %w", s, ErrBadRule)
			}
			*mask |= 1 << uint(c-'0')
		}
	}
	return r, nil
}

// String renders the rule in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n := 0; n <= 8; n++ {
		if r.Birth&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n := 0; n <= 8; n++ {
		if r.Survive&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// Neighbours counts the live cells around (x, y). Neighbours that fall
// outside the grid are skipped, not wrapped to the opposite edge, so edge
// and corner cells see fewer candidates than interior ones.
func Neighbours(g *Grid, x, y int) int {
	count := 0
	for _, o := range neighbourOffsets {
		nx, ny := x+o[0], y+o[1]
		if !g.inBounds(nx, ny) {
			continue
		}
		if g.alive(nx, ny) {
			count++
		}
	}
	return count
}

// Next computes the following generation into a new grid. g is only read.
func (r Rule) Next(g *Grid) *Grid {
	next := NewGrid(g.W, g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			n := Neighbours(g, x, y)
			mask := r.Birth
			if g.alive(x, y) {
				mask = r.Survive
			}
			next.cells[next.index(x, y)] = mask&(1<<n) != 0
		}
	}
	return next
}

// Step advances g by one generation of Life.
func Step(g *Grid) *Grid {
	return Life.Next(g)
}

package automaton

import "math/rand/v2"

// Stream is a deterministic pseudo-random source seeded from a run's seed.
// A single stream is shared by every draw made for one seed so that the same
// seed always yields the same defaults and the same initial grid.
type Stream struct {
	r *rand.Rand
}

// SeedDraws is how many values a seed's stream yields before the grid fill.
// They pick the run's default tempo, root and scale.
const SeedDraws = 3

// NewStream creates a Stream for seed.
func NewStream(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns the next value in [0, 1).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}

// Range returns the next value scaled into [lo, hi).
func (s *Stream) Range(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// Skip discards the next n values.
func (s *Stream) Skip(n int) {
	for i := 0; i < n; i++ {
		s.r.Float64()
	}
}

// Coin returns true with probability 0.5.
func (s *Stream) Coin() bool {
	return s.r.Float64() >= 0.5
}

package sequencer

import "time"

// Width is the number of columns (steps per loop), Height the number of
// pitch rows, twelve per octave.
const (
	Width    = 32
	Octaves  = 3
	Height   = 12 * Octaves
	TempoMin = 50
	TempoMax = 450
)

// TickInterval is the time between steps at bpm: 60000/bpm milliseconds.
func TickInterval(bpm int) time.Duration {
	return time.Minute / time.Duration(ClampTempo(bpm))
}

// ClampTempo limits bpm to [TempoMin, TempoMax].
func ClampTempo(bpm int) int {
	return min(max(bpm, TempoMin), TempoMax)
}

// Clock tracks the playhead and decides when the next step is due. It is
// polled; nothing in it blocks or sleeps.
type Clock struct {
	width   int
	step    int
	tempo   int
	running bool
	last    time.Time
}

// NewClock returns a stopped clock at step 0.
func NewClock(width, tempo int) *Clock {
	if width <= 0 {
		width = Width
	}
	return &Clock{width: width, tempo: ClampTempo(tempo)}
}

// Start sets the tick baseline to now. The playhead is left where it is.
func (c *Clock) Start(now time.Time) {
	c.running = true
	c.last = now
}

// Stop halts the clock and rewinds the playhead to column 0.
func (c *Clock) Stop() {
	c.running = false
	c.step = 0
}

// ResetStep rewinds the playhead without changing the run state.
func (c *Clock) ResetStep() { c.step = 0 }

func (c *Clock) Running() bool { return c.running }
func (c *Clock) Step() int     { return c.step }
func (c *Clock) Tempo() int    { return c.tempo }

// SetTempo changes the tempo; the next Due check already uses it.
func (c *Clock) SetTempo(bpm int) { c.tempo = ClampTempo(bpm) }

// Due reports whether more than one tick interval has passed since the last
// step. Always false while stopped.
func (c *Clock) Due(now time.Time) bool {
	return c.running && now.Sub(c.last) > TickInterval(c.tempo)
}

// Advance moves the playhead one column, wrapping at the width, and makes
// now the new baseline.
func (c *Clock) Advance(now time.Time) {
	c.step++
	if c.step >= c.width {
		c.step = 0
	}
	c.last = now
}

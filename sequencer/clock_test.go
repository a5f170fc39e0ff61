package sequencer

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	if d := TickInterval(120); d != 500*time.Millisecond {
		t.Fatalf("TickInterval(120)=%v, expected 500ms", d)
	}
	if d := TickInterval(60); d != time.Second {
		t.Fatalf("TickInterval(60)=%v", d)
	}
	if d := TickInterval(10); d != TickInterval(TempoMin) {
		t.Fatalf("tempo below minimum not clamped: %v", d)
	}
}

func TestClockDueIsStrict(t *testing.T) {
	t0 := time.Unix(100, 0)
	c := NewClock(8, 120)
	if c.Due(t0.Add(time.Hour)) {
		t.Fatalf("stopped clock reported due")
	}
	c.Start(t0)
	if c.Due(t0.Add(500 * time.Millisecond)) {
		t.Fatalf("due exactly at the interval, expected strictly after")
	}
	if !c.Due(t0.Add(501 * time.Millisecond)) {
		t.Fatalf("not due after the interval")
	}
}

func TestClockWraps(t *testing.T) {
	t0 := time.Unix(0, 0)
	c := NewClock(4, 120)
	c.Start(t0)
	for i := 1; i <= 5; i++ {
		c.Advance(t0.Add(time.Duration(i) * time.Second))
	}
	if c.Step() != 1 {
		t.Fatalf("step=%d after 5 advances on width 4, expected 1", c.Step())
	}
}

func TestClockStopRewindsStartDoesNot(t *testing.T) {
	t0 := time.Unix(0, 0)
	c := NewClock(8, 120)
	c.Start(t0)
	c.Advance(t0.Add(time.Second))
	c.Advance(t0.Add(2 * time.Second))

	c.Stop()
	if c.Running() || c.Step() != 0 {
		t.Fatalf("after stop running=%v step=%d", c.Running(), c.Step())
	}

	c.Start(t0)
	c.Advance(t0.Add(time.Second))
	c.Start(t0.Add(2 * time.Second))
	if c.Step() != 1 {
		t.Fatalf("start moved the playhead to %d", c.Step())
	}
}

func TestClockTempoChangeAppliesToPendingTick(t *testing.T) {
	t0 := time.Unix(0, 0)
	c := NewClock(8, 60)
	c.Start(t0)

	at := t0.Add(600 * time.Millisecond)
	if c.Due(at) {
		t.Fatalf("due at 600ms with 60 bpm")
	}
	c.SetTempo(120)
	if !c.Due(at) {
		t.Fatalf("tempo change not applied to the pending tick")
	}
}

func TestClampTempo(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, TempoMin},
		{49, TempoMin},
		{50, 50},
		{200, 200},
		{450, 450},
		{1000, TempoMax},
	}
	for _, tt := range tests {
		if got := ClampTempo(tt.in); got != tt.want {
			t.Fatalf("ClampTempo(%d)=%d, expected %d", tt.in, got, tt.want)
		}
	}
}

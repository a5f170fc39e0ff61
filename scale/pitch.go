package scale

import (
	"fmt"
	"math"
)

// Pitch is a MIDI note number; 60 is middle C (C4). Values outside 0..127
// are allowed while building scales and folded back by MIDI.
type Pitch int

// Name returns the note name with octave, e.g. "C#3".
func (p Pitch) Name() string {
	n := int(p)
	pc := ((n % 12) + 12) % 12
	oct := (n-pc)/12 - 1
	return fmt.Sprintf("%s%d", NoteNames[pc], oct)
}

// Frequency returns the equal-tempered frequency in Hz with A4 = 440.
func (p Pitch) Frequency() float64 {
	return 440 * math.Pow(2, float64(int(p)-69)/12)
}

// MIDI returns the note as a MIDI note number, moving it by whole octaves
// until it fits 0..127. The pitch class is preserved.
func (p Pitch) MIDI() uint8 {
	n := int(p)
	for n > 127 {
		n -= 12
	}
	for n < 0 {
		n += 12
	}
	return uint8(n)
}

func (p Pitch) String() string { return p.Name() }

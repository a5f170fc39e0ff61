package scale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownRoot is returned for root names that are not a note name.
var ErrUnknownRoot = errors.New("unknown root note")

// NoteNames are the twelve pitch classes, starting at C.
var NoteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flats = map[string]string{
	"DB": "C#", "EB": "D#", "GB": "F#", "AB": "G#", "BB": "A#",
	"CB": "B", "FB": "E", "E#": "F", "B#": "C",
}

// PitchClass returns the index of name in NoteNames. Flats and enharmonic
// spellings are accepted.
func PitchClass(name string) (int, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if alias, ok := flats[n]; ok {
		n = alias
	}
	for i, nn := range NoteNames {
		if nn == n {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownRoot)
}

// ParseRoot turns a note name into a Pitch. A trailing octave number
// ("F#4", "Bb-1") overrides defaultOctave.
func ParseRoot(name string, defaultOctave int) (Pitch, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownRoot)
	}
	split := len(s)
	for i := 1; i < len(s); i++ {
		if s[i] == '-' || (s[i] >= '0' && s[i] <= '9') {
			split = i
			break
		}
	}
	octave := defaultOctave
	if split < len(s) {
		o, err := strconv.Atoi(s[split:])
		if err != nil {
			return 0, fmt.Errorf("%q: %w", name, ErrUnknownRoot)
		}
		octave = o
	}
	pc, err := PitchClass(s[:split])
	if err != nil {
		return 0, err
	}
	return Pitch((octave+1)*12 + pc), nil
}

// Package scale maps automaton rows to pitches.
package scale

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is returned when an interval pattern has no entries.
var ErrInvalidPattern = errors.New("interval pattern is empty")

// Build lays pattern out from root, one octave higher on each repetition,
// until at least octaves repetitions and length pitches exist, and returns
// exactly length pitches. The first len(pattern) entries are the pattern
// transposed onto root.
func Build(root Pitch, pattern []int, octaves, length int) ([]Pitch, error) {
	if len(pattern) == 0 {
		return nil, fmt.Errorf("build scale from %s: %w", root.Name(), ErrInvalidPattern)
	}
	if length <= 0 {
		return []Pitch{}, nil
	}
	out := make([]Pitch, 0, max(length, octaves*len(pattern)))
	for oct := 0; oct < octaves || len(out) < length; oct++ {
		for _, iv := range pattern {
			out = append(out, root+Pitch(12*oct+iv))
		}
	}
	return out[:length], nil
}

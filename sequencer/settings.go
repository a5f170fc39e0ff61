package sequencer

import (
	"math"
	"math/rand/v2"

	"go-lifeseq/automaton"
	"go-lifeseq/scale"
)

// Settings are the externally settable values of a run.
type Settings struct {
	Seed  int64
	Tempo int
	Root  string // pitch class name, one of scale.NoteNames
	Scale int    // index into the catalog
}

// drawDefaults takes the tempo, root and scale draws from s, exactly
// automaton.SeedDraws of them; the grid fill follows on the same stream.
func drawDefaults(s *automaton.Stream, presets int) Settings {
	tempo := int(math.Ceil(s.Range(TempoMin, TempoMax)))
	root := int(math.Floor(s.Range(0, float64(len(scale.NoteNames)))))
	preset := int(math.Floor(s.Range(0, float64(presets))))
	return Settings{
		Tempo: ClampTempo(tempo),
		Root:  scale.NoteNames[root],
		Scale: preset,
	}
}

// DefaultSettings derives tempo, root and scale for seed from its random
// stream.
func DefaultSettings(seed int64, catalog *scale.Catalog) Settings {
	s := drawDefaults(automaton.NewStream(seed), catalog.Len())
	s.Seed = seed
	return s
}

// MaxSeed bounds the seeds handed out by RandomSeed.
const MaxSeed = 9999

// RandomSeed picks a non-zero seed in [1, MaxSeed].
func RandomSeed() int64 {
	return rand.Int64N(MaxSeed) + 1
}

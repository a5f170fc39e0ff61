package config

import (
	"fmt"

	"go-lifeseq/automaton"
	"go-lifeseq/scale"
	"go-lifeseq/sequencer"
	"go-lifeseq/theme"
)

// Catalog loads ScalesFile, or the built-in presets when it is empty.
func (c *Config) Catalog() (*scale.Catalog, error) {
	if c.ScalesFile == "" {
		return scale.DefaultCatalog(), nil
	}
	return scale.LoadCatalogFile(c.ScalesFile)
}

// LoadPalette loads Palette, or the built-in palette when it is empty.
func (c *Config) LoadPalette() (*theme.Palette, error) {
	if c.Palette == "" {
		return theme.DefaultPalette(), nil
	}
	return theme.LoadGPL(c.Palette)
}

// ManagerOptions turns the config into sequencer options.
func (c *Config) ManagerOptions(catalog *scale.Catalog, synth sequencer.Synth) (sequencer.Options, error) {
	rule, err := automaton.ParseRule(c.Rule)
	if err != nil {
		return sequencer.Options{}, err
	}
	if c.Velocity < 1 || c.Velocity > 127 {
		return sequencer.Options{}, fmt.Errorf("velocity %d out of range 1-127", c.Velocity)
	}
	opts := sequencer.DefaultOptions()
	opts.Catalog = catalog
	opts.RootOctave = c.RootOctave
	opts.Rule = rule
	opts.Velocity = uint8(c.Velocity)
	opts.Synth = synth
	return opts, nil
}

// Settings resolves the run settings: the seed (random when not given), then
// the seed's defaults, overridden by any of -tempo, -root and -scale.
func (f *Flags) Settings(catalog *scale.Catalog) (sequencer.Settings, error) {
	seed := f.Seed
	if !f.SeedSet {
		seed = sequencer.RandomSeed()
	}
	s := sequencer.DefaultSettings(seed, catalog)

	if f.TempoSet {
		s.Tempo = sequencer.ClampTempo(f.Tempo)
	}
	if f.Root != "" {
		if _, err := scale.ParseRoot(f.Root, 0); err != nil {
			return s, err
		}
		s.Root = f.Root
	}
	if f.Scale != "" {
		i, err := catalog.Find(f.Scale)
		if err != nil {
			return s, err
		}
		s.Scale = i
	}
	return s, nil
}

package config

import "flag"

// Flags are the command-line parameters. Seed, tempo, root and scale left
// unset are drawn from the seed's random stream.
type Flags struct {
	Seed       int64
	Tempo      int
	Root       string
	Scale      string
	ConfigPath string
	Debug      bool
	NoColor    bool

	SeedSet  bool
	TempoSet bool
}

// NewFlags returns Flags populated with defaults.
func NewFlags() *Flags {
	return &Flags{}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed of the run (0 = empty grid, unset = random)")
	fs.IntVar(&f.Tempo, "tempo", f.Tempo, "tempo in BPM (unset = from seed)")
	fs.StringVar(&f.Root, "root", f.Root, "root note, e.g. C, F#, Bb3 (unset = from seed)")
	fs.StringVar(&f.Scale, "scale", f.Scale, "scale preset name (unset = from seed)")
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "config file (default ~/.config/go-lifeseq/config.json)")
	fs.BoolVar(&f.Debug, "debug", f.Debug, "write a debug log next to the config file")
	fs.BoolVar(&f.NoColor, "no-color", f.NoColor, "disable colours")
}

// Resolve records which flags were given explicitly. Call after Parse.
func (f *Flags) Resolve(fs *flag.FlagSet) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			f.SeedSet = true
		case "tempo":
			f.TempoSet = true
		}
	})
}

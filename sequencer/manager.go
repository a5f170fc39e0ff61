package sequencer

import (
	"fmt"
	"time"

	"go-lifeseq/automaton"
	"go-lifeseq/debug"
	"go-lifeseq/midi"
	"go-lifeseq/scale"
)

// Synth receives triggered notes. Start is called when playback starts
// (devices that need unlocking or opening do it there), Stop when it stops.
// Flush is called on every tick so that pending note-offs can be released.
type Synth interface {
	Start() error
	Play(now time.Time, events []midi.Event)
	Flush(now time.Time)
	Stop()
}

var _ Synth = (*midi.Output)(nil)

// Options configure a Manager. Zero sizes, catalog, scale octaves and
// velocity select the defaults; RootOctave and Rule are used as given, so
// start from DefaultOptions.
type Options struct {
	Width, Height int
	Catalog       *scale.Catalog
	RootOctave    int // octave of the lowest row
	ScaleOctaves  int // octaves laid out before truncation
	Rule          automaton.Rule
	Velocity      uint8
	Synth         Synth
}

// Manager is the run controller. It owns the grid, the clock and the current
// scale, and is driven by calling Tick with the current time. Renderers and
// synths only read from it.
type Manager struct {
	grid       *automaton.Grid
	clock      *Clock
	rule       automaton.Rule
	catalog    *scale.Catalog
	rootOctave int
	octaves    int
	velocity   uint8
	synth      Synth

	settings   Settings
	scale      []scale.Pitch
	generation int
}

// DefaultOptions plays Life with the lowest row in octave 3.
func DefaultOptions() Options {
	return Options{
		Width:        Width,
		Height:       Height,
		RootOctave:   3,
		ScaleOctaves: Octaves * 2,
		Rule:         automaton.Life,
		Velocity:     midi.DefaultVelocity,
	}
}

// NewManager builds a stopped manager provisioned with settings.Seed.
func NewManager(opts Options, settings Settings) (*Manager, error) {
	if opts.Width <= 0 {
		opts.Width = Width
	}
	if opts.Height <= 0 {
		opts.Height = Height
	}
	if opts.Catalog == nil {
		opts.Catalog = scale.DefaultCatalog()
	}
	if opts.ScaleOctaves <= 0 {
		opts.ScaleOctaves = Octaves * 2
	}
	if opts.Velocity == 0 {
		opts.Velocity = midi.DefaultVelocity
	}

	m := &Manager{
		grid:       automaton.NewGrid(opts.Width, opts.Height),
		clock:      NewClock(opts.Width, settings.Tempo),
		rule:       opts.Rule,
		catalog:    opts.Catalog,
		rootOctave: opts.RootOctave,
		octaves:    opts.ScaleOctaves,
		velocity:   opts.Velocity,
		synth:      opts.Synth,
		settings:   settings,
	}
	m.settings.Tempo = m.clock.Tempo()
	if err := m.rebuildScale(settings.Root, settings.Scale); err != nil {
		return nil, err
	}
	m.Provision(settings.Seed)
	return m, nil
}

// Provision stops playback, refills the grid from seed and rewinds the
// playhead. Seed 0 gives an empty grid.
func (m *Manager) Provision(seed int64) {
	if m.clock.Running() {
		m.stop()
	}
	m.settings.Seed = seed
	m.grid.SeededFill(seed)
	m.clock.ResetStep()
	m.generation = 0
	debug.Log("run", "provisioned seed=%d alive=%d", seed, m.grid.Alive())
}

// ApplySeedDefaults replaces tempo, root and scale with the values drawn
// from the current seed.
func (m *Manager) ApplySeedDefaults() error {
	d := DefaultSettings(m.settings.Seed, m.catalog)
	if err := m.rebuildScale(d.Root, d.Scale); err != nil {
		return err
	}
	m.SetTempo(d.Tempo)
	return nil
}

// Toggle starts a stopped run or stops a running one. A synth that fails to
// start does not keep the run from starting; its error is returned.
func (m *Manager) Toggle(now time.Time) error {
	if m.clock.Running() {
		m.stop()
		return nil
	}
	return m.start(now)
}

func (m *Manager) start(now time.Time) error {
	m.clock.Start(now)
	debug.Log("run", "start step=%d tempo=%d", m.clock.Step(), m.clock.Tempo())
	if m.synth == nil {
		return nil
	}
	if err := m.synth.Start(); err != nil {
		return fmt.Errorf("start synth: %w", err)
	}
	return nil
}

// stop halts playback; the playhead rewinds, the grid is kept.
func (m *Manager) stop() {
	m.clock.Stop()
	if m.synth != nil {
		m.synth.Stop()
	}
	debug.Log("run", "stop generation=%d", m.generation)
}

// Tick is the single entry point of the driving loop. When a step is due it
// returns the notes of the playhead column, replaces the grid with the next
// generation and moves the playhead. Otherwise it returns nil and changes
// nothing.
func (m *Manager) Tick(now time.Time) []midi.Event {
	if m.synth != nil {
		m.synth.Flush(now)
	}
	if !m.clock.Due(now) {
		return nil
	}

	events := m.column(m.clock.Step())
	if err := m.grid.ReplaceWith(m.rule.Next(m.grid)); err != nil {
		// Next always returns a grid of the same size
		panic(err)
	}
	m.generation++
	m.clock.Advance(now)

	if m.synth != nil && len(events) > 0 {
		m.synth.Play(now, events)
	}
	debug.LogEvery(16, "tick", "step=%d notes=%d gen=%d", m.clock.Step(), len(events), m.generation)
	return events
}

// column returns one note per live cell of column x, lowest row first.
func (m *Manager) column(x int) []midi.Event {
	rows, err := m.grid.Column(x)
	if err != nil {
		panic(err) // the playhead never leaves the grid
	}
	events := make([]midi.Event, 0, len(rows))
	for _, y := range rows {
		events = append(events, midi.Event{
			Type:     midi.NoteOn,
			Note:     m.scale[y].MIDI(),
			Velocity: m.velocity,
			Row:      y,
			Col:      x,
		})
	}
	return events
}

// SetTempo changes the tempo, clamped to [TempoMin, TempoMax]. A pending
// step uses the new tempo.
func (m *Manager) SetTempo(bpm int) {
	m.clock.SetTempo(bpm)
	m.settings.Tempo = m.clock.Tempo()
}

// SetRoot changes the root note of the scale.
func (m *Manager) SetRoot(name string) error {
	return m.rebuildScale(name, m.settings.Scale)
}

// SetScale selects catalog preset i.
func (m *Manager) SetScale(i int) error {
	return m.rebuildScale(m.settings.Root, i)
}

// SetScaleByName selects a preset by name.
func (m *Manager) SetScaleByName(name string) error {
	i, err := m.catalog.Find(name)
	if err != nil {
		return err
	}
	return m.SetScale(i)
}

// ShiftRoot moves the root by n semitones within the octave.
func (m *Manager) ShiftRoot(n int) error {
	pc, err := scale.PitchClass(m.settings.Root)
	if err != nil {
		return err
	}
	k := len(scale.NoteNames)
	return m.SetRoot(scale.NoteNames[((pc+n)%k+k)%k])
}

// ShiftScale moves the scale selection by n presets, wrapping.
func (m *Manager) ShiftScale(n int) error {
	k := m.catalog.Len()
	return m.SetScale(((m.settings.Scale+n)%k + k) % k)
}

func (m *Manager) rebuildScale(root string, preset int) error {
	p, err := m.catalog.At(preset)
	if err != nil {
		return err
	}
	rootPitch, err := scale.ParseRoot(root, m.rootOctave)
	if err != nil {
		return err
	}
	pitches, err := scale.Build(rootPitch, p.Intervals, m.octaves, m.grid.H)
	if err != nil {
		return fmt.Errorf("scale %q: %w", p.Name, err)
	}
	pc := (int(rootPitch)%12 + 12) % 12
	m.rootOctave = (int(rootPitch)-pc)/12 - 1
	m.settings.Root = scale.NoteNames[pc]
	m.settings.Scale = preset
	m.scale = pitches
	debug.Log("scale", "%s %s: %s..%s", m.settings.Root, p.Name, pitches[0].Name(), pitches[len(pitches)-1].Name())
	return nil
}

// Grid returns the current generation. Callers must treat it as read-only.
func (m *Manager) Grid() *automaton.Grid { return m.grid }

// Scale returns a copy of the row-to-pitch mapping.
func (m *Manager) Scale() []scale.Pitch {
	out := make([]scale.Pitch, len(m.scale))
	copy(out, m.scale)
	return out
}

func (m *Manager) Step() int               { return m.clock.Step() }
func (m *Manager) Running() bool           { return m.clock.Running() }
func (m *Manager) Tempo() int              { return m.clock.Tempo() }
func (m *Manager) Generation() int         { return m.generation }
func (m *Manager) Settings() Settings      { return m.settings }
func (m *Manager) Catalog() *scale.Catalog { return m.catalog }
func (m *Manager) Rule() automaton.Rule    { return m.rule }

// Title names the run, e.g. "No 1234 in D# (Dorian)".
func (m *Manager) Title() string {
	p, _ := m.catalog.At(m.settings.Scale)
	return fmt.Sprintf("No %d in %s (%s)", m.settings.Seed, m.settings.Root, p.Name)
}

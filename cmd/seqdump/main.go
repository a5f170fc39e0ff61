package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"go-lifeseq/automaton"
	"go-lifeseq/config"
	"go-lifeseq/debug"
	"go-lifeseq/midi"
	"go-lifeseq/scale"
	"go-lifeseq/sequencer"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "list":
		listPorts()
	case "dump":
		err = runDump(os.Args[2:], false)
	case "play":
		err = runDump(os.Args[2:], true)
	default:
		usage()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("seqdump - headless go-lifeseq")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list    - List all MIDI ports")
	fmt.Println("  dump    - Print generations and notes for a seed")
	fmt.Println("  play    - Play a seed on the configured MIDI output")
	fmt.Println("")
	fmt.Println("dump/play flags: -seed -steps -tempo -root -scale -config -grid -debug")
}

func runDump(args []string, play bool) error {
	flags := config.NewFlags()
	fs := flag.NewFlagSet("seqdump", flag.ContinueOnError)
	flags.Bind(fs)
	steps := fs.Int("steps", sequencer.Width, "number of steps")
	showGrid := fs.Bool("grid", !play, "print each generation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	flags.Resolve(fs)
	if flags.Debug {
		debug.EnableWriter(os.Stderr)
		defer debug.Disable()
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return fmt.Errorf("load scales: %w", err)
	}
	settings, err := flags.Settings(catalog)
	if err != nil {
		return err
	}
	opts, err := cfg.ManagerOptions(catalog, nil)
	if err != nil {
		return err
	}

	if !play {
		m, err := sequencer.NewManager(opts, settings)
		if err != nil {
			return err
		}
		return dump(os.Stdout, m, *steps, *showGrid)
	}

	out := midi.NewOutput(cfg.Output.PortName, cfg.Output.Channel, opts.Velocity, cfg.Gate())
	defer out.Close()
	opts.Synth = out
	m, err := sequencer.NewManager(opts, settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return playLive(ctx, os.Stdout, m, *steps, *showGrid)
}

// dump runs steps ticks on a synthetic clock, one interval apart.
func dump(w io.Writer, m *sequencer.Manager, steps int, showGrid bool) error {
	fmt.Fprintf(w, "%s  %dbpm  rule %s\n", m.Title(), m.Tempo(), m.Rule())
	fmt.Fprintf(w, "scale: %s\n", pitchList(m.Scale()))

	now := time.Unix(0, 0)
	if err := m.Toggle(now); err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		if showGrid {
			printGrid(w, m.Grid())
		}
		col := m.Step()
		now = now.Add(sequencer.TickInterval(m.Tempo()) + time.Millisecond)
		events := m.Tick(now)
		fmt.Fprintf(w, "gen %d col %02d: %s\n", m.Generation()-1, col, eventList(events))
	}
	return nil
}

func playLive(ctx context.Context, w io.Writer, m *sequencer.Manager, steps int, showGrid bool) error {
	fmt.Fprintf(w, "%s  %dbpm\n", m.Title(), m.Tempo())
	if err := m.Toggle(time.Now()); err != nil {
		return err
	}
	defer m.Toggle(time.Now())

	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for played := 0; played < steps; {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			col := m.Step()
			events := m.Tick(now)
			if m.Step() == col {
				continue
			}
			played++
			if showGrid {
				printGrid(w, m.Grid())
			}
			fmt.Fprintf(w, "gen %d col %02d: %s\n", m.Generation()-1, col, eventList(events))
		}
	}
	return nil
}

// printGrid draws the highest row first, like the terminal view.
func printGrid(w io.Writer, g *automaton.Grid) {
	var b strings.Builder
	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			if alive, _ := g.CellAt(x, y); alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(w, b.String())
}

func eventList(events []midi.Event) string {
	if len(events) == 0 {
		return "-"
	}
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = scale.Pitch(e.Note).Name()
	}
	return strings.Join(names, " ")
}

func pitchList(pitches []scale.Pitch) string {
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = p.Name()
	}
	return strings.Join(names, " ")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ch <- result{ins: gomidi.GetInPorts(), outs: gomidi.GetOutPorts()}
	}()

	select {
	case r := <-ch:
		for i, p := range r.ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
		fmt.Println("\n=== MIDI Output Ports ===")
		for i, p := range r.outs {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
	}
	gomidi.CloseDriver()
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"go-lifeseq/config"
	"go-lifeseq/debug"
	"go-lifeseq/midi"
	"go-lifeseq/sequencer"
	"go-lifeseq/theme"
	"go-lifeseq/tui"
)

func main() {
	flags := config.NewFlags()
	fs := flag.NewFlagSet("go-lifeseq", flag.ExitOnError)
	flags.Bind(fs)
	fs.Parse(os.Args[1:])
	flags.Resolve(fs)

	if err := run(flags); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("stdout is not a terminal (use seqdump for headless output)")
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if flags.Debug {
		path, err := config.DebugLogPath(flags.ConfigPath)
		if err != nil {
			return err
		}
		if err := debug.Enable(path); err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer debug.Disable()
	}
	if flags.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return fmt.Errorf("load scales: %w", err)
	}
	palette, err := cfg.LoadPalette()
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}
	settings, err := flags.Settings(catalog)
	if err != nil {
		return err
	}

	opts, err := cfg.ManagerOptions(catalog, nil)
	if err != nil {
		return err
	}
	out := midi.NewOutput(cfg.Output.PortName, cfg.Output.Channel, opts.Velocity, cfg.Gate())
	defer out.Close()
	opts.Synth = out

	manager, err := sequencer.NewManager(opts, settings)
	if err != nil {
		return err
	}
	debug.Log("main", "%s tempo=%d rule=%s", manager.Title(), manager.Tempo(), manager.Rule())

	// Create MIDI device manager (handles hot-plug)
	deviceMgr := midi.NewDeviceManager(cfg.Launchpad, cfg.KeyboardPort)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go deviceMgr.Run(ctx)

	m := tui.NewModel(manager, deviceMgr, theme.New(palette))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-lifeseq/debug"
	"go-lifeseq/midi"
	"go-lifeseq/sequencer"
	"go-lifeseq/theme"
	"go-lifeseq/widgets"
)

// frameRate is how often the clock is polled.
const frameRate = time.Second / 60

const tempoStep = 5

type Model struct {
	Manager   *sequencer.Manager
	DeviceMgr *midi.DeviceManager
	Theme     *theme.Theme

	now       func() time.Time
	launchpad midi.Controller // current grid controller (may be nil)
	keyboard  midi.Controller
	leds      map[[2]int]padLED // last state sent per pad
	padRow    int                  // lowest grid row shown on the Launchpad
	showHelp  bool
	err       error
	quitting  bool
}

type frameMsg time.Time

type padLED struct {
	color   theme.RGB
	channel uint8 // midi.ChannelStatic or midi.ChannelPulse
}

type DeviceEventMsg midi.DeviceEvent

type padMsg struct {
	from midi.Controller
	pad  midi.PadEvent
}

type noteMsg struct {
	from midi.Controller
	note midi.NoteEvent
}

func NewModel(manager *sequencer.Manager, deviceMgr *midi.DeviceManager, th *theme.Theme) Model {
	return Model{
		Manager:   manager,
		DeviceMgr: deviceMgr,
		Theme:     th,
		now:       time.Now,
		leds:      make(map[[2]int]padLED),
	}
}

func frame() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-deviceMgr.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(event)
	}
}

// ListenForPads waits for the next pad press. It returns nil once the
// controller is closed.
func ListenForPads(c midi.Controller) tea.Cmd {
	return func() tea.Msg {
		pad, ok := <-c.PadEvents()
		if !ok {
			return nil
		}
		return padMsg{from: c, pad: pad}
	}
}

func ListenForNotes(c midi.Controller) tea.Cmd {
	return func() tea.Msg {
		note, ok := <-c.NoteEvents()
		if !ok {
			return nil
		}
		return noteMsg{from: c, note: note}
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frame()}
	if m.DeviceMgr != nil {
		cmds = append(cmds, ListenForDevices(m.DeviceMgr))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())

	case frameMsg:
		m.Manager.Tick(time.Time(msg))
		m.flushLEDs()
		return m, frame()

	case DeviceEventMsg:
		m.handleDevice(midi.DeviceEvent(msg))
		var cmds []tea.Cmd
		if m.DeviceMgr != nil {
			cmds = append(cmds, ListenForDevices(m.DeviceMgr))
		}
		if msg.Type == midi.DeviceConnected {
			switch msg.Controller.Type() {
			case midi.ControllerLaunchpad:
				cmds = append(cmds, ListenForPads(msg.Controller))
			case midi.ControllerKeyboard:
				cmds = append(cmds, ListenForNotes(msg.Controller))
			}
		}
		return m, tea.Batch(cmds...)

	case padMsg:
		m.handlePad(msg.pad)
		return m, ListenForPads(msg.from)

	case noteMsg:
		m.setErr(m.Manager.SetRoot(msg.note.Root()))
		return m, ListenForNotes(msg.from)
	}

	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	seed := m.Manager.Settings().Seed
	m.err = nil

	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		if m.Manager.Running() {
			m.Manager.Toggle(m.now())
		}
		return m, tea.Quit

	case " ", "p":
		m.setErr(m.Manager.Toggle(m.now()))

	case "r":
		m.Manager.Provision(sequencer.RandomSeed())
	case "n":
		m.Manager.Provision(seed + 1)
	case "N":
		if seed > 0 {
			m.Manager.Provision(seed - 1)
		}
	case "0":
		m.Manager.Provision(0)
	case "d":
		m.setErr(m.Manager.ApplySeedDefaults())

	case "+", "=":
		m.Manager.SetTempo(m.Manager.Tempo() + tempoStep)
	case "-", "_":
		m.Manager.SetTempo(m.Manager.Tempo() - tempoStep)

	case "[":
		m.setErr(m.Manager.ShiftRoot(-1))
	case "]":
		m.setErr(m.Manager.ShiftRoot(1))
	case "{":
		m.setErr(m.Manager.ShiftScale(-1))
	case "}":
		m.setErr(m.Manager.ShiftScale(1))

	case "up":
		m.scrollPads(widgets.PadSize)
	case "down":
		m.scrollPads(-widgets.PadSize)

	case "?":
		m.showHelp = !m.showHelp
	}

	m.flushLEDs()
	return m, nil
}

func (m *Model) handleDevice(event midi.DeviceEvent) {
	switch event.Type {
	case midi.DeviceConnected:
		switch event.Controller.Type() {
		case midi.ControllerLaunchpad:
			m.launchpad = event.Controller
			clear(m.leds)
			m.flushLEDs()
		case midi.ControllerKeyboard:
			m.keyboard = event.Controller
		}
		debug.Log("tui", "connected %s", event.ID)
	case midi.DeviceDisconnected:
		if m.launchpad != nil && m.launchpad.ID() == event.ID {
			m.launchpad = nil
		}
		if m.keyboard != nil && m.keyboard.ID() == event.ID {
			m.keyboard = nil
		}
		debug.Log("tui", "disconnected %s", event.ID)
	}
}

// handlePad maps the top row to transport buttons; any grid pad toggles the
// run.
func (m *Model) handlePad(pad midi.PadEvent) {
	m.err = nil
	if pad.Row != 8 {
		m.setErr(m.Manager.Toggle(m.now()))
		m.flushLEDs()
		return
	}
	switch pad.Col {
	case midi.ButtonToggle:
		m.setErr(m.Manager.Toggle(m.now()))
	case midi.ButtonReseed:
		m.Manager.Provision(sequencer.RandomSeed())
	case midi.ButtonTempoDown:
		m.Manager.SetTempo(m.Manager.Tempo() - tempoStep)
	case midi.ButtonTempoUp:
		m.Manager.SetTempo(m.Manager.Tempo() + tempoStep)
	}
	m.flushLEDs()
}

func (m *Model) scrollPads(n int) {
	top := m.Manager.Grid().H - widgets.PadSize
	m.padRow = max(0, min(top, m.padRow+n))
}

func (m *Model) setErr(err error) {
	if err != nil {
		m.err = err
		debug.Log("tui", "error: %v", err)
	}
}

// padLEDs is what the Launchpad should show: the 8x8 window plus the
// transport buttons on the top row. The toggle button pulses while running.
func (m *Model) padLEDs() map[[2]int]padLED {
	g := m.Manager.Grid()
	hot := widgets.SoundingColumn(m.Manager.Step(), g.W, m.Manager.Running())
	col := hot
	if col < 0 {
		col = m.Manager.Step()
	}
	window := widgets.PadWindow(g, col, m.padRow, hot, m.Theme)

	want := make(map[[2]int]padLED, widgets.PadSize*widgets.PadSize+4)
	for r := 0; r < widgets.PadSize; r++ {
		for c := 0; c < widgets.PadSize; c++ {
			want[[2]int{r, c}] = padLED{color: window[r][c]}
		}
	}
	toggle := padLED{color: m.Theme.RGB(theme.RoleMuted)}
	if m.Manager.Running() {
		toggle = padLED{color: m.Theme.RGB(theme.RolePlayhead), channel: midi.ChannelPulse}
	}
	want[[2]int{8, midi.ButtonToggle}] = toggle
	want[[2]int{8, midi.ButtonReseed}] = padLED{color: m.Theme.RGB(theme.RoleAccent)}
	want[[2]int{8, midi.ButtonTempoDown}] = padLED{color: m.Theme.RGB(theme.RoleCell)}
	want[[2]int{8, midi.ButtonTempoUp}] = padLED{color: m.Theme.RGB(theme.RoleCell)}
	return want
}

// flushLEDs sends only the pads whose colour changed since the last flush.
func (m *Model) flushLEDs() {
	if m.launchpad == nil {
		return
	}
	var updates []midi.LEDUpdate
	for pos, led := range m.padLEDs() {
		if last, ok := m.leds[pos]; ok && last == led {
			continue
		}
		m.leds[pos] = led
		updates = append(updates, midi.LEDUpdate{Row: pos[0], Col: pos[1], Color: led.color, Channel: led.channel})
	}
	if err := m.launchpad.SetLEDBatch(updates); err != nil {
		debug.Log("tui", "led batch: %v", err)
	}
}

var keyHelp = []widgets.KeySection{
	{Title: "Transport", Keys: []widgets.KeyBinding{
		{Key: "space / p", Desc: "play / stop"},
		{Key: "+ / -", Desc: "tempo"},
	}},
	{Title: "Seed", Keys: []widgets.KeyBinding{
		{Key: "r", Desc: "random seed"},
		{Key: "n / N", Desc: "next / previous seed"},
		{Key: "0", Desc: "empty grid"},
		{Key: "d", Desc: "tempo, root and scale from seed"},
	}},
	{Title: "Scale", Keys: []widgets.KeyBinding{
		{Key: "[ / ]", Desc: "root"},
		{Key: "{ / }", Desc: "scale"},
	}},
	{Title: "Launchpad", Keys: []widgets.KeyBinding{
		{Key: "up / down", Desc: "scroll pad window"},
	}},
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	errStyle := lipgloss.NewStyle().Foreground(m.Theme.FG()).Background(m.Theme.BG()).Padding(0, 1)

	playState := "STOP"
	if m.Manager.Running() {
		playState = "PLAY"
	}
	devices := ""
	if m.launchpad != nil {
		devices += " LP:X"
	}
	if m.keyboard != nil {
		devices += " KB"
	}

	g := m.Manager.Grid()
	pitches := m.Manager.Scale()
	header := headerStyle.Render(fmt.Sprintf("go-lifeseq  %s", m.Manager.Title()))
	status := fmt.Sprintf("%s  %3dbpm  step:%02d  gen:%d  alive:%d  %s..%s%s",
		playState, m.Manager.Tempo(), m.Manager.Step(), m.Manager.Generation(), g.Alive(),
		pitches[0].Name(), pitches[len(pitches)-1].Name(), devices)

	body := widgets.RenderGrid(g, m.Manager.Step(), m.Manager.Running(), m.Theme)
	if m.launchpad != nil {
		var pads [widgets.PadSize][widgets.PadSize]theme.RGB
		for pos, led := range m.padLEDs() {
			if pos[0] < widgets.PadSize {
				pads[pos[0]][pos[1]] = led.color
			}
		}
		body = lipgloss.JoinHorizontal(lipgloss.Bottom, body, "   ", widgets.RenderPadGrid(pads))
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n")
	out.WriteString(status)
	out.WriteString("\n\n")
	out.WriteString(body)
	out.WriteString("\n\n")

	if m.showHelp {
		out.WriteString(widgets.RenderLegendItem(m.Theme.RGB(theme.RoleCell), "cell", "alive"))
		out.WriteString("\n")
		out.WriteString(widgets.RenderLegendItem(m.Theme.RGB(theme.RolePlayhead), "playhead", "sounding now"))
		out.WriteString("\n\n")
		out.WriteString(widgets.RenderKeyHelp(keyHelp))
		out.WriteString("\n")
	} else {
		out.WriteString(dimStyle.Render("space:play  r/n/N/0:seed  d:defaults  +/-:tempo  []:root  {}:scale  ?:help  q:quit"))
	}

	if m.err != nil {
		out.WriteString("\n")
		out.WriteString(errStyle.Render(m.err.Error()))
	}

	return out.String()
}

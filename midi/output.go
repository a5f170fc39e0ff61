package midi

import (
	"fmt"
	"time"

	"go-lifeseq/debug"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Defaults for triggered notes
const (
	DefaultVelocity uint8 = 101 // 0.8 of full scale
	DefaultGate           = 200 * time.Millisecond
)

type pendingOff struct {
	note uint8
	at   time.Time
}

// Output sends triggered notes to an external synthesizer. Note-offs are
// queued and released by Flush, so the output never starts goroutines or
// sleeps; it is driven from the same loop that calls the sequencer.
type Output struct {
	portName string
	channel  uint8 // 0-based MIDI channel
	velocity uint8
	gate     time.Duration

	send    func(gomidi.Message) error
	pending []pendingOff
}

// NewOutput creates an output for the named port. An empty name selects the
// first available output port. channel is 1-16.
func NewOutput(portName string, channel int, velocity uint8, gate time.Duration) *Output {
	if channel < 1 || channel > 16 {
		channel = 1
	}
	if velocity == 0 {
		velocity = DefaultVelocity
	}
	if gate <= 0 {
		gate = DefaultGate
	}
	return &Output{
		portName: portName,
		channel:  uint8(channel - 1),
		velocity: velocity,
		gate:     gate,
	}
}

// NewOutputWithSender creates an output that writes to send instead of a
// MIDI port.
func NewOutputWithSender(send func(gomidi.Message) error, channel int, velocity uint8, gate time.Duration) *Output {
	o := NewOutput("", channel, velocity, gate)
	o.send = send
	return o
}

// Start opens the port if it is not open yet.
func (o *Output) Start() error {
	if o.send != nil {
		return nil
	}
	var (
		out drivers.Out
		err error
	)
	if o.portName == "" {
		out, err = gomidi.OutPort(0)
	} else {
		out, err = gomidi.FindOutPort(o.portName)
	}
	if err != nil {
		return fmt.Errorf("find MIDI output %q: %w", o.portName, err)
	}
	send, err := gomidi.SendTo(out)
	if err != nil {
		return fmt.Errorf("open MIDI output: %w", err)
	}
	o.send = send
	debug.Log("output", "opened %s ch=%d", out.String(), o.channel+1)
	return nil
}

// Play sends note-on for each event and schedules its note-off one gate
// length after now. A note that is still sounding is released first.
func (o *Output) Play(now time.Time, events []Event) {
	if o.send == nil {
		return
	}
	for _, evt := range events {
		if evt.Type != NoteOn {
			continue
		}
		o.release(evt.Note)
		vel := evt.Velocity
		if vel == 0 {
			vel = o.velocity
		}
		if err := o.send(gomidi.NoteOn(o.channel, evt.Note, vel)); err != nil {
			debug.Log("output", "note on %d: %v", evt.Note, err)
			continue
		}
		o.pending = append(o.pending, pendingOff{note: evt.Note, at: now.Add(o.gate)})
	}
}

// Flush sends every note-off that is due at now.
func (o *Output) Flush(now time.Time) {
	if o.send == nil || len(o.pending) == 0 {
		return
	}
	kept := o.pending[:0]
	for _, p := range o.pending {
		if now.Before(p.at) {
			kept = append(kept, p)
			continue
		}
		o.noteOff(p.note)
	}
	o.pending = kept
}

// Stop releases all sounding notes.
func (o *Output) Stop() {
	for _, p := range o.pending {
		o.noteOff(p.note)
	}
	o.pending = o.pending[:0]
}

// Sounding returns the number of notes waiting for a note-off.
func (o *Output) Sounding() int { return len(o.pending) }

// Velocity returns the velocity used for events that carry none.
func (o *Output) Velocity() uint8 { return o.velocity }

func (o *Output) release(note uint8) {
	for i, p := range o.pending {
		if p.note == note {
			o.noteOff(note)
			o.pending = append(o.pending[:i], o.pending[i+1:]...)
			return
		}
	}
}

func (o *Output) noteOff(note uint8) {
	if o.send == nil {
		return
	}
	if err := o.send(gomidi.NoteOff(o.channel, note)); err != nil {
		debug.Log("output", "note off %d: %v", note, err)
	}
}

// Close releases sounding notes and the MIDI driver.
func (o *Output) Close() {
	o.Stop()
	gomidi.CloseDriver()
}

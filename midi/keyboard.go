package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"go-lifeseq/debug"
	"go-lifeseq/scale"
)

// Root is the scale root a key selects, with the octave it was played in,
// e.g. "D4" for note 62.
func (e NoteEvent) Root() string {
	return scale.Pitch(e.Note).Name()
}

// KeyboardController turns key presses on a MIDI keyboard into root
// changes. Only the newest unread key is kept; a root picked while the
// previous one is still queued replaces it.
type KeyboardController struct {
	id    string
	stop  func()
	roots chan NoteEvent
}

// NewKeyboardController listens on in. A nil port gives a controller that
// never reports keys.
func NewKeyboardController(id string, in drivers.In) (*KeyboardController, error) {
	kb := &KeyboardController{id: id, roots: make(chan NoteEvent, 1)}
	if in == nil {
		return kb, nil
	}
	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, _ int32) { kb.handle(msg) })
	if err != nil {
		return nil, fmt.Errorf("listen to keyboard %s: %w", id, err)
	}
	kb.stop = stop
	return kb, nil
}

// handle queues note-ons with a non-zero velocity; everything else,
// including note-on used as note-off, is ignored.
func (kb *KeyboardController) handle(msg gomidi.Message) {
	var ch, key, vel uint8
	if !msg.GetNoteOn(&ch, &key, &vel) || vel == 0 {
		return
	}
	evt := NoteEvent{Note: key, Velocity: vel, Channel: ch}
	for {
		select {
		case kb.roots <- evt:
			debug.Log("keyboard", "%s root %s", kb.id, evt.Root())
			return
		default:
		}
		// drop the stale root
		select {
		case <-kb.roots:
		default:
		}
	}
}

func (kb *KeyboardController) ID() string           { return kb.id }
func (kb *KeyboardController) Type() ControllerType { return ControllerKeyboard }

// PadEvents is nil: a keyboard has no pads.
func (kb *KeyboardController) PadEvents() <-chan PadEvent   { return nil }
func (kb *KeyboardController) NoteEvents() <-chan NoteEvent { return kb.roots }

func (kb *KeyboardController) SetLEDBatch([]LEDUpdate) error { return nil }

func (kb *KeyboardController) Close() error {
	if kb.stop != nil {
		kb.stop()
	}
	close(kb.roots)
	return nil
}

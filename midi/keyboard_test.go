package midi

import (
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"
)

func TestNoteEventRoot(t *testing.T) {
	cases := map[uint8]string{60: "C4", 62: "D4", 49: "C#3", 0: "C-1"}
	for note, want := range cases {
		if got := (NoteEvent{Note: note}).Root(); got != want {
			t.Errorf("note %d root %q, want %q", note, got, want)
		}
	}
}

func TestKeyboardKeepsNewestKey(t *testing.T) {
	kb, err := NewKeyboardController("keys", nil)
	if err != nil {
		t.Fatalf("NewKeyboardController: %v", err)
	}
	kb.handle(gomidi.NoteOn(0, 60, 100))
	kb.handle(gomidi.NoteOn(0, 64, 0)) // released key
	kb.handle(gomidi.NoteOff(0, 60))
	kb.handle(gomidi.NoteOn(0, 67, 90))

	got := <-kb.NoteEvents()
	if got.Note != 67 || got.Velocity != 90 {
		t.Fatalf("got %+v, want the last pressed key 67", got)
	}
	select {
	case extra := <-kb.NoteEvents():
		t.Fatalf("unexpected queued key %+v", extra)
	default:
	}

	kb.Close()
	if _, ok := <-kb.NoteEvents(); ok {
		t.Fatalf("channel open after Close")
	}
}

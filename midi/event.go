package midi

// MIDI message types
const (
	NoteOn  uint8 = 0x90
	NoteOff uint8 = 0x80
)

// Event is a note triggered by one live cell of the playhead column.
type Event struct {
	Type     uint8 // NoteOn, NoteOff
	Note     uint8 // MIDI note number
	Velocity uint8
	Row      int // grid row the pitch came from
	Col      int // grid column (playhead) that fired
}

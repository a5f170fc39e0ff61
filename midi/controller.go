package midi

// ControllerType identifies the kind of controller
type ControllerType int

const (
	ControllerUnknown ControllerType = iota
	ControllerLaunchpad
	ControllerKeyboard
)

// PadEvent is sent when a pad/button is pressed on a grid controller
type PadEvent struct {
	Row, Col int
	Velocity uint8
}

// NoteEvent is sent when a note is played on a keyboard
type NoteEvent struct {
	Note     uint8
	Velocity uint8
	Channel  uint8
}

// LEDUpdate is one pad colour change
type LEDUpdate struct {
	Row, Col int
	Color    [3]uint8
	Channel  uint8
}

// Controller is the interface for MIDI input devices
type Controller interface {
	ID() string
	Type() ControllerType

	PadEvents() <-chan PadEvent   // grid controllers (Launchpad)
	NoteEvents() <-chan NoteEvent // keyboards

	SetLEDBatch(updates []LEDUpdate) error

	Close() error
}

// Top row buttons of the Launchpad (row 8), by column
const (
	ButtonToggle    = 0
	ButtonReseed    = 1
	ButtonTempoDown = 2
	ButtonTempoUp   = 3
)

// Channel modes for LED updates
const (
	ChannelStatic uint8 = 0 // solid color
	ChannelPulse  uint8 = 2 // pulsing (fades)
)

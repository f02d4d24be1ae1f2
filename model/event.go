package model

type EventKind uint8

const (
	Other EventKind = iota
	NoteOn
	NoteOff
)

const MaxPitch = 127
const NumPitches = MaxPitch + 1

// Event is a single delta-timed channel event. Pitch and Velocity are only
// meaningful for NoteOn and NoteOff.
type Event struct {
	Delta    uint32
	Kind     EventKind
	Channel  uint8
	Pitch    uint8
	Velocity uint8
}

type Track = []Event
type Tracks = []Track

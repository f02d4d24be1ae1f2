// Package tone reduces delta-timed note events into closed tone intervals.
package tone

import (
	"github.com/Lolirofle/midi-notes-display/model"
	"github.com/Lolirofle/midi-notes-display/scan"
)

type openNote struct {
	start    uint32
	velocity uint8
	open     bool
}

// state is local to one pass over the tracks.
type state struct {
	time  uint32
	notes [model.NumPitches]openNote
}

// step advances the clock and emits a tone when a NoteOff closes an open
// note. Pitches above model.MaxPitch only advance the clock.
func step(s *state, evt model.Event) (model.Tone, bool) {
	s.time += evt.Delta

	if evt.Pitch > model.MaxPitch {
		return model.Tone{}, false
	}
	note := &s.notes[evt.Pitch]

	switch evt.Kind {
	case model.NoteOn:
		// repeated NoteOn keeps the first start and velocity
		if !note.open {
			*note = openNote{start: s.time, velocity: evt.Velocity, open: true}
		}
	case model.NoteOff:
		if note.open {
			t := model.Tone{
				Pitch:           evt.Pitch,
				StartTime:       note.start,
				EndTime:         s.time,
				AttackVelocity:  note.velocity,
				ReleaseVelocity: evt.Velocity,
			}
			*note = openNote{}
			return t, true
		}
	}
	return model.Tone{}, false
}

type Iterator = scan.Iter[model.Event, state, model.Tone]

// Iter lazily yields tones for the tracks flattened in track order. Tones
// come out in the order of their closing NoteOff, so EndTime never
// decreases but StartTime may.
func Iter(tracks model.Tracks) *Iterator {
	return scan.FilterScan(scan.Flatten(tracks), state{}, step)
}

// FromTracks collects every tone. Notes still open when the tracks end are
// dropped.
func FromTracks(tracks model.Tracks) []model.Tone {
	return scan.Collect[model.Tone](Iter(tracks))
}

// Duration is the sum of every delta time across all tracks.
func Duration(tracks model.Tracks) uint32 {
	return scan.Fold(scan.Flatten(tracks), uint32(0), func(total uint32, evt model.Event) uint32 {
		return total + evt.Delta
	})
}

// FromTracksEach runs an independent pass per track, so every track starts
// its clock at zero. Tones are grouped by track.
func FromTracksEach(tracks model.Tracks) []model.Tone {
	var res []model.Tone
	for _, track := range tracks {
		res = append(res, FromTracks(model.Tracks{track})...)
	}
	return res
}

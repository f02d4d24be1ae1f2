package sample

import (
	"io"
	"os"

	"github.com/Lolirofle/midi-notes-display/model"
	"github.com/Lolirofle/midi-notes-display/tone"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func toMessage(evt model.Event) midi.Message {
	if evt.Kind == model.NoteOn {
		return midi.NoteOn(evt.Channel, evt.Pitch, evt.Velocity)
	}
	return midi.NoteOffVelocity(evt.Channel, evt.Pitch, evt.Velocity)
}

// FromTones builds a single track file holding only the matched notes.
func FromTones(tones []model.Tone, timeFormat smf.TimeFormat) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = timeFormat

	var track smf.Track
	for _, evt := range tone.ToEvents(tones) {
		track.Add(evt.Delta, toMessage(evt))
	}
	track.Close(0)

	res.Tracks = append(res.Tracks, track)
	return &res
}

func Write(w io.Writer, s *smf.SMF) error {
	_, err := s.WriteTo(w)
	return errors.Wrap(err, "Could not write midi")
}

func WriteFile(path string, s *smf.SMF) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "Could not create "+path)
	}
	defer f.Close()
	return Write(f, s)
}

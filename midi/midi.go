package midi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/Lolirofle/midi-notes-display/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = &blank
			e = errors.New(fmt.Sprint(r))
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file")
	}

	return res, nil
}

// ToEvent keeps only what the tone reduction looks at. A NoteOn with
// velocity 0 is a NoteOff with release velocity 0.
func ToEvent(evt smf.Event) model.Event {
	res := model.Event{Delta: evt.Delta}
	var channel, key, velocity uint8
	switch {
	case evt.Message.GetNoteOn(&channel, &key, &velocity):
		res.Kind = model.NoteOn
		if velocity == 0 {
			res.Kind = model.NoteOff
		}
	case evt.Message.GetNoteOff(&channel, &key, &velocity):
		res.Kind = model.NoteOff
	default:
		return res
	}
	res.Channel = channel
	res.Pitch = key
	res.Velocity = velocity
	return res
}

func ToTracks(s *smf.SMF) model.Tracks {
	res := make(model.Tracks, 0, len(s.Tracks))
	for _, track := range s.Tracks {
		events := make(model.Track, 0, len(track))
		for _, evt := range track {
			events = append(events, ToEvent(evt))
		}
		res = append(res, events)
	}
	return res
}

// ReadTracks reads and converts a midi file in one go.
func ReadTracks(filepath string) (model.Tracks, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return nil, err
	}
	return ToTracks(s), nil
}

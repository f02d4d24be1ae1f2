package tone

import (
	"sort"

	"github.com/Lolirofle/midi-notes-display/model"
	"github.com/Lolirofle/midi-notes-display/pair"
	"github.com/Lolirofle/midi-notes-display/scan"
)

type absEvent struct {
	time  uint32
	rank  int
	event model.Event
}

// ranks at equal ticks
const (
	rankClose = iota
	rankZeroLength
	rankOpen
)

func expandTone(_ *struct{}, t model.Tone) pair.Iter[absEvent] {
	on := model.Event{Kind: model.NoteOn, Pitch: t.Pitch, Velocity: t.AttackVelocity}
	off := model.Event{Kind: model.NoteOff, Pitch: t.Pitch, Velocity: t.ReleaseVelocity}
	if t.StartTime == t.EndTime {
		// both halves share a rank so the stable sort keeps them adjacent
		return pair.Two(
			absEvent{time: t.StartTime, rank: rankZeroLength, event: on},
			absEvent{time: t.EndTime, rank: rankZeroLength, event: off},
		)
	}
	return pair.Two(
		absEvent{time: t.StartTime, rank: rankOpen, event: on},
		absEvent{time: t.EndTime, rank: rankClose, event: off},
	)
}

// ToEvents turns tones back into a single delta-timed track. At equal ticks
// NoteOffs come first so a tone ending where another on the same pitch
// starts is not swallowed as a repeated NoteOn. Zero-length tones sit
// between the NoteOffs and NoteOns of their tick, each with its own NoteOn
// directly followed by its NoteOff.
func ToEvents(tones []model.Tone) model.Track {
	abs := scan.Collect[absEvent](scan.Expand(scan.Slice(tones), struct{}{}, expandTone))

	sort.SliceStable(abs, func(i, j int) bool {
		if abs[i].time != abs[j].time {
			return abs[i].time < abs[j].time
		}
		return abs[i].rank < abs[j].rank
	})

	res := make(model.Track, 0, len(abs))
	var last uint32
	for _, a := range abs {
		evt := a.event
		evt.Delta = a.time - last
		last = a.time
		res = append(res, evt)
	}
	return res
}

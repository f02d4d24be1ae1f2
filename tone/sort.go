package tone

import (
	"sort"

	"github.com/Lolirofle/midi-notes-display/model"
)

// SortByStart orders tones by start time, then pitch. Window relies on it.
func SortByStart(tones []model.Tone) {
	sort.SliceStable(tones, func(i, j int) bool {
		if tones[i].StartTime != tones[j].StartTime {
			return tones[i].StartTime < tones[j].StartTime
		}
		return tones[i].Pitch < tones[j].Pitch
	})
}

// Window returns the tones overlapping [from, to]. sorted must already be
// ordered by SortByStart: the scan stops at the first tone starting after to.
func Window(sorted []model.Tone, from, to uint32) []model.Tone {
	var res []model.Tone
	for _, t := range sorted {
		if t.StartTime > to {
			break
		}
		if t.EndTime >= from {
			res = append(res, t)
		}
	}
	return res
}

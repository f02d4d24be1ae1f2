package file

import (
	"sort"

	"github.com/Lolirofle/midi-notes-display/model"
)

// CreateFileNumMap numbers paths from 1 in sorted order so the same corpus
// always gets the same numbers.
func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	res := make(model.FileNumToMidiPath)
	for i, v := range sorted {
		res[model.FileNum(i+1)] = v
	}
	return res
}

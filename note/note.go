// Package note names MIDI pitches.
package note

import "github.com/Lolirofle/midi-notes-display/model"

// Names maps pitch to name. Octave numbers advance at A, so pitch 9 is A₋₁
// while pitch 0 is C₋₂.
var Names = [model.NumPitches]string{
	"C₋₂", "C♯₋₂", "D₋₂", "D♯₋₂", "E₋₂", "F₋₂", "F♯₋₂", "G₋₂", "G♯₋₂", "A₋₁", "A♯₋₁", "B₋₁",
	"C₋₁", "C♯₋₁", "D₋₁", "D♯₋₁", "E₋₁", "F₋₁", "F♯₋₁", "G₋₁", "G♯₋₁", "A₀", "A♯₀", "B₀",
	"C₀", "C♯₀", "D₀", "D♯₀", "E₀", "F₀", "F♯₀", "G₀", "G♯₀", "A₁", "A♯₁", "B₁",
	"C₁", "C♯₁", "D₁", "D♯₁", "E₁", "F₁", "F♯₁", "G₁", "G♯₁", "A₂", "A♯₂", "B₂",
	"C₂", "C♯₂", "D₂", "D♯₂", "E₂", "F₂", "F♯₂", "G₂", "G♯₂", "A₃", "A♯₃", "B₃",
	"C₃", "C♯₃", "D₃", "D♯₃", "E₃", "F₃", "F♯₃", "G₃", "G♯₃", "A₄", "A♯₄", "B₄",
	"C₄", "C♯₄", "D₄", "D♯₄", "E₄", "F₄", "F♯₄", "G₄", "G♯₄", "A₅", "A♯₅", "B₅",
	"C₅", "C♯₅", "D₅", "D♯₅", "E₅", "F₅", "F♯₅", "G₅", "G♯₅", "A₆", "A♯₆", "B₆",
	"C₆", "C♯₆", "D₆", "D♯₆", "E₆", "F₆", "F♯₆", "G₆", "G♯₆", "A₇", "A♯₇", "B₇",
	"C₇", "C♯₇", "D₇", "D♯₇", "E₇", "F₇", "F♯₇", "G₇", "G♯₇", "A₈", "A♯₈", "B₈",
	"C₈", "C♯₈", "D₈", "D♯₈", "E₈", "F₈", "F♯₈", "G₈",
}

func Name(pitch uint8) string {
	if int(pitch) >= len(Names) {
		return ""
	}
	return Names[pitch]
}

package tone

import (
	"testing"

	"github.com/Lolirofle/midi-notes-display/model"
	"github.com/stretchr/testify/assert"
)

func TestSortByStart(t *testing.T) {
	tones := FromTracks(interleaved)
	SortByStart(tones)

	assert := assert.New(t)
	starts := make([]uint32, 0, len(tones))
	for _, tone := range tones {
		starts = append(starts, tone.StartTime)
	}
	assert.Equal([]uint32{0, 2, 6, 14}, starts)
}

func TestSortByStartBreaksTiesByPitch(t *testing.T) {
	tones := []model.Tone{
		{Pitch: 67, StartTime: 0, EndTime: 4},
		{Pitch: 60, StartTime: 0, EndTime: 8},
	}
	SortByStart(tones)

	assert.Equal(t, uint8(60), tones[0].Pitch)
}

func TestWindow(t *testing.T) {
	tones := FromTracks(interleaved)
	SortByStart(tones)

	assert := assert.New(t)
	// 60 (0-13), 67 (6-11)
	assert.Equal([]uint8{60, 67}, pitches(Window(tones, 7, 10)))
	// boundaries are inclusive
	assert.Equal([]uint8{60, 64, 67}, pitches(Window(tones, 6, 6)))
	assert.Equal([]uint8{64}, pitches(Window(tones, 15, 100)))
	assert.Empty(Window(tones, 18, 100))
}

func pitches(tones []model.Tone) []uint8 {
	var res []uint8
	for _, tone := range tones {
		res = append(res, tone.Pitch)
	}
	return res
}

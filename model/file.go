package model

type FileNum = uint32
type FileNumToMidiPath = map[FileNum]string

type MidiMetadata struct {
	Artist  string `json:"artist"`
	Release string `json:"release"`
	Title   string `json:"title"`
	Year    uint   `json:"year"`
}

type ToneFile struct {
	FileNum  FileNum
	MidiPath string
	Duration uint32
	Tones    []Tone

	// NOTE: nil unless indexed with metadata
	MidiMetadata *MidiMetadata
}

type ToneFileOverview struct {
	FileNum  FileNum `json:"file_id"`
	MidiPath string  `json:"midi_path"`
	Filename string  `json:"-"`
	NumTones int     `json:"num_tones"`
	Duration uint32  `json:"duration"`
}

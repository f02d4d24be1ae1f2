package model

type TonesResponse struct {
	FileId       FileNum       `json:"file_id"`
	Duration     uint32        `json:"duration"`
	From         uint32        `json:"from"`
	To           uint32        `json:"to"`
	Tones        []Tone        `json:"tones"`
	MidiMetadata *MidiMetadata `json:"midi_metadata"`
}

type NoteName struct {
	Pitch uint8  `json:"pitch"`
	Name  string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

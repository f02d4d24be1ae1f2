package model

// Tone is the interval between a NoteOn and the NoteOff that closed it,
// in raw ticks.
type Tone struct {
	Pitch           uint8  `json:"pitch"`
	StartTime       uint32 `json:"start_time"`
	EndTime         uint32 `json:"end_time"`
	AttackVelocity  uint8  `json:"attack_velocity"`
	ReleaseVelocity uint8  `json:"release_velocity"`
}

func (t Tone) Duration() uint32 {
	return t.EndTime - t.StartTime
}

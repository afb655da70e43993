package model

// ChordResponse is the serve payload for a single chord.
type ChordResponse struct {
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol,omitempty"`
	Notes       []string `json:"notes"`
	Triad       []string `json:"triad"`
	MidiNumbers []int    `json:"midi_numbers"`
	Degree      int      `json:"degree,omitempty"`
}

// ScaleResponse is the serve payload for a single scale.
type ScaleResponse struct {
	Name        string   `json:"name"`
	Notes       []string `json:"notes"`
	MidiNumbers []int    `json:"midi_numbers"`
}

// PositionsRequest asks for fingerings of a chord.
type PositionsRequest struct {
	Root    string `json:"root"`
	Type    string `json:"type"`
	Tuning  string `json:"tuning"`
	MaxFret int    `json:"max_fret"`
}

// PositionsResponse carries the ranked fingerings.
type PositionsResponse struct {
	Positions []ChordPosition `json:"positions"`
}

// IdentifyRequest carries the sounding MIDI note numbers.
type IdentifyRequest struct {
	Notes []uint8 `json:"notes"`
}

// IdentifyResponse lists matching chord names.
type IdentifyResponse struct {
	Chords []string `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

package model

// StringFret is one fretted (or open) string.
type StringFret struct {
	String int `json:"string"`
	Fret   int `json:"fret"`
}

// Barre marks a single finger covering all strings at one fret,
// reported against string 0.
type Barre = StringFret

// ChordPosition is one playable six-string fingering. Frets and
// Fingers are indexed by string, low to high; finger 0 means an open
// string.
type ChordPosition struct {
	Frets   []int  `json:"frets"`
	Fingers []int  `json:"fingers"`
	Barre   *Barre `json:"barre,omitempty"`
}

// FingersUsed counts the distinct fretting fingers of the position.
func (p ChordPosition) FingersUsed() int {
	var n int
	for _, f := range p.Fingers {
		if f != 0 {
			n++
		}
	}
	return n
}

// MaxFret is the highest fret of the position.
func (p ChordPosition) MaxFret() int {
	var max int
	for _, f := range p.Frets {
		if f > max {
			max = f
		}
	}
	return max
}

// TriadPosition is where a triad's three tones sit inside one 4-fret
// window, ordered by string.
type TriadPosition = []StringFret

// FretboardNote is a single lit position on a fretboard diagram.
type FretboardNote struct {
	String int    `json:"string"`
	Fret   int    `json:"fret"`
	Note   string `json:"note"`
	IsRoot bool   `json:"is_root"`
}

package note

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrInvalidFormat is returned when a note string can't be parsed.
var ErrInvalidFormat = errors.New("invalid note format")

// Names is the fixed pitch class ordering used for all index
// arithmetic. Flats are normalized to these sharp spellings on parse.
var Names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var noteRegexp = regexp.MustCompile(`^([A-G])([#b]?)(\d+)?$`)

// Note is a pitch class paired with an octave. It's a plain value:
// Transpose returns a new Note and two notes are equal iff name and
// octave both match.
type Note struct {
	Name   string
	Octave int
}

// Parse reads a note from a string like "C#4" or "Db". A missing
// octave defaults to 4.
func Parse(s string) (Note, error) {
	m := noteRegexp.FindStringSubmatch(s)
	if m == nil {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	name := m[1]
	octave := 4
	if m[3] != "" {
		octave, _ = strconv.Atoi(m[3]) // regexp guarantees digits
	}

	if m[2] == "#" {
		// B# and E# have no sharp spelling of their own
		if sharp := name + "#"; indexOf(sharp) >= 0 {
			name = sharp
		} else {
			name = Names[(indexOf(name)+1)%12]
		}
	} else if m[2] == "b" {
		// normalize flat to the sharp spelling one semitone down
		name = Names[(indexOf(name)+11)%12]
	}

	return Note{Name: name, Octave: octave}, nil
}

// MustParse is Parse for trusted literals, mostly tests and tables.
func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return n
}

func indexOf(name string) int {
	for i, v := range Names {
		if v == name {
			return i
		}
	}
	return -1
}

// MidiNumber is the absolute semitone index, C4 = 60.
func (n Note) MidiNumber() int {
	return (n.Octave+1)*12 + indexOf(n.Name)
}

// Transpose returns the note some number of semitones away. Negative
// counts go down.
func (n Note) Transpose(semitones int) Note {
	midi := n.MidiNumber() + semitones
	octave := floorDiv(midi, 12) - 1
	return Note{Name: Names[mod(midi, 12)], Octave: octave}
}

// Interval is the signed semitone distance from n to other.
func (n Note) Interval(other Note) int {
	return other.MidiNumber() - n.MidiNumber()
}

// Frequency in Hz under equal temperament, A4 = 440.
func (n Note) Frequency() float64 {
	return 440 * math.Pow(2, float64(n.MidiNumber()-69)/12)
}

func (n Note) String() string {
	return fmt.Sprintf("%v%v", n.Name, n.Octave)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

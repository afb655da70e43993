package scale

import (
	"errors"
	"fmt"

	"github.com/jvestell/MusicNotesApp/note"
)

// ErrInvalidDegree is returned by Mode for degrees outside
// [1, number of scale notes].
var ErrInvalidDegree = errors.New("invalid scale degree")

// Scale is a root note plus the interval formula of its type, with
// the derived note sequence built at construction. Same shape as
// chord.Chord.
type Scale struct {
	Root    note.Note
	Type    string
	Formula []int
	Notes   []note.Note
}

// New builds a scale by transposing root through formula.
func New(root note.Note, scaleType string, formula []int) Scale {
	s := Scale{Root: root, Type: scaleType, Formula: formula}
	s.Notes = append(s.Notes, root)
	for _, interval := range formula[1:] {
		s.Notes = append(s.Notes, root.Transpose(interval))
	}
	return s
}

// Name is the display name, e.g. "C Major".
func (s Scale) Name() string {
	return fmt.Sprintf("%v %v", s.Root.Name, s.Type)
}

// ContainsNote reports whether the scale has n's pitch class,
// ignoring octave.
func (s Scale) ContainsNote(n note.Note) bool {
	for _, sn := range s.Notes {
		if sn.Name == n.Name {
			return true
		}
	}
	return false
}

// MidiNumbers lists the scale tones as absolute pitch indexes.
func (s Scale) MidiNumbers() []int {
	res := make([]int, 0, len(s.Notes))
	for _, n := range s.Notes {
		res = append(res, n.MidiNumber())
	}
	return res
}

// Mode re-roots the scale at the given 1-indexed degree. Each offset
// of the rotated formula is recomputed relative to the new root, mod
// 12, with the first forced to 0. Only meaningful for strictly
// ascending sub-octave formulas; anything else can yield duplicate or
// non-monotonic offsets.
func (s Scale) Mode(degree int) (Scale, error) {
	if degree < 1 || degree > len(s.Notes) {
		return Scale{}, fmt.Errorf("%w: %v", ErrInvalidDegree, degree)
	}

	root := s.Notes[degree-1]
	formula := make([]int, 0, len(s.Formula))
	formula = append(formula, 0)
	for i := 1; i < len(s.Formula); i++ {
		idx := (degree - 1 + i) % len(s.Formula)
		offset := (s.Formula[idx] - s.Formula[degree-1]) % 12
		if offset < 0 {
			offset += 12
		}
		formula = append(formula, offset)
	}

	name := fmt.Sprintf("%v mode %v", s.Type, degree)
	return New(root, name, formula), nil
}

func (s Scale) String() string {
	return s.Name()
}

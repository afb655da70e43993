package chord

import (
	"fmt"
	"strings"

	"github.com/jvestell/MusicNotesApp/note"
)

// Chord is a root note plus the interval formula of its type. Notes
// is derived at construction and holds one note per formula entry,
// root first.
type Chord struct {
	Root    note.Note
	Type    string
	Formula []int
	Notes   []note.Note
}

// New builds a chord by transposing root through formula. The first
// formula entry is the root's own offset (0), so Notes[0] is the root
// value itself.
func New(root note.Note, chordType string, formula []int) Chord {
	c := Chord{Root: root, Type: chordType, Formula: formula}
	c.Notes = append(c.Notes, root)
	for _, interval := range formula[1:] {
		c.Notes = append(c.Notes, root.Transpose(interval))
	}
	return c
}

// Name is the display name, e.g. "C Major".
func (c Chord) Name() string {
	return fmt.Sprintf("%v %v", c.Root.Name, c.Type)
}

// ContainsNote reports whether the chord has n's pitch class,
// ignoring octave.
func (c Chord) ContainsNote(n note.Note) bool {
	for _, cn := range c.Notes {
		if cn.Name == n.Name {
			return true
		}
	}
	return false
}

// MidiNumbers lists the chord tones as absolute pitch indexes, in
// formula order.
func (c Chord) MidiNumbers() []int {
	res := make([]int, 0, len(c.Notes))
	for _, n := range c.Notes {
		res = append(res, n.MidiNumber())
	}
	return res
}

// Triad extracts the root, third (or the second/fourth for sus
// chords) and fifth. Chords missing a qualifying tone yield a
// shorter list rather than an error.
func (c Chord) Triad() []note.Note {
	if len(c.Notes) < 3 {
		return c.Notes
	}

	res := []note.Note{c.Notes[0]}

	thirds := []int{3, 4}
	switch {
	case strings.Contains(c.Type, "sus2"):
		thirds = []int{2}
	case strings.Contains(c.Type, "sus4"):
		thirds = []int{5}
	}

	if n, ok := c.firstAtInterval(thirds); ok {
		res = append(res, n)
	}
	if n, ok := c.firstAtInterval([]int{7}); ok {
		res = append(res, n)
	}
	return res
}

// firstAtInterval scans the non-root tones in formula order for the
// first one whose distance from the root, mod 12, is in semitones.
func (c Chord) firstAtInterval(semitones []int) (note.Note, bool) {
	for _, n := range c.Notes[1:] {
		interval := ((c.Root.Interval(n) % 12) + 12) % 12
		for _, s := range semitones {
			if interval == s {
				return n, true
			}
		}
	}
	return note.Note{}, false
}

func (c Chord) String() string {
	return c.Name()
}

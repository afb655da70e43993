package theory

import (
	"sort"

	"github.com/jvestell/MusicNotesApp/note"
)

// IdentifyChords names the chords whose pitch class set exactly
// matches the sounding MIDI notes. Every sounding pitch class is
// tried as a root, lowest sounding note first; for the same root,
// chord types come back in registration order.
func (e *Engine) IdentifyChords(midiNotes []uint8) []string {
	if len(midiNotes) == 0 {
		return nil
	}

	sounding := make(map[int]bool)
	var ordered []uint8
	seen := make(map[int]bool)

	sorted := append([]uint8(nil), midiNotes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, m := range sorted {
		pc := int(m) % 12
		sounding[pc] = true
		if !seen[pc] {
			seen[pc] = true
			ordered = append(ordered, m)
		}
	}

	var res []string
	for _, rootMidi := range ordered {
		rootPc := int(rootMidi) % 12
		for _, chordType := range e.ChordTypes.Names() {
			formula, _ := e.ChordTypes.Get(chordType)
			if matchesPitchClasses(rootPc, formula, sounding) {
				res = append(res, note.Names[rootPc]+" "+chordType)
			}
		}
	}
	return res
}

// matchesPitchClasses checks set equality between the formula rooted
// at rootPc and the sounding pitch classes.
func matchesPitchClasses(rootPc int, formula []int, sounding map[int]bool) bool {
	want := make(map[int]bool, len(formula))
	for _, interval := range formula {
		want[(rootPc+interval)%12] = true
	}
	if len(want) != len(sounding) {
		return false
	}
	for pc := range want {
		if !sounding[pc] {
			return false
		}
	}
	return true
}

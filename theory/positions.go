package theory

import (
	"fmt"
	"sort"

	"github.com/jvestell/MusicNotesApp/chord"
	"github.com/jvestell/MusicNotesApp/constants"
	"github.com/jvestell/MusicNotesApp/model"
	"github.com/jvestell/MusicNotesApp/note"
	"github.com/jvestell/MusicNotesApp/util"
)

// ChordPositions searches the fretboard for playable fingerings of
// the chord. Every assignment of a fret (0..maxFret) to each string
// is tried in string order, pruning on stretch (adjacent frets more
// than 4 apart) before note membership and finger assignment. Fretted
// strings take unique fingers 1..4; open strings take none. Complete
// positions spanning more than 4 frets are rejected. Results come
// back sorted by (fingers used, max fret) ascending, capped at 10.
func (e *Engine) ChordPositions(c chord.Chord, tuningName string, maxFret int) ([]model.ChordPosition, error) {
	open, err := e.Tuning(tuningName)
	if err != nil {
		return nil, err
	}
	if maxFret < 0 || maxFret > constants.MaxFretLimit {
		return nil, fmt.Errorf("max fret must be between 0 and %v, got %v", constants.MaxFretLimit, maxFret)
	}

	s := positionSearch{
		open:    open,
		chord:   c,
		maxFret: maxFret,
		frets:   make([]int, 0, len(open)),
		fingers: make([]int, 0, len(open)),
	}
	s.descend()

	sort.SliceStable(s.found, func(i, j int) bool {
		fi, fj := s.found[i].FingersUsed(), s.found[j].FingersUsed()
		if fi != fj {
			return fi < fj
		}
		return s.found[i].MaxFret() < s.found[j].MaxFret()
	})

	if len(s.found) > constants.MaxPositions {
		s.found = s.found[:constants.MaxPositions]
	}
	return s.found, nil
}

type positionSearch struct {
	open    []note.Note
	chord   chord.Chord
	maxFret int

	frets      []int
	fingers    []int
	fingerUsed [constants.NumFingers + 1]bool
	found      []model.ChordPosition
}

func (s *positionSearch) descend() {
	str := len(s.frets)
	if str == len(s.open) {
		s.record()
		return
	}

	for fret := 0; fret <= s.maxFret; fret++ {
		// stretch prune comes before anything else
		if str > 0 && abs(fret-s.frets[str-1]) > constants.MaxFretSpan {
			continue
		}
		if !s.chord.ContainsNote(s.open[str].Transpose(fret)) {
			continue
		}

		if fret == 0 {
			s.frets = append(s.frets, 0)
			s.fingers = append(s.fingers, 0)
			s.descend()
			s.frets = s.frets[:str]
			s.fingers = s.fingers[:str]
			continue
		}

		for finger := 1; finger <= constants.NumFingers; finger++ {
			if s.fingerUsed[finger] {
				continue
			}
			s.frets = append(s.frets, fret)
			s.fingers = append(s.fingers, finger)
			s.fingerUsed[finger] = true
			s.descend()
			s.frets = s.frets[:str]
			s.fingers = s.fingers[:str]
			s.fingerUsed[finger] = false
		}
	}
}

func (s *positionSearch) record() {
	min, max := s.frets[0], s.frets[0]
	for _, f := range s.frets {
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	if max-min > constants.MaxFretSpan {
		return
	}

	p := model.ChordPosition{
		Frets:   append([]int(nil), s.frets...),
		Fingers: append([]int(nil), s.fingers...),
	}
	if min == max && min > 0 {
		p.Barre = &model.Barre{String: 0, Fret: min}
	}
	s.found = append(s.found, p)
}

// TriadPositions slides a 4-fret window up the neck and reports every
// spot where the chord's triad fits on three adjacent strings, one
// tone per string.
func (e *Engine) TriadPositions(c chord.Chord, tuningName string, maxFret int) ([]model.TriadPosition, error) {
	open, err := e.Tuning(tuningName)
	if err != nil {
		return nil, err
	}
	if maxFret < 0 || maxFret > constants.MaxFretLimit {
		return nil, fmt.Errorf("max fret must be between 0 and %v, got %v", constants.MaxFretLimit, maxFret)
	}

	triad := c.Triad()
	if len(triad) < 3 {
		return nil, nil
	}

	var res []model.TriadPosition
	seen := make(map[string]bool)

	for start := 0; start+constants.MaxFretSpan-1 <= maxFret; start++ {
		for first := 0; first+2 < len(open); first++ {
			pos := findTriadAt(open, triad, first, start)
			if pos == nil {
				continue
			}
			key := fmt.Sprintf("%v", pos)
			if !seen[key] {
				seen[key] = true
				res = append(res, pos)
			}
		}
	}
	return res, nil
}

// findTriadAt tries to place all three triad tones on strings
// first..first+2 within the 4-fret window at start, taking the lowest
// qualifying fret per string.
func findTriadAt(open []note.Note, triad []note.Note, first, start int) model.TriadPosition {
	missing := make(map[string]bool, len(triad))
	for _, n := range triad {
		missing[n.Name] = true
	}

	var pos model.TriadPosition
	for str := first; str <= first+2; str++ {
		for fret := start; fret < start+constants.MaxFretSpan; fret++ {
			name := open[str].Transpose(fret).Name
			if missing[name] {
				delete(missing, name)
				pos = append(pos, model.StringFret{String: str, Fret: fret})
				break
			}
		}
	}
	if len(pos) != 3 {
		return nil
	}
	return pos
}

// FretboardNotes maps a tone set onto the fretboard: every (string,
// fret) up to maxFret whose pitch class is in tones. The first tone
// is treated as the root for highlighting.
func (e *Engine) FretboardNotes(tones []note.Note, tuningName string, maxFret int) ([]model.FretboardNote, error) {
	open, err := e.Tuning(tuningName)
	if err != nil {
		return nil, err
	}
	maxFret = util.Min(maxFret, constants.MaxFretLimit)

	names := make(map[string]bool, len(tones))
	for _, n := range tones {
		names[n.Name] = true
	}
	var rootName string
	if len(tones) > 0 {
		rootName = tones[0].Name
	}

	var res []model.FretboardNote
	for str, openNote := range open {
		for fret := 0; fret <= maxFret; fret++ {
			n := openNote.Transpose(fret)
			if names[n.Name] {
				res = append(res, model.FretboardNote{
					String: str,
					Fret:   fret,
					Note:   n.String(),
					IsRoot: n.Name == rootName,
				})
			}
		}
	}
	return res, nil
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

package theory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jvestell/MusicNotesApp/chord"
	"github.com/jvestell/MusicNotesApp/constants"
	"github.com/jvestell/MusicNotesApp/note"
	"github.com/jvestell/MusicNotesApp/scale"
)

var (
	// ErrUnknownType is returned for chord/scale/tuning names absent
	// from the loaded tables.
	ErrUnknownType = errors.New("unknown type")

	// ErrDataUnavailable means the formula tables are missing or
	// malformed. Engine construction fails, there is no fallback.
	ErrDataUnavailable = errors.New("theory data unavailable")
)

type formulaEntry struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol,omitempty"`
	Formula []int  `json:"formula"`
}

type tuningEntry struct {
	Name    string   `json:"name"`
	Strings []string `json:"strings"`
}

// FormulaTable maps type names to interval formulas while keeping the
// file's registration order, which drives the ordering of every
// derived chord/scale list.
type FormulaTable struct {
	names    []string
	formulas map[string][]int
	symbols  map[string]string
}

// Names returns the type names in registration order.
func (t *FormulaTable) Names() []string {
	return t.names
}

// Get looks up a formula by exact name.
func (t *FormulaTable) Get(name string) ([]int, bool) {
	f, ok := t.formulas[name]
	return f, ok
}

// Symbol returns the display symbol for a type, falling back to the
// name itself.
func (t *FormulaTable) Symbol(name string) string {
	if s, ok := t.symbols[name]; ok && s != "" {
		return s
	}
	return name
}

// Engine holds the loaded chord/scale/tuning tables and answers all
// cross-queries. Tables are immutable after New; the engine is safe
// for concurrent readers.
type Engine struct {
	ChordTypes  *FormulaTable
	ScaleTypes  *FormulaTable
	tuningNames []string
	tunings     map[string][]note.Note
}

// New loads chord_formulas.json, scale_formulas.json and tunings.json
// from dataDir and validates them. Any missing or malformed table
// aborts construction with ErrDataUnavailable.
func New(dataDir string) (*Engine, error) {
	e := &Engine{tunings: make(map[string][]note.Note)}

	var err error
	e.ChordTypes, err = loadFormulaTable(filepath.Join(dataDir, "chord_formulas.json"))
	if err != nil {
		return nil, err
	}
	e.ScaleTypes, err = loadFormulaTable(filepath.Join(dataDir, "scale_formulas.json"))
	if err != nil {
		return nil, err
	}
	if err := e.loadTunings(filepath.Join(dataDir, "tunings.json")); err != nil {
		return nil, err
	}

	return e, nil
}

// NewDefault loads from the DATA_PATH directory.
func NewDefault() (*Engine, error) {
	return New(constants.GetDataDir())
}

func loadFormulaTable(path string) (*FormulaTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	var entries []formulaEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrDataUnavailable, path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %v: no entries", ErrDataUnavailable, path)
	}

	t := &FormulaTable{
		formulas: make(map[string][]int),
		symbols:  make(map[string]string),
	}
	for _, entry := range entries {
		if entry.Name == "" || len(entry.Formula) == 0 {
			return nil, fmt.Errorf("%w: %v: empty entry", ErrDataUnavailable, path)
		}
		if entry.Formula[0] != 0 {
			return nil, fmt.Errorf("%w: %v: formula for %v must start at 0", ErrDataUnavailable, path, entry.Name)
		}
		if _, ok := t.formulas[entry.Name]; ok {
			return nil, fmt.Errorf("%w: %v: duplicate entry %v", ErrDataUnavailable, path, entry.Name)
		}
		t.names = append(t.names, entry.Name)
		t.formulas[entry.Name] = entry.Formula
		t.symbols[entry.Name] = entry.Symbol
	}
	return t, nil
}

func (e *Engine) loadTunings(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	var entries []tuningEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("%w: %v: %v", ErrDataUnavailable, path, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w: %v: no entries", ErrDataUnavailable, path)
	}

	for _, entry := range entries {
		if len(entry.Strings) != constants.NumStrings {
			return fmt.Errorf("%w: tuning %v has %v strings, want %v",
				ErrDataUnavailable, entry.Name, len(entry.Strings), constants.NumStrings)
		}
		var open []note.Note
		for _, s := range entry.Strings {
			n, err := note.Parse(s)
			if err != nil {
				return fmt.Errorf("%w: tuning %v: %v", ErrDataUnavailable, entry.Name, err)
			}
			open = append(open, n)
		}
		if _, ok := e.tunings[entry.Name]; ok {
			return fmt.Errorf("%w: duplicate tuning %v", ErrDataUnavailable, entry.Name)
		}
		e.tuningNames = append(e.tuningNames, entry.Name)
		e.tunings[entry.Name] = open
	}
	return nil
}

// TuningNames returns the tuning names in registration order.
func (e *Engine) TuningNames() []string {
	return e.tuningNames
}

// Tuning returns the open-string notes of a named tuning, low string
// first.
func (e *Engine) Tuning(name string) ([]note.Note, error) {
	open, ok := e.tunings[name]
	if !ok {
		return nil, fmt.Errorf("%w: tuning %v", ErrUnknownType, name)
	}
	return open, nil
}

// GetChord builds a chord from a registered type.
func (e *Engine) GetChord(root note.Note, chordType string) (chord.Chord, error) {
	formula, ok := e.ChordTypes.Get(chordType)
	if !ok {
		return chord.Chord{}, fmt.Errorf("%w: chord %v", ErrUnknownType, chordType)
	}
	return chord.New(root, chordType, formula), nil
}

// GetScale builds a scale from a registered type.
func (e *Engine) GetScale(root note.Note, scaleType string) (scale.Scale, error) {
	formula, ok := e.ScaleTypes.Get(scaleType)
	if !ok {
		return scale.Scale{}, fmt.Errorf("%w: scale %v", ErrUnknownType, scaleType)
	}
	return scale.New(root, scaleType, formula), nil
}

// ChordsInScale finds every chord that occurs naturally in the scale:
// each scale degree is tried as a root against every registered chord
// type, and the chord qualifies when all of its tones are scale
// members by pitch class. Degrees are the outer loop, chord types the
// inner loop in registration order.
func (e *Engine) ChordsInScale(s scale.Scale) []chord.Chord {
	var chords []chord.Chord
	for _, degree := range s.Notes {
		for _, chordType := range e.ChordTypes.Names() {
			formula, _ := e.ChordTypes.Get(chordType)
			inScale := true
			for _, interval := range formula {
				if !s.ContainsNote(degree.Transpose(interval)) {
					inScale = false
					break
				}
			}
			if inScale {
				chords = append(chords, chord.New(degree, chordType, formula))
			}
		}
	}
	return chords
}

// ScalesForChord finds scales containing every chord tone. Each
// registered scale type is tried rooted at every chord tone, not just
// the chord's root, so one type can contribute several candidates.
func (e *Engine) ScalesForChord(c chord.Chord) []scale.Scale {
	var scales []scale.Scale
	for _, scaleType := range e.ScaleTypes.Names() {
		formula, _ := e.ScaleTypes.Get(scaleType)
		for _, n := range c.Notes {
			candidate := scale.New(n, scaleType, formula)
			contains := true
			for _, cn := range c.Notes {
				if !candidate.ContainsNote(cn) {
					contains = false
					break
				}
			}
			if contains {
				scales = append(scales, candidate)
			}
		}
	}
	return scales
}

// DegreeOf is the 1-indexed degree of n's pitch class within the
// scale, 0 when non-diatonic.
func (e *Engine) DegreeOf(s scale.Scale, n note.Note) int {
	for i, sn := range s.Notes {
		if sn.Name == n.Name {
			return i + 1
		}
	}
	return 0
}

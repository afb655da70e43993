package theory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jvestell/MusicNotesApp/chord"
	"github.com/jvestell/MusicNotesApp/note"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New("../data")
	if err != nil {
		t.Fatalf("could not load test engine: %v", err)
	}
	return e
}

func TestNewLoadsTables(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	// registration order is preserved
	assert.Equal("Major", e.ChordTypes.Names()[0])
	assert.Equal("Minor", e.ChordTypes.Names()[1])
	assert.Equal("Major", e.ScaleTypes.Names()[0])
	assert.Contains(e.TuningNames(), "standard")

	assert.Equal("maj", e.ChordTypes.Symbol("Major"))
	assert.Equal("m7", e.ChordTypes.Symbol("Minor7"))
}

func TestNewFailsWhenDataMissing(t *testing.T) {
	_, err := New("/nonexistent")
	assert.True(t, errors.Is(err, ErrDataUnavailable))
}

func writeDataDir(t *testing.T, chords, scales, tunings string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"chord_formulas.json": chords,
		"scale_formulas.json": scales,
		"tunings.json":        tunings,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestNewFailsOnMalformedTables(t *testing.T) {
	goodChords := `[{"name": "Major", "formula": [0, 4, 7]}]`
	goodScales := `[{"name": "Major", "formula": [0, 2, 4, 5, 7, 9, 11]}]`
	goodTunings := `[{"name": "standard", "strings": ["E2", "A2", "D3", "G3", "B3", "E4"]}]`

	cases := map[string][3]string{
		"invalid json":        {`{`, goodScales, goodTunings},
		"empty table":         {`[]`, goodScales, goodTunings},
		"nonzero root offset": {`[{"name": "Major", "formula": [1, 4, 7]}]`, goodScales, goodTunings},
		"empty formula":       {goodChords, `[{"name": "Major", "formula": []}]`, goodTunings},
		"missing name":        {goodChords, `[{"formula": [0, 2]}]`, goodTunings},
		"wrong string count":  {goodChords, goodScales, `[{"name": "standard", "strings": ["E2", "A2"]}]`},
		"bad open note":       {goodChords, goodScales, `[{"name": "standard", "strings": ["E2", "A2", "D3", "G3", "B3", "H4"]}]`},
		"duplicate entry":     {`[{"name": "Major", "formula": [0, 4, 7]}, {"name": "Major", "formula": [0, 4, 7]}]`, goodScales, goodTunings},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			dir := writeDataDir(t, tc[0], tc[1], tc[2])
			_, err := New(dir)
			assert.True(t, errors.Is(err, ErrDataUnavailable))
		})
	}
}

func TestGetChord(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	c, err := e.GetChord(note.MustParse("C4"), "Major")
	assert.NoError(err)
	assert.Equal("C Major", c.Name())
	assert.Equal([]note.Note{
		note.MustParse("C4"),
		note.MustParse("E4"),
		note.MustParse("G4"),
	}, c.Notes)
}

func TestGetChordUnknownType(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.GetChord(note.MustParse("C4"), "NotARealType")
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestGetScale(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	s, err := e.GetScale(note.MustParse("A3"), "Minor Pentatonic")
	assert.NoError(err)
	assert.Len(s.Notes, 5)
	assert.Equal(note.MustParse("A3"), s.Notes[0])

	_, err = e.GetScale(note.MustParse("A3"), "Ultra Locrian")
	assert.True(errors.Is(err, ErrUnknownType))
}

func TestChordsInScaleDiatonicTriads(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	s, err := e.GetScale(note.MustParse("C4"), "Major")
	assert.NoError(err)
	chords := e.ChordsInScale(s)
	assert.NotEmpty(chords)

	hasChord := func(root, chordType string) bool {
		for _, c := range chords {
			if c.Root == note.MustParse(root) && c.Type == chordType {
				return true
			}
		}
		return false
	}

	// the diatonic triads of C major
	assert.True(hasChord("C4", "Major"))
	assert.True(hasChord("D4", "Minor"))
	assert.True(hasChord("E4", "Minor"))
	assert.True(hasChord("F4", "Major"))
	assert.True(hasChord("G4", "Major"))
	assert.True(hasChord("A4", "Minor"))
	assert.True(hasChord("B4", "Diminished"))

	// out-of-key qualities stay out
	assert.False(hasChord("C4", "Minor"))
	assert.False(hasChord("D4", "Major"))

	// every emitted chord tone is in the scale
	for _, c := range chords {
		for _, n := range c.Notes {
			assert.True(s.ContainsNote(n), "%v has %v outside %v", c.Name(), n, s.Name())
		}
	}
}

func TestChordsInScaleOrdering(t *testing.T) {
	e := newTestEngine(t)
	s, _ := e.GetScale(note.MustParse("C4"), "Major")
	chords := e.ChordsInScale(s)

	// degrees outer loop: roots never go backwards
	lastDegree := 0
	for _, c := range chords {
		d := e.DegreeOf(s, c.Root)
		assert.GreaterOrEqual(t, d, lastDegree)
		lastDegree = d
	}

	// first chord is the tonic with the first registered matching type
	assert.Equal(t, "C Major", chords[0].Name())
}

func TestScalesForChord(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	c, err := e.GetChord(note.MustParse("C4"), "Major")
	assert.NoError(err)
	scales := e.ScalesForChord(c)
	assert.NotEmpty(scales)

	hasScale := func(root, scaleType string) bool {
		for _, s := range scales {
			if s.Root == note.MustParse(root) && s.Type == scaleType {
				return true
			}
		}
		return false
	}

	assert.True(hasScale("C4", "Major"))
	// permissive matching roots candidate scales at any chord tone
	assert.True(hasScale("G4", "Major"))
	assert.True(hasScale("E4", "Phrygian"))

	for _, s := range scales {
		for _, n := range c.Notes {
			assert.True(s.ContainsNote(n))
		}
	}
}

func TestScalesForChordNoMatches(t *testing.T) {
	e := newTestEngine(t)
	// a cluster that fits no registered scale
	c := chord.New(note.MustParse("C4"), "Cluster", []int{0, 1, 2, 3, 4, 5, 6, 7})
	assert.Empty(t, e.ScalesForChord(c))
}

func TestDegreeOf(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)
	s, _ := e.GetScale(note.MustParse("C4"), "Major")

	assert.Equal(1, e.DegreeOf(s, note.MustParse("C2")))
	assert.Equal(5, e.DegreeOf(s, note.MustParse("G4")))
	assert.Equal(0, e.DegreeOf(s, note.MustParse("F#4")))
}

func TestIdentifyChords(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	assert.Contains(e.IdentifyChords([]uint8{60, 64, 67}), "C Major")
	assert.Contains(e.IdentifyChords([]uint8{62, 65, 69}), "D Minor")
	assert.Contains(e.IdentifyChords([]uint8{64, 67, 72}), "C Major")
	assert.Contains(e.IdentifyChords([]uint8{60, 64, 67, 70}), "C Dominant7")

	assert.Empty(e.IdentifyChords(nil))
	assert.Empty(e.IdentifyChords([]uint8{60, 61}))
}

func TestTuning(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	open, err := e.Tuning("standard")
	assert.NoError(err)
	assert.Equal([]note.Note{
		note.MustParse("E2"),
		note.MustParse("A2"),
		note.MustParse("D3"),
		note.MustParse("G3"),
		note.MustParse("B3"),
		note.MustParse("E4"),
	}, open)

	_, err = e.Tuning("ukulele")
	assert.True(errors.Is(err, ErrUnknownType))
}

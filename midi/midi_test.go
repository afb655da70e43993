package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jvestell/MusicNotesApp/note"
)

func readNoteOns(t *testing.T, path string) []uint8 {
	t.Helper()
	dat, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read back %v: %v", path, err)
	}
	s, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		t.Fatalf("could not parse %v: %v", path, err)
	}

	var keys []uint8
	for _, track := range s.Tracks {
		for _, event := range track {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) {
				keys = append(keys, key)
			}
		}
	}
	return keys
}

func TestWriteChord(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "chord.mid")

	notes := []note.Note{
		note.MustParse("C4"),
		note.MustParse("E4"),
		note.MustParse("G4"),
	}
	assert.NoError(WriteChord(notes, path))
	assert.Equal([]uint8{60, 64, 67}, readNoteOns(t, path))
}

func TestWriteRun(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "scale.mid")

	notes := []note.Note{
		note.MustParse("C4"),
		note.MustParse("D4"),
		note.MustParse("E4"),
	}
	assert.NoError(WriteRun(notes, path))
	assert.Equal([]uint8{60, 62, 64}, readNoteOns(t, path))
}

func TestWriteRejectsOutOfRangeNotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mid")
	err := WriteChord([]note.Note{{Name: "C", Octave: 20}}, path)
	assert.Error(t, err)
}

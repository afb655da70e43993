package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jvestell/MusicNotesApp/note"
)

const (
	channel  = 0
	velocity = 100
)

func clampKey(n note.Note) (uint8, error) {
	m := n.MidiNumber()
	if m < 0 || m > 127 {
		return 0, fmt.Errorf("note %v is outside the midi range", n)
	}
	return uint8(m), nil
}

// WriteChord writes the notes as one sustained block chord to a
// Standard MIDI File.
func WriteChord(notes []note.Note, path string) error {
	clock := smf.MetricTicks(960)
	var tr smf.Track

	keys := make([]uint8, 0, len(notes))
	for _, n := range notes {
		key, err := clampKey(n)
		if err != nil {
			return err
		}
		keys = append(keys, key)
	}

	for _, key := range keys {
		tr.Add(0, midi.NoteOn(channel, key, velocity))
	}
	delta := clock.Ticks4th() * 4
	for _, key := range keys {
		tr.Add(delta, midi.NoteOff(channel, key))
		delta = 0
	}
	tr.Close(0)

	return write(clock, tr, path)
}

// WriteRun writes the notes played one after another, quarter notes,
// to a Standard MIDI File. Used for scales.
func WriteRun(notes []note.Note, path string) error {
	clock := smf.MetricTicks(960)
	var tr smf.Track

	for _, n := range notes {
		key, err := clampKey(n)
		if err != nil {
			return err
		}
		tr.Add(0, midi.NoteOn(channel, key, velocity))
		tr.Add(clock.Ticks4th(), midi.NoteOff(channel, key))
	}
	tr.Close(0)

	return write(clock, tr, path)
}

func write(clock smf.MetricTicks, tr smf.Track, path string) error {
	var s smf.SMF
	s.TimeFormat = clock
	s.Tracks = append(s.Tracks, tr)
	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("could not write midi file: %w", err)
	}
	return nil
}

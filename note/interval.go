package note

import "fmt"

// intervalNames is ordered by semitone count, P1 at 0 through M7 at 11.
var intervalNames = [12]string{
	"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7",
}

var intervalSemitones = map[string]int{
	"P1": 0, "m2": 1, "M2": 2, "m3": 3, "M3": 4, "P4": 5, "TT": 6,
	"P5": 7, "m6": 8, "M6": 9, "m7": 10, "M7": 11, "P8": 12,
}

// IntervalName names a semitone count. Exactly 12 is the octave P8;
// anything else wraps mod 12, so 0 and 12 differ but 13 is m2.
func IntervalName(semitones int) string {
	if semitones == 12 {
		return "P8"
	}
	return intervalNames[mod(semitones, 12)]
}

// IntervalSemitones is the reverse lookup of IntervalName.
func IntervalSemitones(name string) (int, error) {
	s, ok := intervalSemitones[name]
	if !ok {
		return 0, fmt.Errorf("unknown interval: %v", name)
	}
	return s, nil
}

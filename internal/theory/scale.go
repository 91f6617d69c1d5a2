package theory

import "fmt"

// majorIntervals is the major-scale template in semitones above the root.
var majorIntervals = [7]int{0, 2, 4, 5, 7, 9, 11}

// Key is a root note under the major-scale template.
type Key struct {
	Root Note `json:"root"`
}

// Notes returns the key's 7 pitch classes in scale order.
func (k Key) Notes() []Note {
	notes := make([]Note, 7)
	for i, iv := range majorIntervals {
		notes[i] = k.Root.Transpose(iv)
	}
	return notes
}

// Contains reports whether note is diatonic to the key.
func (k Key) Contains(note Note) bool {
	return k.mask()[note.Semitones()]
}

func (k Key) mask() [12]bool {
	var m [12]bool
	for _, iv := range majorIntervals {
		m[k.Root.Transpose(iv).Semitones()] = true
	}
	return m
}

func (k Key) String() string {
	return k.Root.String()
}

// Mode is one of the seven diatonic modes.
type Mode string

const (
	ModeIonian     Mode = "ionian"
	ModeDorian     Mode = "dorian"
	ModePhrygian   Mode = "phrygian"
	ModeLydian     Mode = "lydian"
	ModeMixolydian Mode = "mixolydian"
	ModeAeolian    Mode = "aeolian"
	ModeLocrian    Mode = "locrian"
)

var modeRotations = map[Mode]int{
	ModeIonian:     0,
	ModeDorian:     1,
	ModePhrygian:   2,
	ModeLydian:     3,
	ModeMixolydian: 4,
	ModeAeolian:    5,
	ModeLocrian:    6,
}

// Intervals returns the mode's 7 semitone offsets from its root, ascending
// from 0. Each mode is a rotation of the major template re-based on zero.
func (m Mode) Intervals() ([7]int, error) {
	rot, ok := modeRotations[m]
	if !ok {
		return [7]int{}, fmt.Errorf("unknown mode %q", m)
	}
	var out [7]int
	base := majorIntervals[rot]
	for i := 0; i < 7; i++ {
		out[i] = (majorIntervals[(rot+i)%7] - base + 12) % 12
	}
	return out, nil
}

// ModeNotes returns the 7 pitch classes of mode built on root.
func ModeNotes(m Mode, root Note) ([]Note, error) {
	intervals, err := m.Intervals()
	if err != nil {
		return nil, err
	}
	notes := make([]Note, 7)
	for i, iv := range intervals {
		notes[i] = root.Transpose(iv)
	}
	return notes, nil
}

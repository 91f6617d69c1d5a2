package theory

import "fmt"

// Note is one of the 12 pitch classes, octave-independent.
type Note int

const (
	NoteC Note = iota
	NoteCSharp
	NoteD
	NoteDSharp
	NoteE
	NoteF
	NoteFSharp
	NoteG
	NoteGSharp
	NoteA
	NoteASharp
	NoteB
)

var noteNames = [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (n Note) String() string {
	if n < 0 || int(n) >= len(noteNames) {
		return "?"
	}
	return noteNames[n]
}

// Semitones returns the distance in semitones above C, in [0,11].
func (n Note) Semitones() int {
	return int(n) % 12
}

// Transpose moves the note by k semitones. k may be negative or exceed an
// octave; the result is always normalized back into the 12 pitch classes.
func (n Note) Transpose(k int) Note {
	return Note(((n.Semitones()+k)%12 + 12) % 12)
}

// Interval returns the number of semitones going up from n to other, in [0,11].
func (n Note) Interval(other Note) int {
	return ((other.Semitones()-n.Semitones())%12 + 12) % 12
}

// ParseNote converts a note name ("C", "F#", ...) to a Note. Sharp spellings
// only; flats are not part of the method's vocabulary.
func ParseNote(s string) (Note, error) {
	for i, name := range noteNames {
		if name == s {
			return Note(i), nil
		}
	}
	return NoteC, fmt.Errorf("unknown note %q", s)
}

func (n Note) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Note) UnmarshalText(b []byte) error {
	parsed, err := ParseNote(string(b))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

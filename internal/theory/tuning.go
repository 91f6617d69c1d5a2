package theory

import "fmt"

// Tuning lists the open-string notes in string-number order: index 0 is
// string 1 (highest pitched), the last index is the lowest string.
type Tuning []Note

// StandardTuning is E-A-D-G-B-E written high to low.
func StandardTuning() Tuning {
	return Tuning{NoteE, NoteB, NoteG, NoteD, NoteA, NoteE}
}

// Strings returns the number of strings in the tuning.
func (t Tuning) Strings() int {
	return len(t)
}

// MaxFretLimit is the hard cap on caller-supplied fret ranges. Nothing in the
// method goes past a 36-fret virtual neck.
const MaxFretLimit = 36

// Validate rejects degenerate board parameters. These indicate a caller bug,
// so they fail fast here instead of producing silently empty output.
func (t Tuning) Validate(maxFret int) error {
	if len(t) != 6 {
		return fmt.Errorf("tuning must have 6 strings, got %d", len(t))
	}
	if maxFret < 0 {
		return fmt.Errorf("maxFret must be non-negative, got %d", maxFret)
	}
	if maxFret > MaxFretLimit {
		return fmt.Errorf("maxFret must be at most %d, got %d", MaxFretLimit, maxFret)
	}
	return nil
}

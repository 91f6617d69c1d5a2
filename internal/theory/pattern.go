package theory

import "fmt"

// PatternType names the four rSoGuitar pattern concepts plus mode shapes.
type PatternType string

const (
	PatternSpiralMapping     PatternType = "spiral_mapping"
	PatternJumping           PatternType = "jumping"
	PatternFamilyOfChords    PatternType = "family_of_chords"
	PatternFamilialHierarchy PatternType = "familial_hierarchy"
	PatternModeShape         PatternType = "mode_shape"
)

// ChordQuality selects major or minor for the family-of-chords pattern.
type ChordQuality string

const (
	QualityMajor ChordQuality = "major"
	QualityMinor ChordQuality = "minor"
)

// Pattern is an ordered collection of positions for one pattern concept.
// Order matters for spiral mapping and jumping (consecutive entries are
// connected when drawn); family patterns group positions instead.
type Pattern struct {
	Type        PatternType         `json:"type"`
	Key         Key                 `json:"key"`
	Positions   []FretboardPosition `json:"positions"`
	Description string              `json:"description"`
}

// SpiralMapping returns every diatonic position on the board, string-major
// and fret-minor ascending, with the key root marked.
func SpiralMapping(key Key, maxFret int, tuning Tuning) (*Pattern, error) {
	if err := tuning.Validate(maxFret); err != nil {
		return nil, err
	}
	var positions []FretboardPosition
	for str := 1; str <= tuning.Strings(); str++ {
		for fret := 0; fret <= maxFret; fret++ {
			note, ok := tuning.NoteAt(str, fret)
			if !ok || !key.Contains(note) {
				continue
			}
			positions = append(positions, FretboardPosition{
				String: str,
				Fret:   fret,
				Note:   note,
				IsRoot: note == key.Root,
			})
		}
	}
	return &Pattern{
		Type:        PatternSpiralMapping,
		Key:         key,
		Positions:   positions,
		Description: fmt.Sprintf("Spiral mapping of the %s major scale across the neck", key),
	}, nil
}

// Jumping returns the safe horizontal moves from start: every other in-key
// fret on the same string, start first, then ascending by fret.
func Jumping(start FretboardPosition, key Key, maxFret int, tuning Tuning) (*Pattern, error) {
	if err := tuning.Validate(maxFret); err != nil {
		return nil, err
	}
	if start.String < 1 || start.String > tuning.Strings() {
		return nil, fmt.Errorf("start string %d outside tuning range 1..%d", start.String, tuning.Strings())
	}
	positions := []FretboardPosition{start}
	for fret := 0; fret <= maxFret; fret++ {
		if fret == start.Fret {
			continue
		}
		note, ok := tuning.NoteAt(start.String, fret)
		if !ok || !key.Contains(note) {
			continue
		}
		positions = append(positions, FretboardPosition{
			String: start.String,
			Fret:   fret,
			Note:   note,
			IsRoot: note == key.Root,
		})
	}
	return &Pattern{
		Type:        PatternJumping,
		Key:         key,
		Positions:   positions,
		Description: fmt.Sprintf("Jumping moves along string %d in %s major", start.String, key),
	}, nil
}

// familyOffsets are the chord-root offsets for the family-of-chords pattern.
// Both qualities use the same I/IV/V offsets in the method's current
// definition; quality changes the description only.
var familyOffsets = [3]int{0, 5, 7}

// FamilyOfChords returns the I/IV/V (or i/iv/v) chord roots mapped to every
// string, each marked as a root.
func FamilyOfChords(key Key, quality ChordQuality, maxFret int, tuning Tuning) (*Pattern, error) {
	if err := tuning.Validate(maxFret); err != nil {
		return nil, err
	}
	var positions []FretboardPosition
	for _, offset := range familyOffsets {
		chordRoot := key.Root.Transpose(offset)
		for _, p := range tuning.PositionsFor(chordRoot, maxFret) {
			p.IsRoot = true
			positions = append(positions, p)
		}
	}
	label := "I, IV and V"
	if quality == QualityMinor {
		label = "i, iv and v"
	}
	return &Pattern{
		Type:        PatternFamilyOfChords,
		Key:         key,
		Positions:   positions,
		Description: fmt.Sprintf("The %s chord family of %s", label, key),
	}, nil
}

// FamilialHierarchy returns the roots of all seven diatonic triads. Only the
// I chord's positions are marked as roots; the method always points the
// student back at the tonic.
func FamilialHierarchy(key Key, maxFret int, tuning Tuning) (*Pattern, error) {
	if err := tuning.Validate(maxFret); err != nil {
		return nil, err
	}
	var positions []FretboardPosition
	for _, offset := range majorIntervals {
		degreeRoot := key.Root.Transpose(offset)
		for _, p := range tuning.PositionsFor(degreeRoot, maxFret) {
			p.IsRoot = offset == 0
			positions = append(positions, p)
		}
	}
	return &Pattern{
		Type:        PatternFamilialHierarchy,
		Key:         key,
		Positions:   positions,
		Description: fmt.Sprintf("Familial hierarchy of %s: all seven chord roots", key),
	}, nil
}

// maxNotesPerBoxString caps mode boxes at the three-notes-per-string
// fingering convention.
const maxNotesPerBoxString = 3

// ModeShape returns every position of the mode built on root. When boxFret
// is non-nil the scan is restricted to the box boxFret−2..boxFret+4 with at
// most three notes per string.
func ModeShape(m Mode, root Note, maxFret int, tuning Tuning, boxFret *int) (*Pattern, error) {
	if err := tuning.Validate(maxFret); err != nil {
		return nil, err
	}
	notes, err := ModeNotes(m, root)
	if err != nil {
		return nil, err
	}
	var mask [12]bool
	for _, n := range notes {
		mask[n.Semitones()] = true
	}

	lo, hi := 0, maxFret
	if boxFret != nil {
		lo = *boxFret - 2
		if lo < 0 {
			lo = 0
		}
		hi = *boxFret + 4
		if hi > maxFret {
			hi = maxFret
		}
	}

	var positions []FretboardPosition
	for str := 1; str <= tuning.Strings(); str++ {
		perString := 0
		for fret := lo; fret <= hi; fret++ {
			note, ok := tuning.NoteAt(str, fret)
			if !ok || !mask[note.Semitones()] {
				continue
			}
			if boxFret != nil && perString >= maxNotesPerBoxString {
				break
			}
			positions = append(positions, FretboardPosition{
				String: str,
				Fret:   fret,
				Note:   note,
				IsRoot: note == root,
			})
			perString++
		}
	}
	return &Pattern{
		Type:        PatternModeShape,
		Key:         Key{Root: root},
		Positions:   positions,
		Description: fmt.Sprintf("%s %s shape", root, m),
	}, nil
}

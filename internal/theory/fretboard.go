package theory

// FretboardPosition is a (string, fret) coordinate plus the pitch class that
// sounds there. Two positions are the same position iff string and fret match.
type FretboardPosition struct {
	String int  `json:"string"`
	Fret   int  `json:"fret"`
	Note   Note `json:"note"`
	IsRoot bool `json:"isRoot"`
}

// SamePlace reports whether p and q name the same physical spot.
func (p FretboardPosition) SamePlace(q FretboardPosition) bool {
	return p.String == q.String && p.Fret == q.Fret
}

// NoteAt returns the pitch class at the given string and fret. The string
// number is 1-based; a string outside 1..len(tuning) returns (C, false)
// instead of panicking, since this sits inside tight search loops.
func (t Tuning) NoteAt(str, fret int) (Note, bool) {
	if str < 1 || str > len(t) || fret < 0 {
		return NoteC, false
	}
	return t[str-1].Transpose(fret), true
}

// PositionsFor returns the lowest fret on every string that sounds note,
// filtered to frets within maxFret. At most one position per string: callers
// that need octave repeats on the same string scan fret-by-fret themselves.
func (t Tuning) PositionsFor(note Note, maxFret int) []FretboardPosition {
	positions := make([]FretboardPosition, 0, len(t))
	for str := 1; str <= len(t); str++ {
		fret := t[str-1].Interval(note)
		if fret > maxFret {
			continue
		}
		positions = append(positions, FretboardPosition{
			String: str,
			Fret:   fret,
			Note:   note,
		})
	}
	return positions
}

// FretsFor returns every fret in 0..maxFret on one string that sounds note,
// ascending. Empty when the string number is out of range.
func (t Tuning) FretsFor(note Note, str, maxFret int) []int {
	if str < 1 || str > len(t) {
		return nil
	}
	first := t[str-1].Interval(note)
	var frets []int
	for f := first; f <= maxFret; f += 12 {
		frets = append(frets, f)
	}
	return frets
}

// fretNear returns the fret on str sounding note that lies closest to center,
// restricted to |fret−center| ≤ window and 0..maxFret. The comma-ok result is
// false when no occurrence lands in the window.
func (t Tuning) fretNear(note Note, str, center, window, maxFret int) (int, bool) {
	best, found := 0, false
	for _, f := range t.FretsFor(note, str, maxFret) {
		d := f - center
		if d < 0 {
			d = -d
		}
		if d > window {
			continue
		}
		if !found || abs(f-center) < abs(best-center) {
			best, found = f, true
		}
	}
	return best, found
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package theory

import "fmt"

// CAGEDForm names the five movable open-chord shapes.
type CAGEDForm string

const (
	FormC CAGEDForm = "C"
	FormA CAGEDForm = "A"
	FormG CAGEDForm = "G"
	FormE CAGEDForm = "E"
	FormD CAGEDForm = "D"
)

// AllForms lists the forms in method order.
var AllForms = []CAGEDForm{FormC, FormA, FormG, FormE, FormD}

// ChordTone is a position's role inside a chord shape.
type ChordTone string

const (
	ToneRoot  ChordTone = "root"
	ToneThird ChordTone = "third"
	ToneFifth ChordTone = "fifth"
)

// toneInterval maps a chord-tone role to its semitone offset from the root.
var toneInterval = map[ChordTone]int{
	ToneRoot:  0,
	ToneThird: 4,
	ToneFifth: 7,
}

// ShapePosition is one slot of a chord shape: a fretboard spot plus its
// chord-tone role.
type ShapePosition struct {
	String int       `json:"string"`
	Fret   int       `json:"fret"`
	Note   Note      `json:"note"`
	Role   ChordTone `json:"role"`
}

// CAGEDShape is one instance of a form anchored at a root occurrence.
type CAGEDShape struct {
	Form         CAGEDForm           `json:"form"`
	Root         Note                `json:"root"`
	RootPosition FretboardPosition   `json:"rootPosition"`
	Positions    []ShapePosition     `json:"positions"`
	Description  string              `json:"description"`
}

// templateSlot is one entry of a form's template: the string it lands on,
// its fret offset from the root fret on the primary string, and its role.
type templateSlot struct {
	str    int
	offset int
	role   ChordTone
}

// cagedTemplate transcribes one open-position chord voicing. Offsets are
// relative to the root fret on the primary string, so moving the root up the
// neck moves the whole voicing.
type cagedTemplate struct {
	primaryString int
	slots         []templateSlot
}

// Templates are literal transcriptions of the five open chords with the
// nut as fret zero: C = x32010, A = x02220, G = 320003, E = 022100,
// D = xx0232.
var cagedTemplates = map[CAGEDForm]cagedTemplate{
	FormC: {primaryString: 5, slots: []templateSlot{
		{5, 0, ToneRoot},
		{4, -1, ToneThird},
		{3, -3, ToneFifth},
		{2, -2, ToneRoot},
		{1, -3, ToneThird},
	}},
	FormA: {primaryString: 5, slots: []templateSlot{
		{5, 0, ToneRoot},
		{4, 2, ToneFifth},
		{3, 2, ToneRoot},
		{2, 2, ToneThird},
		{1, 0, ToneFifth},
	}},
	FormG: {primaryString: 6, slots: []templateSlot{
		{6, 0, ToneRoot},
		{5, -1, ToneThird},
		{4, -3, ToneFifth},
		{3, -3, ToneRoot},
		{2, -3, ToneThird},
		{1, 0, ToneRoot},
	}},
	FormE: {primaryString: 6, slots: []templateSlot{
		{6, 0, ToneRoot},
		{5, 2, ToneFifth},
		{4, 2, ToneRoot},
		{3, 1, ToneThird},
		{2, 0, ToneFifth},
		{1, 0, ToneRoot},
	}},
	FormD: {primaryString: 4, slots: []templateSlot{
		{4, 0, ToneRoot},
		{3, 2, ToneFifth},
		{2, 3, ToneRoot},
		{1, 2, ToneThird},
	}},
}

// minShapePositions is the smallest verified slot count that still reads as
// a chord voicing.
const minShapePositions = 3

// ShapesFor returns every instance of one form for root within 0..maxFret.
// Each template slot is verified against the expected chord tone; slots that
// fall off the neck or fail verification are dropped, and the instance is
// kept only when at least three verified positions remain.
func ShapesFor(form CAGEDForm, root Note, maxFret int, tuning Tuning) ([]CAGEDShape, error) {
	if err := tuning.Validate(maxFret); err != nil {
		return nil, err
	}
	tpl, ok := cagedTemplates[form]
	if !ok {
		return nil, fmt.Errorf("unknown CAGED form %q", form)
	}

	var shapes []CAGEDShape
	for _, rootFret := range tuning.FretsFor(root, tpl.primaryString, maxFret) {
		var positions []ShapePosition
		for _, slot := range tpl.slots {
			fret := rootFret + slot.offset
			if fret < 0 || fret > maxFret {
				continue
			}
			note, ok := tuning.NoteAt(slot.str, fret)
			if !ok || note != root.Transpose(toneInterval[slot.role]) {
				continue
			}
			positions = append(positions, ShapePosition{
				String: slot.str,
				Fret:   fret,
				Note:   note,
				Role:   slot.role,
			})
		}
		if len(positions) < minShapePositions {
			continue
		}
		shapes = append(shapes, CAGEDShape{
			Form: form,
			Root: root,
			RootPosition: FretboardPosition{
				String: tpl.primaryString,
				Fret:   rootFret,
				Note:   root,
				IsRoot: true,
			},
			Positions:   positions,
			Description: fmt.Sprintf("%s major, %s form at fret %d", root, form, rootFret),
		})
	}
	return shapes, nil
}

// AllShapes returns every instance of all five forms for root.
func AllShapes(root Note, maxFret int, tuning Tuning) ([]CAGEDShape, error) {
	if err := tuning.Validate(maxFret); err != nil {
		return nil, err
	}
	var shapes []CAGEDShape
	for _, form := range AllForms {
		forForm, err := ShapesFor(form, root, maxFret, tuning)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, forForm...)
	}
	return shapes, nil
}

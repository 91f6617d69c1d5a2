package theory

import "testing"

func TestAllShapes_EveryFormPresent(t *testing.T) {
	shapes, err := AllShapes(NoteC, 24, StandardTuning())
	if err != nil {
		t.Fatal(err)
	}
	byForm := make(map[CAGEDForm]int)
	for _, s := range shapes {
		byForm[s.Form]++
		if len(s.Positions) < 3 {
			t.Errorf("%s form shape at fret %d has %d positions, want >= 3", s.Form, s.RootPosition.Fret, len(s.Positions))
		}
		if s.RootPosition.Note != NoteC {
			t.Errorf("%s form root position sounds %s, want C", s.Form, s.RootPosition.Note)
		}
		if !s.RootPosition.IsRoot {
			t.Errorf("%s form root position not marked as root", s.Form)
		}
	}
	for _, form := range AllForms {
		if byForm[form] == 0 {
			t.Errorf("no %s form shape found for C over 24 frets", form)
		}
	}
}

func TestShapes_ChordToneCorrectness(t *testing.T) {
	for root := NoteC; root <= NoteB; root++ {
		shapes, err := AllShapes(root, 24, StandardTuning())
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range shapes {
			for _, p := range s.Positions {
				interval := root.Interval(p.Note)
				switch p.Role {
				case ToneRoot:
					if interval != 0 {
						t.Errorf("root %s, %s form: root slot (%d, %d) sounds %s", root, s.Form, p.String, p.Fret, p.Note)
					}
				case ToneThird:
					if interval != 4 {
						t.Errorf("root %s, %s form: third slot (%d, %d) sounds %s (interval %d)", root, s.Form, p.String, p.Fret, p.Note, interval)
					}
				case ToneFifth:
					if interval != 7 {
						t.Errorf("root %s, %s form: fifth slot (%d, %d) sounds %s (interval %d)", root, s.Form, p.String, p.Fret, p.Note, interval)
					}
				default:
					t.Errorf("unexpected role %q", p.Role)
				}
			}
		}
	}
}

func TestShapesFor_CFormOpenVoicing(t *testing.T) {
	shapes, err := ShapesFor(FormC, NoteC, 12, StandardTuning())
	if err != nil {
		t.Fatal(err)
	}
	if len(shapes) == 0 {
		t.Fatal("no C form shapes for C within 12 frets")
	}

	// The first instance is the open C chord itself: x32010.
	open := shapes[0]
	if open.RootPosition.String != 5 || open.RootPosition.Fret != 3 {
		t.Fatalf("root position (%d, %d), want (5, 3)", open.RootPosition.String, open.RootPosition.Fret)
	}
	want := []ShapePosition{
		{String: 5, Fret: 3, Note: NoteC, Role: ToneRoot},
		{String: 4, Fret: 2, Note: NoteE, Role: ToneThird},
		{String: 3, Fret: 0, Note: NoteG, Role: ToneFifth},
		{String: 2, Fret: 1, Note: NoteC, Role: ToneRoot},
		{String: 1, Fret: 0, Note: NoteE, Role: ToneThird},
	}
	if len(open.Positions) != len(want) {
		t.Fatalf("got %d positions, want %d", len(open.Positions), len(want))
	}
	for i, w := range want {
		if open.Positions[i] != w {
			t.Errorf("position %d = %+v, want %+v", i, open.Positions[i], w)
		}
	}
}

func TestShapesFor_TruncatedAtNeckEnd(t *testing.T) {
	// E form for C roots at fret 8; with maxFret 8 the slots reaching frets
	// 9 and 10 fall off, leaving exactly the three in-range positions.
	shapes, err := ShapesFor(FormE, NoteC, 8, StandardTuning())
	if err != nil {
		t.Fatal(err)
	}
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	if len(shapes[0].Positions) != 3 {
		t.Errorf("truncated E form has %d positions, want 3", len(shapes[0].Positions))
	}
}

func TestShapesFor_UnknownForm(t *testing.T) {
	if _, err := ShapesFor(CAGEDForm("F"), NoteC, 12, StandardTuning()); err == nil {
		t.Error("unknown form should fail")
	}
}

func TestShapesFor_DegenerateInputs(t *testing.T) {
	if _, err := ShapesFor(FormA, NoteC, -1, StandardTuning()); err == nil {
		t.Error("negative maxFret should fail")
	}
	if _, err := AllShapes(NoteC, 12, Tuning{NoteE}); err == nil {
		t.Error("short tuning should fail")
	}
}

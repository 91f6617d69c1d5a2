package theory

import "testing"

func TestTranspose_Closure(t *testing.T) {
	for n := NoteC; n <= NoteB; n++ {
		for k := -30; k <= 30; k++ {
			if got := n.Transpose(k).Transpose(-k); got != n {
				t.Fatalf("%s.Transpose(%d).Transpose(%d) = %s, want %s", n, k, -k, got, n)
			}
		}
	}
}

func TestTranspose_OctaveEquivalence(t *testing.T) {
	for n := NoteC; n <= NoteB; n++ {
		if got := n.Transpose(12); got != n {
			t.Errorf("%s.Transpose(12) = %s, want %s", n, got, n)
		}
		if got := n.Transpose(-12); got != n {
			t.Errorf("%s.Transpose(-12) = %s, want %s", n, got, n)
		}
	}
}

func TestTranspose_Negative(t *testing.T) {
	if got := NoteC.Transpose(-1); got != NoteB {
		t.Errorf("C.Transpose(-1) = %s, want B", got)
	}
	if got := NoteD.Transpose(-26); got != NoteC {
		t.Errorf("D.Transpose(-26) = %s, want C", got)
	}
}

func TestInterval(t *testing.T) {
	cases := []struct {
		from, to Note
		want     int
	}{
		{NoteC, NoteC, 0},
		{NoteC, NoteE, 4},
		{NoteC, NoteG, 7},
		{NoteB, NoteC, 1},
		{NoteA, NoteE, 7},
	}
	for _, c := range cases {
		if got := c.from.Interval(c.to); got != c.want {
			t.Errorf("Interval(%s -> %s) = %d, want %d", c.from, c.to, got, c.want)
		}
	}
}

func TestParseNote(t *testing.T) {
	for n := NoteC; n <= NoteB; n++ {
		parsed, err := ParseNote(n.String())
		if err != nil {
			t.Fatalf("ParseNote(%q): %v", n.String(), err)
		}
		if parsed != n {
			t.Errorf("ParseNote(%q) = %s, want %s", n.String(), parsed, n)
		}
	}

	if _, err := ParseNote("H"); err == nil {
		t.Error("ParseNote(\"H\") should fail")
	}
	if _, err := ParseNote("Db"); err == nil {
		t.Error("ParseNote(\"Db\") should fail: flat spellings are not accepted")
	}
}

package e2e

import (
	"net/http"
	"testing"
)

func TestSpiralPattern_Success(t *testing.T) {
	ta := setupApp(t)

	body := `{"key":"C","maxFret":12}`
	resp, err := doFreeRequest(t, ta, http.MethodPost, "/api/patterns/spiral", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	if result["type"] != "spiral_mapping" {
		t.Errorf("expected type spiral_mapping, got %v", result["type"])
	}
	positions, ok := result["positions"].([]interface{})
	if !ok || len(positions) == 0 {
		t.Fatal("expected non-empty positions array")
	}

	// The tonic at (6, 8) must be present and marked as root.
	foundRoot := false
	for _, raw := range positions {
		p := raw.(map[string]interface{})
		if p["string"] == float64(6) && p["fret"] == float64(8) {
			if p["note"] != "C" || p["isRoot"] != true {
				t.Errorf("position (6, 8) = %v, want C marked as root", p)
			}
			foundRoot = true
		}
	}
	if !foundRoot {
		t.Error("position (6, 8) missing from spiral mapping")
	}
}

func TestSpiralPattern_InvalidKey(t *testing.T) {
	ta := setupApp(t)

	body := `{"key":"H","maxFret":12}`
	resp, err := doFreeRequest(t, ta, http.MethodPost, "/api/patterns/spiral", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusBadRequest)
	assertErrorCode(t, resp, "VALIDATION_ERROR")
}

func TestSpiralPattern_DefaultMaxFret(t *testing.T) {
	ta := setupApp(t)

	// Omitted maxFret falls back to the configured default.
	body := `{"key":"C"}`
	resp, err := doFreeRequest(t, ta, http.MethodPost, "/api/patterns/spiral", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	positions, ok := result["positions"].([]interface{})
	if !ok || len(positions) == 0 {
		t.Fatal("expected non-empty positions array")
	}
	maxSeen := 0
	for _, raw := range positions {
		p := raw.(map[string]interface{})
		if fret := int(p["fret"].(float64)); fret > maxSeen {
			maxSeen = fret
		}
	}
	// Fret 24 on string 1 is E, diatonic to C major, so the default range
	// is fully used.
	if maxSeen != testDefaultMaxFret {
		t.Errorf("highest fret = %d, want the default %d", maxSeen, testDefaultMaxFret)
	}
}

func TestSpiralPattern_MaxFretTooHigh(t *testing.T) {
	ta := setupApp(t)

	body := `{"key":"C","maxFret":40}`
	resp, err := doFreeRequest(t, ta, http.MethodPost, "/api/patterns/spiral", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusBadRequest)
	assertErrorCode(t, resp, "VALIDATION_ERROR")
}

func TestJumpingPattern_Success(t *testing.T) {
	ta := setupApp(t)

	body := `{"key":"C","maxFret":12,"start":{"string":3,"fret":0}}`
	resp, err := doFreeRequest(t, ta, http.MethodPost, "/api/patterns/jumping", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	positions, ok := result["positions"].([]interface{})
	if !ok {
		t.Fatal("expected positions array")
	}
	// Start plus the seven diatonic frets 2 4 5 7 9 10 12 on the G string.
	if len(positions) != 8 {
		t.Errorf("expected 8 positions, got %d", len(positions))
	}
	first := positions[0].(map[string]interface{})
	if first["string"] != float64(3) || first["fret"] != float64(0) {
		t.Errorf("first position = %v, want the start (3, 0)", first)
	}
}

func TestFamilyPattern_Success(t *testing.T) {
	ta := setupApp(t)

	body := `{"key":"C","quality":"major","maxFret":12}`
	resp, err := doFreeRequest(t, ta, http.MethodPost, "/api/patterns/chords", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	positions, ok := result["positions"].([]interface{})
	if !ok {
		t.Fatal("expected positions array")
	}
	if len(positions) != 18 {
		t.Errorf("expected 18 positions (3 chord roots x 6 strings), got %d", len(positions))
	}
	for _, raw := range positions {
		p := raw.(map[string]interface{})
		if p["isRoot"] != true {
			t.Errorf("family position %v not marked as root", p)
		}
	}
}

func TestFamilyPattern_BadQuality(t *testing.T) {
	ta := setupApp(t)

	body := `{"key":"C","quality":"diminished","maxFret":12}`
	resp, err := doFreeRequest(t, ta, http.MethodPost, "/api/patterns/chords", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusBadRequest)
	assertErrorCode(t, resp, "VALIDATION_ERROR")
}

func TestHierarchyPattern_Success(t *testing.T) {
	ta := setupApp(t)

	body := `{"key":"D","maxFret":12}`
	resp, err := doFreeRequest(t, ta, http.MethodPost, "/api/patterns/hierarchy", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	positions, ok := result["positions"].([]interface{})
	if !ok {
		t.Fatal("expected positions array")
	}
	if len(positions) != 42 {
		t.Errorf("expected 42 positions (7 degrees x 6 strings), got %d", len(positions))
	}
	for _, raw := range positions {
		p := raw.(map[string]interface{})
		isTonic := p["note"] == "D"
		if p["isRoot"] != isTonic {
			t.Errorf("position %v: only tonic positions may be marked root", p)
		}
	}
}

func TestModePattern_Boxed(t *testing.T) {
	ta := setupApp(t)

	body := `{"key":"D","mode":"dorian","maxFret":24,"boxFret":5}`
	resp, err := doFreeRequest(t, ta, http.MethodPost, "/api/patterns/modes", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	positions, ok := result["positions"].([]interface{})
	if !ok || len(positions) == 0 {
		t.Fatal("expected non-empty positions array")
	}
	for _, raw := range positions {
		p := raw.(map[string]interface{})
		fret := p["fret"].(float64)
		if fret < 3 || fret > 9 {
			t.Errorf("position %v outside box frets 3..9", p)
		}
	}
}

func TestModePattern_UnknownMode(t *testing.T) {
	ta := setupApp(t)

	body := `{"key":"C","mode":"superlocrian","maxFret":12}`
	resp, err := doFreeRequest(t, ta, http.MethodPost, "/api/patterns/modes", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusBadRequest)
	assertErrorCode(t, resp, "VALIDATION_ERROR")
}

package service

import (
	"fmt"
	"strings"

	"github.com/rsoguitar/api/internal/model"
	"github.com/rsoguitar/api/internal/theory"
)

// parseBoardParams converts wire-level board parameters into engine types.
// Validation has already rejected malformed values; this only translates.
func parseBoardParams(p model.BoardParams) (theory.Key, theory.Tuning, error) {
	root, err := theory.ParseNote(p.Key)
	if err != nil {
		return theory.Key{}, nil, err
	}
	tuning, err := parseTuning(p.Tuning)
	if err != nil {
		return theory.Key{}, nil, err
	}
	return theory.Key{Root: root}, tuning, nil
}

func parseTuning(names []string) (theory.Tuning, error) {
	if len(names) == 0 {
		return theory.StandardTuning(), nil
	}
	tuning := make(theory.Tuning, len(names))
	for i, name := range names {
		n, err := theory.ParseNote(name)
		if err != nil {
			return nil, fmt.Errorf("tuning string %d: %w", i+1, err)
		}
		tuning[i] = n
	}
	return tuning, nil
}

// tuningKey renders a tuning for use inside cache keys.
func tuningKey(t theory.Tuning) string {
	parts := make([]string, len(t))
	for i, n := range t {
		parts[i] = n.String()
	}
	return strings.Join(parts, "-")
}

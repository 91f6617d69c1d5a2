package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rsoguitar/api/internal/model"
	"github.com/rsoguitar/api/internal/theory"
)

// patternCacheTTL bounds how long memoized generator output lives. The
// engine is deterministic, so the TTL only limits Redis growth.
const patternCacheTTL = time.Hour

// PatternService runs the pattern generators with Redis memoization. The
// cache is strictly an accelerator: on any Redis failure the service
// recomputes and answers from the engine.
type PatternService struct {
	redis *redis.Client
}

func NewPatternService(redisClient *redis.Client) *PatternService {
	return &PatternService{redis: redisClient}
}

// Spiral returns the spiral-mapping pattern for a key.
func (s *PatternService) Spiral(ctx context.Context, req *model.SpiralRequest) (*theory.Pattern, error) {
	key, tuning, err := parseBoardParams(req.BoardParams)
	if err != nil {
		return nil, err
	}
	cacheKey := fmt.Sprintf("pattern:spiral:%s:%d:%s", key, req.MaxFret, tuningKey(tuning))
	return s.cached(ctx, cacheKey, func() (*theory.Pattern, error) {
		return theory.SpiralMapping(key, req.MaxFret, tuning)
	})
}

// Jumping returns the same-string moves from a start position.
func (s *PatternService) Jumping(ctx context.Context, req *model.JumpingRequest) (*theory.Pattern, error) {
	key, tuning, err := parseBoardParams(req.BoardParams)
	if err != nil {
		return nil, err
	}
	startNote, ok := tuning.NoteAt(req.Start.String, req.Start.Fret)
	if !ok {
		return nil, fmt.Errorf("start position (%d, %d) is off the board", req.Start.String, req.Start.Fret)
	}
	start := theory.FretboardPosition{
		String: req.Start.String,
		Fret:   req.Start.Fret,
		Note:   startNote,
		IsRoot: startNote == key.Root,
	}
	cacheKey := fmt.Sprintf("pattern:jumping:%s:%d:%d:%d:%s", key, req.Start.String, req.Start.Fret, req.MaxFret, tuningKey(tuning))
	return s.cached(ctx, cacheKey, func() (*theory.Pattern, error) {
		return theory.Jumping(start, key, req.MaxFret, tuning)
	})
}

// Family returns the family-of-chords pattern.
func (s *PatternService) Family(ctx context.Context, req *model.FamilyRequest) (*theory.Pattern, error) {
	key, tuning, err := parseBoardParams(req.BoardParams)
	if err != nil {
		return nil, err
	}
	cacheKey := fmt.Sprintf("pattern:family:%s:%s:%d:%s", key, req.Quality, req.MaxFret, tuningKey(tuning))
	return s.cached(ctx, cacheKey, func() (*theory.Pattern, error) {
		return theory.FamilyOfChords(key, theory.ChordQuality(req.Quality), req.MaxFret, tuning)
	})
}

// Hierarchy returns the familial-hierarchy pattern.
func (s *PatternService) Hierarchy(ctx context.Context, req *model.HierarchyRequest) (*theory.Pattern, error) {
	key, tuning, err := parseBoardParams(req.BoardParams)
	if err != nil {
		return nil, err
	}
	cacheKey := fmt.Sprintf("pattern:hierarchy:%s:%d:%s", key, req.MaxFret, tuningKey(tuning))
	return s.cached(ctx, cacheKey, func() (*theory.Pattern, error) {
		return theory.FamilialHierarchy(key, req.MaxFret, tuning)
	})
}

// ModeShape returns a mode shape, boxed when a box fret is given.
func (s *PatternService) ModeShape(ctx context.Context, req *model.ModeShapeRequest) (*theory.Pattern, error) {
	key, tuning, err := parseBoardParams(req.BoardParams)
	if err != nil {
		return nil, err
	}
	box := "full"
	if req.BoxFret != nil {
		box = fmt.Sprintf("%d", *req.BoxFret)
	}
	cacheKey := fmt.Sprintf("pattern:mode:%s:%s:%s:%d:%s", req.Mode, key, box, req.MaxFret, tuningKey(tuning))
	return s.cached(ctx, cacheKey, func() (*theory.Pattern, error) {
		return theory.ModeShape(theory.Mode(req.Mode), key.Root, req.MaxFret, tuning, req.BoxFret)
	})
}

func (s *PatternService) cached(ctx context.Context, cacheKey string, compute func() (*theory.Pattern, error)) (*theory.Pattern, error) {
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var pattern theory.Pattern
			if json.Unmarshal(data, &pattern) == nil {
				return &pattern, nil
			}
		}
	}

	pattern, err := compute()
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(pattern); err == nil {
			s.redis.Set(ctx, cacheKey, data, patternCacheTTL)
		}
	}
	return pattern, nil
}

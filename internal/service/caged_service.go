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

const cagedCacheTTL = time.Hour

// CAGEDService computes chord-shape instances with the same cache-aside
// memoization as PatternService.
type CAGEDService struct {
	redis *redis.Client
}

func NewCAGEDService(redisClient *redis.Client) *CAGEDService {
	return &CAGEDService{redis: redisClient}
}

// Shapes returns the shape instances for a root: one form when requested,
// all five otherwise.
func (s *CAGEDService) Shapes(ctx context.Context, req *model.CAGEDRequest) (*model.CAGEDResponse, error) {
	root, err := theory.ParseNote(req.Root)
	if err != nil {
		return nil, err
	}
	tuning, err := parseTuning(req.Tuning)
	if err != nil {
		return nil, err
	}

	form := "all"
	if req.Form != "" {
		form = string(req.Form)
	}
	cacheKey := fmt.Sprintf("caged:%s:%s:%d:%s", form, root, req.MaxFret, tuningKey(tuning))

	if s.redis != nil {
		if data, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp model.CAGEDResponse
			if json.Unmarshal(data, &resp) == nil {
				return &resp, nil
			}
		}
	}

	var shapes []theory.CAGEDShape
	if req.Form != "" {
		shapes, err = theory.ShapesFor(theory.CAGEDForm(req.Form), root, req.MaxFret, tuning)
	} else {
		shapes, err = theory.AllShapes(root, req.MaxFret, tuning)
	}
	if err != nil {
		return nil, err
	}

	resp := &model.CAGEDResponse{Shapes: shapes}
	if s.redis != nil {
		if data, err := json.Marshal(resp); err == nil {
			s.redis.Set(ctx, cacheKey, data, cagedCacheTTL)
		}
	}
	return resp, nil
}

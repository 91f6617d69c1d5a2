package service

import (
	"context"
	"fmt"

	"github.com/rsoguitar/api/internal/model"
	"github.com/rsoguitar/api/internal/theory"
)

// BlockService runs single-block searches and drag re-anchoring. Both are
// cheap single-anchor searches, so they stay synchronous and uncached; the
// expensive full-board search goes through BoardService instead.
type BlockService struct{}

func NewBlockService() *BlockService {
	return &BlockService{}
}

// Search looks for one block of the requested type at the anchor. A miss is
// reported as "no block", matching the engine: most anchors hold nothing.
func (s *BlockService) Search(ctx context.Context, req *model.BlockSearchRequest) (*theory.Block, error) {
	key, tuning, err := parseBoardParams(req.BoardParams)
	if err != nil {
		return nil, err
	}
	anchor := theory.FretboardPosition{String: req.Anchor.String, Fret: req.Anchor.Fret}
	block, ok, err := theory.SearchBlock(theory.BlockType(req.Type), key, anchor, req.MaxFret, tuning)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no block found")
	}
	return block, nil
}

// Reanchor re-runs the search for a dragged block at its new anchor. The
// prior block comes back unchanged when the drag lands nowhere valid.
func (s *BlockService) Reanchor(ctx context.Context, req *model.ReanchorRequest) (*model.ReanchorResponse, error) {
	key, tuning, err := parseBoardParams(req.BoardParams)
	if err != nil {
		return nil, err
	}
	anchor := theory.FretboardPosition{String: req.Anchor.String, Fret: req.Anchor.Fret}
	block, moved, err := theory.Reanchor(req.Block, anchor, key, req.MaxFret, tuning)
	if err != nil {
		return nil, err
	}
	return &model.ReanchorResponse{Block: block, Moved: moved}, nil
}

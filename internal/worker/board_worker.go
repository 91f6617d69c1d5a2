package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/rsoguitar/api/internal/model"
	"github.com/rsoguitar/api/internal/service"
	"github.com/rsoguitar/api/internal/theory"
	"github.com/rsoguitar/api/internal/websocket"
)

// BoardWorker processes full-board regeneration jobs: the block partition,
// all CAGED shapes and the diatonic spiral map for one key.
type BoardWorker struct {
	boardService *service.BoardService
	hub          *websocket.Hub
}

// NewBoardWorker creates a new board worker
func NewBoardWorker(boardService *service.BoardService, hub *websocket.Hub) *BoardWorker {
	return &BoardWorker{
		boardService: boardService,
		hub:          hub,
	}
}

// ProcessTask handles board task processing
func (w *BoardWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var taskPayload struct {
		JobID   string          `json:"jobId"`
		Payload json.RawMessage `json:"payload"`
	}

	if err := json.Unmarshal(t.Payload(), &taskPayload); err != nil {
		return fmt.Errorf("failed to unmarshal task payload: %w", err)
	}

	jobID := taskPayload.JobID
	log.Printf("Starting board job: %s", jobID)

	var payload model.BoardJobPayload
	if err := json.Unmarshal(taskPayload.Payload, &payload); err != nil {
		w.failJob(ctx, jobID, "Invalid payload")
		return fmt.Errorf("failed to unmarshal board payload: %w", err)
	}

	root, err := theory.ParseNote(payload.Key)
	if err != nil {
		w.failJob(ctx, jobID, "Invalid key")
		return err
	}
	key := theory.Key{Root: root}
	tuning := theory.StandardTuning()
	if len(payload.Tuning) > 0 {
		if len(payload.Tuning) != 6 {
			w.failJob(ctx, jobID, "Invalid tuning")
			return fmt.Errorf("tuning must have 6 strings, got %d", len(payload.Tuning))
		}
		tuning = make(theory.Tuning, 6)
		for i, name := range payload.Tuning {
			n, err := theory.ParseNote(name)
			if err != nil {
				w.failJob(ctx, jobID, "Invalid tuning")
				return err
			}
			tuning[i] = n
		}
	}

	w.progress(ctx, jobID, 10, "Searching HEAD, BRIDGE and TRIPLE blocks...")
	blocks, err := theory.AllBlocks(key, payload.MaxFret, tuning)
	if err != nil {
		w.failJob(ctx, jobID, err.Error())
		return err
	}

	w.progress(ctx, jobID, 50, "Generating CAGED shapes...")
	shapes, err := theory.AllShapes(key.Root, payload.MaxFret, tuning)
	if err != nil {
		w.failJob(ctx, jobID, err.Error())
		return err
	}

	w.progress(ctx, jobID, 85, "Mapping the diatonic spiral...")
	diatonic, err := theory.SpiralMapping(key, payload.MaxFret, tuning)
	if err != nil {
		w.failJob(ctx, jobID, err.Error())
		return err
	}

	result := &model.BoardResult{
		Key:         payload.Key,
		MaxFret:     payload.MaxFret,
		Blocks:      blocks,
		Shapes:      shapes,
		DiatonicMap: diatonic,
		GeneratedAt: time.Now(),
	}

	if err := w.boardService.CompleteJob(ctx, jobID, result); err != nil {
		w.failJob(ctx, jobID, "Failed to save result")
		return err
	}

	w.hub.BroadcastComplete(jobID, result)

	log.Printf("Board job %s completed: %d blocks, %d shapes", jobID, len(blocks), len(shapes))
	return nil
}

func (w *BoardWorker) progress(ctx context.Context, jobID string, progress int, step string) {
	if err := w.boardService.UpdateJobProgress(ctx, jobID, progress, step); err != nil {
		log.Printf("Failed to update progress: %v", err)
	}
	w.hub.BroadcastProgress(jobID, progress, model.JobStatusRunning, step)
}

func (w *BoardWorker) failJob(ctx context.Context, jobID, errMsg string) {
	if err := w.boardService.FailJob(ctx, jobID, errMsg); err != nil {
		log.Printf("Failed to mark job as failed: %v", err)
	}
	w.hub.BroadcastError(jobID, "BOARD_FAILED", errMsg)
}

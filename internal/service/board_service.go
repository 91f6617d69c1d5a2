package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/rsoguitar/api/internal/model"
)

// TaskTypeBoard is the asynq task type for full-board regeneration.
const TaskTypeBoard = "board:generate"

// BoardService owns the full-board regeneration pipeline: a key change on
// the client queues one job that recomputes every block, CAGED shape and
// the diatonic map, so stale in-flight computations never overwrite a newer
// selection.
type BoardService struct {
	redis       *redis.Client
	asynqClient *asynq.Client
}

func NewBoardService(redisClient *redis.Client, asynqClient *asynq.Client) *BoardService {
	return &BoardService{
		redis:       redisClient,
		asynqClient: asynqClient,
	}
}

// Generate queues a board regeneration job.
func (s *BoardService) Generate(ctx context.Context, req *model.BoardGenerateRequest) (*model.BoardGenerateResponse, error) {
	// Parse up front so an impossible board fails the request, not the job.
	if _, _, err := parseBoardParams(req.BoardParams); err != nil {
		return nil, err
	}

	jobID := uuid.New().String()
	now := time.Now()

	job := &model.Job{
		ID:        jobID,
		Type:      model.JobTypeBoard,
		Status:    model.JobStatusQueued,
		Progress:  0,
		CreatedAt: now,
	}

	payload := &model.BoardJobPayload{
		Key:     req.Key,
		MaxFret: req.MaxFret,
		Tuning:  req.Tuning,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	job.Payload = payloadBytes

	if err := s.saveJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}

	task, err := newBoardTask(jobID, payloadBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	_, err = s.asynqClient.Enqueue(task,
		asynq.Queue("board"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}

	return &model.BoardGenerateResponse{
		JobID:     jobID,
		Status:    model.JobStatusQueued,
		CreatedAt: now,
	}, nil
}

// GetStatus returns the current status of a board job.
func (s *BoardService) GetStatus(ctx context.Context, jobID string) (*model.BoardStatusResponse, error) {
	job, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &model.BoardStatusResponse{
		JobID:       job.ID,
		Status:      job.Status,
		Progress:    job.Progress,
		CurrentStep: job.CurrentStep,
		Error:       job.Error,
	}, nil
}

// GetResult returns the result of a completed board job.
func (s *BoardService) GetResult(ctx context.Context, jobID string) (*model.BoardResult, error) {
	job, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != model.JobStatusSucceeded {
		return nil, fmt.Errorf("job not completed")
	}

	var result model.BoardResult
	if err := json.Unmarshal(job.Result, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &result, nil
}

// UpdateJobProgress records progress from the worker.
func (s *BoardService) UpdateJobProgress(ctx context.Context, jobID string, progress int, step string) error {
	job, err := s.getJob(ctx, jobID)
	if err != nil {
		return err
	}
	if job.Status == model.JobStatusQueued {
		now := time.Now()
		job.Status = model.JobStatusRunning
		job.StartedAt = &now
	}
	job.Progress = progress
	job.CurrentStep = step
	return s.saveJob(ctx, job)
}

// CompleteJob stores the result and marks the job succeeded.
func (s *BoardService) CompleteJob(ctx context.Context, jobID string, result *model.BoardResult) error {
	job, err := s.getJob(ctx, jobID)
	if err != nil {
		return err
	}
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	now := time.Now()
	job.Status = model.JobStatusSucceeded
	job.Progress = 100
	job.CurrentStep = ""
	job.Result = data
	job.CompletedAt = &now
	return s.saveJob(ctx, job)
}

// FailJob marks the job failed with a message.
func (s *BoardService) FailJob(ctx context.Context, jobID, errMsg string) error {
	job, err := s.getJob(ctx, jobID)
	if err != nil {
		return err
	}
	now := time.Now()
	job.Status = model.JobStatusFailed
	job.Error = &errMsg
	job.CompletedAt = &now
	return s.saveJob(ctx, job)
}

func (s *BoardService) saveJob(ctx context.Context, job *model.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, fmt.Sprintf("job:%s", job.ID), data, 24*time.Hour).Err()
}

func (s *BoardService) getJob(ctx context.Context, jobID string) (*model.Job, error) {
	data, err := s.redis.Get(ctx, fmt.Sprintf("job:%s", jobID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("job not found")
		}
		return nil, err
	}

	var job model.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func newBoardTask(jobID string, payload []byte) (*asynq.Task, error) {
	// RawMessage embeds the payload as JSON; a plain []byte would be
	// base64-encoded and unreadable for the worker.
	taskPayload := map[string]interface{}{
		"jobId":   jobID,
		"payload": json.RawMessage(payload),
	}
	data, err := json.Marshal(taskPayload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeBoard, data), nil
}

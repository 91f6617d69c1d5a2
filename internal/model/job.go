package model

import "time"

// Job represents a background job in the system
type Job struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Status      JobStatus  `json:"status"`
	Progress    int        `json:"progress"`
	CurrentStep string     `json:"currentStep,omitempty"`
	Error       *string    `json:"error,omitempty"`
	Payload     []byte     `json:"payload,omitempty"` // JSON, base64 inside the job record
	Result      []byte     `json:"result,omitempty"`  // JSON, base64 inside the job record
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Job types
const (
	JobTypeBoard = "board"
)

// BoardJobPayload contains the data for a board regeneration job
type BoardJobPayload struct {
	Key     string   `json:"key"`
	MaxFret int      `json:"maxFret"`
	Tuning  []string `json:"tuning,omitempty"`
}

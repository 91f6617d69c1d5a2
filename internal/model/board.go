package model

import (
	"time"

	"github.com/rsoguitar/api/internal/theory"
)

// BoardParams are the fields shared by every engine request: the key root,
// the fret range and an optional alternate tuning (written high string
// first; empty means standard tuning). A zero or omitted maxFret is filled
// with the configured default before validation.
type BoardParams struct {
	Key     string   `json:"key" validate:"required,oneof=C C# D D# E F F# G G# A A# B"`
	MaxFret int      `json:"maxFret" validate:"required,min=1,max=36"`
	Tuning  []string `json:"tuning" validate:"omitempty,len=6,dive,oneof=C C# D D# E F F# G G# A A# B"`
}

// Anchor is a (string, fret) coordinate supplied by the client, typically
// from a tap or the end of a drag.
type Anchor struct {
	String int `json:"string" validate:"required,min=1,max=6"`
	Fret   int `json:"fret" validate:"min=0,max=36"`
}

// SpiralRequest asks for the full diatonic spiral mapping.
type SpiralRequest struct {
	BoardParams
}

// JumpingRequest asks for the safe horizontal moves from a start position.
type JumpingRequest struct {
	BoardParams
	Start Anchor `json:"start" validate:"required"`
}

// FamilyRequest asks for the family-of-chords pattern.
type FamilyRequest struct {
	BoardParams
	Quality ChordQuality `json:"quality" validate:"required,oneof=major minor"`
}

// HierarchyRequest asks for the familial-hierarchy pattern.
type HierarchyRequest struct {
	BoardParams
}

// ModeShapeRequest asks for a mode shape, optionally boxed around a fret.
type ModeShapeRequest struct {
	BoardParams
	Mode    Mode `json:"mode" validate:"required,oneof=ionian dorian phrygian lydian mixolydian aeolian locrian"`
	BoxFret *int `json:"boxFret" validate:"omitempty,min=0,max=36"`
}

// BlockSearchRequest asks for a single block anchored at a position.
type BlockSearchRequest struct {
	BoardParams
	Type   BlockType `json:"type" validate:"required,oneof=head bridge triple"`
	Anchor Anchor    `json:"anchor" validate:"required"`
}

// BlockSearchResponse wraps the found block.
type BlockSearchResponse struct {
	Block *theory.Block `json:"block"`
}

// ReanchorRequest re-runs a block search after a drag. The prior block is
// echoed back unchanged when the new anchor holds no valid block.
type ReanchorRequest struct {
	BoardParams
	Block  theory.Block `json:"block" validate:"required"`
	Anchor Anchor       `json:"anchor" validate:"required"`
}

// ReanchorResponse reports whether the block actually moved.
type ReanchorResponse struct {
	Block theory.Block `json:"block"`
	Moved bool         `json:"moved"`
}

// CAGEDRequest asks for chord shapes; an empty form means all five.
type CAGEDRequest struct {
	Root    string    `json:"root" validate:"required,oneof=C C# D D# E F F# G G# A A# B"`
	Form    CAGEDForm `json:"form" validate:"omitempty,oneof=C A G E D"`
	MaxFret int       `json:"maxFret" validate:"required,min=1,max=36"`
	Tuning  []string  `json:"tuning" validate:"omitempty,len=6,dive,oneof=C C# D D# E F F# G G# A A# B"`
}

// CAGEDResponse lists the computed shape instances.
type CAGEDResponse struct {
	Shapes []theory.CAGEDShape `json:"shapes"`
}

// NoteQueryResponse answers a fretboard tap.
type NoteQueryResponse struct {
	String int         `json:"string"`
	Fret   int         `json:"fret"`
	Note   theory.Note `json:"note"`
}

// BoardGenerateRequest queues a full-board regeneration job for a key.
type BoardGenerateRequest struct {
	BoardParams
}

// BoardGenerateResponse acknowledges the queued job.
type BoardGenerateResponse struct {
	JobID     string    `json:"jobId"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// BoardStatusResponse reports job progress.
type BoardStatusResponse struct {
	JobID       string    `json:"jobId"`
	Status      JobStatus `json:"status"`
	Progress    int       `json:"progress"`
	CurrentStep string    `json:"currentStep,omitempty"`
	Error       *string   `json:"error,omitempty"`
}

// BoardResult is the payload of a completed board job: everything the
// client re-renders after a key change.
type BoardResult struct {
	Key         string              `json:"key"`
	MaxFret     int                 `json:"maxFret"`
	Blocks      []theory.Block      `json:"blocks"`
	Shapes      []theory.CAGEDShape `json:"shapes"`
	DiatonicMap *theory.Pattern     `json:"diatonicMap"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

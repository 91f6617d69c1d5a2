package model

// Chord qualities
type ChordQuality string

const (
	QualityMajor ChordQuality = "major"
	QualityMinor ChordQuality = "minor"
)

// Block types
type BlockType string

const (
	BlockHead   BlockType = "head"
	BlockBridge BlockType = "bridge"
	BlockTriple BlockType = "triple"
)

// CAGED forms
type CAGEDForm string

const (
	FormC CAGEDForm = "C"
	FormA CAGEDForm = "A"
	FormG CAGEDForm = "G"
	FormE CAGEDForm = "E"
	FormD CAGEDForm = "D"
)

// Modes
type Mode string

const (
	ModeIonian     Mode = "ionian"
	ModeDorian     Mode = "dorian"
	ModePhrygian   Mode = "phrygian"
	ModeLydian     Mode = "lydian"
	ModeMixolydian Mode = "mixolydian"
	ModeAeolian    Mode = "aeolian"
	ModeLocrian    Mode = "locrian"
)

// Job status
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// Entitlement tiers. Free users get the pattern generators; blocks, CAGED
// shapes and board jobs are part of the gated lesson content.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

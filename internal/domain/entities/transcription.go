package entities

import (
	"time"

	"github.com/google/uuid"
)

// ChunkSource identifies where a transcript chunk was captured
type ChunkSource string

const (
	ChunkSourceMic       ChunkSource = "mic"
	ChunkSourceCaption   ChunkSource = "caption"
	ChunkSourceSimulator ChunkSource = "simulator"
)

// DefaultChunkConfidence is assumed when a chunk carries no confidence value.
const DefaultChunkConfidence = 0.9

// TranscriptChunk is one unit of raw captured speech or caption text.
// Owned exclusively by its session; never mutated after creation.
type TranscriptChunk struct {
	ID         uuid.UUID   `json:"id"`
	Speaker    string      `json:"speaker"`
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	Source     ChunkSource `json:"source"`
	Timestamp  time.Time   `json:"timestamp"`
}

// TranscriptionSession buffers transcript chunks for one meeting.
// At most one session is active per meeting at a time.
type TranscriptionSession struct {
	ID        uuid.UUID         `json:"id"`
	Language  string            `json:"language"`
	Provider  string            `json:"provider"`
	StartedAt time.Time         `json:"started_at"`
	StoppedAt *time.Time        `json:"stopped_at,omitempty"`
	IsActive  bool              `json:"is_active"`
	Chunks    []TranscriptChunk `json:"chunks"`
}

// NewTranscriptionSession starts a session with defaulted language/provider.
func NewTranscriptionSession(language, provider string) *TranscriptionSession {
	if language == "" {
		language = "en-US"
	}
	if provider == "" {
		provider = "mock-realtime"
	}
	return &TranscriptionSession{
		ID:        uuid.New(),
		Language:  language,
		Provider:  provider,
		StartedAt: time.Now().UTC(),
		IsActive:  true,
		Chunks:    []TranscriptChunk{},
	}
}

// Stop marks the session inactive. Stopping twice is a no-op.
func (s *TranscriptionSession) Stop() {
	if !s.IsActive {
		return
	}
	now := time.Now().UTC()
	s.IsActive = false
	s.StoppedAt = &now
}

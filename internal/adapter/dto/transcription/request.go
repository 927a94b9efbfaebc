package transcription

// StartRequest represents opening a transcription session
type StartRequest struct {
	Language string `json:"language,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// ChunkRequest represents one live transcript chunk
type ChunkRequest struct {
	Text       string   `json:"text" validate:"required"`
	Speaker    string   `json:"speaker,omitempty"`
	Confidence *float64 `json:"confidence,omitempty" validate:"omitempty,min=0,max=1"`
	Source     string   `json:"source,omitempty" validate:"omitempty,oneof=mic caption simulator"`
}

// SimulateRequest represents launching a scripted chunk feed
type SimulateRequest struct {
	Preset     string `json:"preset,omitempty" validate:"omitempty,oneof=daily-standup planning"`
	IntervalMs int    `json:"intervalMs,omitempty" validate:"omitempty,min=50"`
}

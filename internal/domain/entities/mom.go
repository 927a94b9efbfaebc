package entities

import (
	"time"

	"github.com/google/uuid"
)

// MomVersionLimit caps the per-meeting version history.
const MomVersionLimit = 50

// MomVersion is one stored rendering of the MoM document.
type MomVersion struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Reason    string    `json:"reason"`
	Text      string    `json:"text"`
}

// NewMomVersion snapshots a rendered MoM text.
func NewMomVersion(text, reason string) MomVersion {
	if reason == "" {
		reason = "update"
	}
	return MomVersion{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Reason:    reason,
		Text:      text,
	}
}

// MomDiff is a set-membership line diff between two MoM renderings.
// Reordered but unchanged lines are not reported.
type MomDiff struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

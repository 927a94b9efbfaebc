package entities

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogLimit caps the retained audit history.
const AuditLogLimit = 5000

// AuditEvent records one actor action for the admin trail.
type AuditEvent struct {
	ID        uuid.UUID         `json:"id"`
	Actor     string            `json:"actor"`
	Action    string            `json:"action"`
	MeetingID *uuid.UUID        `json:"meeting_id,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewAuditEvent creates an audit event, defaulting the actor to "system".
func NewAuditEvent(actor, action string, meetingID *uuid.UUID, details map[string]string) AuditEvent {
	if actor == "" {
		actor = "system"
	}
	return AuditEvent{
		ID:        uuid.New(),
		Actor:     actor,
		Action:    action,
		MeetingID: meetingID,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

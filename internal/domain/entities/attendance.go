package entities

import "time"

// PresenceAction is a join or leave event
type PresenceAction string

const (
	PresenceJoin  PresenceAction = "join"
	PresenceLeave PresenceAction = "leave"
)

// PresenceEvent is one raw join/leave observation for a meeting.
type PresenceEvent struct {
	Name      string         `json:"name"`
	Email     string         `json:"email,omitempty"`
	Action    PresenceAction `json:"action"`
	Source    string         `json:"source"`
	Timestamp time.Time      `json:"timestamp"`
}

// Attendee aggregates presence events for one participant.
type Attendee struct {
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	FirstJoinAt *time.Time `json:"first_join_at,omitempty"`
	LastLeaveAt *time.Time `json:"last_leave_at,omitempty"`
	Joins       int        `json:"joins"`
	Leaves      int        `json:"leaves"`
	Discovered  bool       `json:"discovered"`
}

// AttendanceSummary is the consumable attendance view of a meeting.
type AttendanceSummary struct {
	ParticipantCount           int        `json:"participant_count"`
	DiscoveredParticipantCount int        `json:"discovered_participant_count"`
	DiscoveredParticipants     []string   `json:"discovered_participants"`
	Participants               []Attendee `json:"participants"`
}

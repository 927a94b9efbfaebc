package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NoteSource identifies how a note entered the meeting log
type NoteSource string

const (
	NoteSourceManual            NoteSource = "manual"
	NoteSourceTranscriptionAuto NoteSource = "transcription_auto"
	NoteSourceHook              NoteSource = "hook"
	NoteSourceSimulator         NoteSource = "simulator"
)

// MeetingSource identifies how a meeting was created
type MeetingSource string

const (
	MeetingSourceManual   MeetingSource = "manual"
	MeetingSourceCalendar MeetingSource = "calendar"
)

// DefaultSpeaker is used whenever a note or chunk has no attributed speaker.
const DefaultSpeaker = "Participant"

// Note is a single attributed text observation in the meeting's log.
// Immutable once appended.
type Note struct {
	ID        uuid.UUID  `json:"id"`
	Text      string     `json:"text"`
	Speaker   string     `json:"speaker"`
	Source    NoteSource `json:"source,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// MomShare is a stable public share handle for a rendered MoM.
type MomShare struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Meeting is the aggregate holding the note log, transcription session,
// derived insights, and MoM version history for one meeting.
type Meeting struct {
	ID                  uuid.UUID             `json:"id"`
	Title               string                `json:"title"`
	Attendees           []string              `json:"attendees"`
	Platform            string                `json:"platform"`
	MeetingLink         string                `json:"meeting_link"`
	Source              MeetingSource         `json:"source"`
	StartedAt           time.Time             `json:"started_at"`
	EndedAt             *time.Time            `json:"ended_at,omitempty"`
	IsActive            bool                  `json:"is_active"`
	Notes               []Note                `json:"notes"`
	Insights            *Insights             `json:"insights,omitempty"`
	Mom                 string                `json:"mom,omitempty"`
	MomShare            *MomShare             `json:"mom_share,omitempty"`
	MomVersions         []MomVersion          `json:"mom_versions,omitempty"`
	PresenceEvents      []PresenceEvent       `json:"presence_events"`
	AttendanceMap       map[string]*Attendee  `json:"attendance_map"`
	DiscoveredAttendees []string              `json:"discovered_attendees"`
	Transcription       *TranscriptionSession `json:"transcription,omitempty"`
}

// NewMeeting creates a meeting with a normalized attendee list.
func NewMeeting(title string, attendees []string, meetingLink, platform string, source MeetingSource) *Meeting {
	return &Meeting{
		ID:                  uuid.New(),
		Title:               title,
		Attendees:           NormalizeAttendees(attendees),
		Platform:            platform,
		MeetingLink:         meetingLink,
		Source:              source,
		StartedAt:           time.Now().UTC(),
		IsActive:            true,
		Notes:               []Note{},
		PresenceEvents:      []PresenceEvent{},
		AttendanceMap:       map[string]*Attendee{},
		DiscoveredAttendees: []string{},
	}
}

// NormalizeAttendees lowercases and trims attendee emails, dropping empties.
func NormalizeAttendees(attendees []string) []string {
	out := make([]string, 0, len(attendees))
	for _, a := range attendees {
		v := strings.ToLower(strings.TrimSpace(a))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// HasAttendee reports whether the email is on the invited attendee list.
func (m *Meeting) HasAttendee(email string) bool {
	for _, a := range m.Attendees {
		if a == email {
			return true
		}
	}
	return false
}

// AppendNote appends an immutable note to the log and returns it.
func (m *Meeting) AppendNote(text, speaker string, source NoteSource) Note {
	if speaker == "" {
		speaker = DefaultSpeaker
	}
	note := Note{
		ID:        uuid.New(),
		Text:      text,
		Speaker:   speaker,
		Source:    source,
		Timestamp: time.Now().UTC(),
	}
	m.Notes = append(m.Notes, note)
	return note
}

// End marks the meeting as ended.
func (m *Meeting) End() {
	now := time.Now().UTC()
	m.IsActive = false
	m.EndedAt = &now
}

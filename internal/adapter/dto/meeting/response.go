package meeting

import (
	"time"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// TranscriptionSummary is the lightweight session view embedded in meeting
// responses (chunk bodies omitted).
type TranscriptionSummary struct {
	ID         string     `json:"id"`
	Provider   string     `json:"provider"`
	Language   string     `json:"language"`
	StartedAt  time.Time  `json:"startedAt"`
	StoppedAt  *time.Time `json:"stoppedAt,omitempty"`
	IsActive   bool       `json:"isActive"`
	ChunkCount int        `json:"chunkCount"`
}

// MeetingResponse is the full meeting view returned by the API.
type MeetingResponse struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Attendees     []string              `json:"attendees"`
	Platform      string                `json:"platform"`
	MeetingLink   string                `json:"meetingLink,omitempty"`
	Source        string                `json:"source"`
	StartedAt     time.Time             `json:"startedAt"`
	EndedAt       *time.Time            `json:"endedAt,omitempty"`
	IsActive      bool                  `json:"isActive"`
	Notes         []entities.Note       `json:"notes"`
	Insights      *entities.Insights    `json:"insights,omitempty"`
	Mom           string                `json:"mom,omitempty"`
	MomShare      *entities.MomShare    `json:"momShare,omitempty"`
	VersionCount  int                   `json:"versionCount"`
	Transcription *TranscriptionSummary `json:"transcription,omitempty"`
}

// NewMeetingResponse maps a meeting aggregate into its response shape.
func NewMeetingResponse(m *entities.Meeting) *MeetingResponse {
	resp := &MeetingResponse{
		ID:           m.ID.String(),
		Title:        m.Title,
		Attendees:    m.Attendees,
		Platform:     m.Platform,
		MeetingLink:  m.MeetingLink,
		Source:       string(m.Source),
		StartedAt:    m.StartedAt,
		EndedAt:      m.EndedAt,
		IsActive:     m.IsActive,
		Notes:        m.Notes,
		Insights:     m.Insights,
		Mom:          m.Mom,
		MomShare:     m.MomShare,
		VersionCount: len(m.MomVersions),
	}
	if m.Transcription != nil {
		resp.Transcription = &TranscriptionSummary{
			ID:         m.Transcription.ID.String(),
			Provider:   m.Transcription.Provider,
			Language:   m.Transcription.Language,
			StartedAt:  m.Transcription.StartedAt,
			StoppedAt:  m.Transcription.StoppedAt,
			IsActive:   m.Transcription.IsActive,
			ChunkCount: len(m.Transcription.Chunks),
		}
	}
	return resp
}

// ShareResponse is a share handle plus its resolved public URL.
type ShareResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	URL       string    `json:"url"`
}

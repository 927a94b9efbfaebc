package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/johnquangdev/mom-ai/errors"
)

// Platform identifiers for supported meeting hosts.
const (
	PlatformGoogleMeet     = "google_meet"
	PlatformZoom           = "zoom"
	PlatformMicrosoftTeams = "microsoft_teams"
	PlatformManual         = "manual"
)

// Platform pairs a platform id with its display label.
type Platform struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Event is one upcoming calendar entry a meeting can be started from.
type Event struct {
	EventID     string    `json:"eventId"`
	Title       string    `json:"title"`
	OwnerEmail  string    `json:"ownerEmail"`
	StartsAt    time.Time `json:"startsAt"`
	Attendees   []string  `json:"attendees"`
	MeetingLink string    `json:"meetingLink"`
}

// DefaultOwnerEmail is used when a calendar query names no owner.
const DefaultOwnerEmail = "owner@example.com"

var linkByPlatform = map[string]string{
	PlatformGoogleMeet:     "https://meet.google.com/demo-phase3",
	PlatformZoom:           "https://zoom.us/j/1234567890",
	PlatformMicrosoftTeams: "https://teams.microsoft.com/l/meetup-join/demo",
	PlatformManual:         "",
}

// DetectPlatform infers the hosting platform from a meeting link.
// Unknown links fall back to manual.
func DetectPlatform(meetingLink string) string {
	link := strings.ToLower(meetingLink)
	switch {
	case strings.Contains(link, "meet.google.com"):
		return PlatformGoogleMeet
	case strings.Contains(link, "zoom.us"):
		return PlatformZoom
	case strings.Contains(link, "teams.microsoft.com"):
		return PlatformMicrosoftTeams
	default:
		return PlatformManual
	}
}

// SupportedPlatforms returns the selectable platforms in display order.
func SupportedPlatforms() []Platform {
	return []Platform{
		{ID: PlatformGoogleMeet, Label: "Google Meet"},
		{ID: PlatformZoom, Label: "Zoom"},
		{ID: PlatformMicrosoftTeams, Label: "Microsoft Teams"},
		{ID: PlatformManual, Label: "Manual"},
	}
}

// IsSupported reports whether the platform id is selectable.
func IsSupported(platform string) bool {
	_, ok := linkByPlatform[platform]
	return ok
}

// MockProvider serves canned upcoming events per platform. Stands in for
// real Google/Zoom/Teams calendar integrations.
type MockProvider struct{}

// NewMockProvider creates a mock calendar provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// ListEvents returns two upcoming demo events for the platform.
func (p *MockProvider) ListEvents(platform, ownerEmail string) ([]Event, error) {
	if !IsSupported(platform) {
		return nil, apperrors.ErrUnsupportedPlatform(platform)
	}
	if ownerEmail == "" {
		ownerEmail = DefaultOwnerEmail
	}

	now := time.Now().UTC()
	link := linkByPlatform[platform]

	return []Event{
		{
			EventID:     fmt.Sprintf("%s-%s", platform, uuid.NewString()),
			Title:       "Weekly Product Sync",
			OwnerEmail:  ownerEmail,
			StartsAt:    now.Add(5 * time.Minute),
			Attendees:   []string{"pm@example.com", "eng@example.com", "qa@example.com"},
			MeetingLink: link,
		},
		{
			EventID:     fmt.Sprintf("%s-%s", platform, uuid.NewString()),
			Title:       "Customer Review",
			OwnerEmail:  ownerEmail,
			StartsAt:    now.Add(45 * time.Minute),
			Attendees:   []string{"sales@example.com", "support@example.com"},
			MeetingLink: link,
		},
	}, nil
}

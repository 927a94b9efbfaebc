package meeting

// StartMeetingRequest represents the manual meeting creation request
type StartMeetingRequest struct {
	Title       string   `json:"title" validate:"required"`
	Attendees   []string `json:"attendees" validate:"required,min=1,dive,email"`
	MeetingLink string   `json:"meetingLink,omitempty"`
	Platform    string   `json:"platform,omitempty"`
}

// StartFromEventRequest represents starting a meeting from a calendar event
type StartFromEventRequest struct {
	Platform   string `json:"platform" validate:"required"`
	EventID    string `json:"eventId" validate:"required"`
	OwnerEmail string `json:"ownerEmail,omitempty" validate:"omitempty,email"`
}

// AddNoteRequest represents a manual note capture
type AddNoteRequest struct {
	Text    string `json:"text" validate:"required"`
	Speaker string `json:"speaker,omitempty"`
}

// PresenceRequest represents one join/leave observation
type PresenceRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Action string `json:"action,omitempty" validate:"omitempty,oneof=join leave"`
	Source string `json:"source,omitempty"`
}

// SendMomRequest represents queueing the MoM for email delivery
type SendMomRequest struct {
	FromEmail string `json:"fromEmail" validate:"required,email"`
}

// QueueRemindersRequest represents queueing action item reminder emails
type QueueRemindersRequest struct {
	FromEmail string `json:"fromEmail" validate:"required,email"`
	DaysAhead int    `json:"daysAhead,omitempty" validate:"omitempty,min=0"`
}

// DiffVersionsRequest represents comparing two stored MoM versions
type DiffVersionsRequest struct {
	VersionA string `json:"versionA" validate:"required,uuid"`
	VersionB string `json:"versionB" validate:"required,uuid"`
}

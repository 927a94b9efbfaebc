package hook

// Participant is one presence observation in a hook payload
type Participant struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Action string `json:"action,omitempty"`
	Source string `json:"source,omitempty"`
}

// Caption is one caption line in a hook payload
type Caption struct {
	Speaker string `json:"speaker,omitempty"`
	Text    string `json:"text,omitempty"`
}

// MeetingContextRequest is the browser extension's context push
type MeetingContextRequest struct {
	MeetingID    string        `json:"meetingId" validate:"required,uuid"`
	Participants []Participant `json:"participants,omitempty"`
	Note         string        `json:"note,omitempty"`
	Notes        []string      `json:"notes,omitempty"`
	Captions     []Caption     `json:"captions,omitempty"`
}

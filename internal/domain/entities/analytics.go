package entities

// Analytics holds process-lifetime usage counters.
type Analytics struct {
	MeetingCreated   int `json:"meetingCreated"`
	MeetingEnded     int `json:"meetingEnded"`
	NotesCreated     int `json:"notesCreated"`
	TranscriptChunks int `json:"transcriptChunks"`
	MomsQueued       int `json:"momsQueued"`
	MomsSent         int `json:"momsSent"`
	AuthLogins       int `json:"authLogins"`
}

package entities

// ActionItemStatus constants. The core only ever creates items as open;
// collaborators may transition them later.
const (
	ActionItemStatusOpen = "open"
	ActionItemStatusDone = "done"
)

// ActionItem is a task extracted from the note log.
type ActionItem struct {
	Owner  string `json:"owner"`
	Item   string `json:"item"`
	Due    string `json:"due,omitempty"`
	Status string `json:"status"`
}

// SpeakerStat counts one participant's contribution to the note log.
type SpeakerStat struct {
	Speaker string `json:"speaker"`
	Notes   int    `json:"notes"`
	Words   int    `json:"words"`
}

// Insights is the deduplicated extraction over a note log snapshot.
// All lists are capped and deduplicated by exact string equality.
type Insights struct {
	Summary      []string      `json:"summary"`
	Agenda       []string      `json:"agenda"`
	Decisions    []string      `json:"decisions"`
	ActionItems  []ActionItem  `json:"action_items"`
	SpeakerStats []SpeakerStat `json:"speaker_stats"`
}

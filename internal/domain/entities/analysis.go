package entities

// MoodLabel is the overall sentiment classification of a meeting
type MoodLabel string

const (
	MoodPositive  MoodLabel = "Positive"
	MoodNeutral   MoodLabel = "Neutral"
	MoodConcerned MoodLabel = "Concerned"
)

// MoodAssessment is the lexicon-based sentiment result over the note log.
type MoodAssessment struct {
	Label      MoodLabel `json:"label"`
	Confidence float64   `json:"confidence"`
	Rationale  string    `json:"rationale"`
}

// RiskSeverity buckets the weighted risk score
type RiskSeverity string

const (
	RiskSeverityLow    RiskSeverity = "low"
	RiskSeverityMedium RiskSeverity = "medium"
	RiskSeverityHigh   RiskSeverity = "high"
)

// RiskHit records one risk-term match inside a note.
type RiskHit struct {
	Term    string `json:"term"`
	Weight  int    `json:"weight"`
	Note    string `json:"note"`
	Speaker string `json:"speaker"`
}

// RiskRadar is the weighted keyword score flagging escalation language.
type RiskRadar struct {
	Score    int          `json:"score"`
	Severity RiskSeverity `json:"severity"`
	Hits     []RiskHit    `json:"hits"`
}

// ConflictSeverity buckets the conflict count
type ConflictSeverity string

const (
	ConflictSeverityNone   ConflictSeverity = "none"
	ConflictSeverityLow    ConflictSeverity = "low"
	ConflictSeverityMedium ConflictSeverity = "medium"
	ConflictSeverityHigh   ConflictSeverity = "high"
)

// Stance is a polarity-tagged assertion attributed to a speaker.
// Polarity is +1 (accept) or -1 (reject); zero-polarity notes are excluded.
type Stance struct {
	Polarity int    `json:"polarity"`
	Speaker  string `json:"speaker"`
	Text     string `json:"text"`
}

// Conflict is a topic keyword with stances on both sides.
type Conflict struct {
	Topic    string   `json:"topic"`
	Positive []Stance `json:"positive"`
	Negative []Stance `json:"negative"`
}

// ConflictMap is the set of topics where participants hold opposing stances.
type ConflictMap struct {
	Severity      ConflictSeverity `json:"severity"`
	ConflictCount int              `json:"conflict_count"`
	Confidence    float64          `json:"confidence"`
	Conflicts     []Conflict       `json:"conflicts"`
}

// ScoreBand labels the composite meeting health score
type ScoreBand string

const (
	ScoreBandNeedsWork       ScoreBand = "Needs Work"
	ScoreBandHealthy         ScoreBand = "Healthy"
	ScoreBandHighPerformance ScoreBand = "High Performance"
)

// ScoreFactors are the individual 0-100 components of the meeting score.
type ScoreFactors struct {
	Engagement    float64 `json:"engagement"`
	Actionability float64 `json:"actionability"`
	Decisiveness  float64 `json:"decisiveness"`
	Coverage      float64 `json:"coverage"`
}

// MeetingScore is the composite 0-100 health metric.
type MeetingScore struct {
	Score   float64      `json:"score"`
	Band    ScoreBand    `json:"band"`
	Factors ScoreFactors `json:"factors"`
}

// FollowupDraft is a per-attendee follow-up email draft.
type FollowupDraft struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// KeywordCount is one entry of the frequency-ranked keyword list.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

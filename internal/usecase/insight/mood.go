package insight

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// Sentiment lexicons. A note may contribute to several lexicons at once;
// each term counts once per note it appears in.
var (
	positiveTerms = []string{
		"great", "good", "thanks", "approved", "resolved", "done", "clear", "aligned", "progress", "win", "happy",
	}
	negativeTerms = []string{
		"blocked", "delay", "risk", "issue", "problem", "conflict", "urgent", "escalate", "fail", "stuck", "concern",
	}
	neutralTerms = []string{
		"agenda", "update", "review", "discuss", "note", "sync", "plan", "timeline", "status",
	}
)

// AnalyzeMood classifies the overall meeting sentiment from the note log.
// Zero lexicon hits yields the Neutral fallback at 0.5 confidence; ties
// default to Neutral.
func AnalyzeMood(notes []entities.Note) entities.MoodAssessment {
	var positiveScore, negativeScore, neutralScore int

	for _, note := range notes {
		text := strings.ToLower(Normalize(note.Text))
		if text == "" {
			continue
		}
		for _, term := range positiveTerms {
			if strings.Contains(text, term) {
				positiveScore++
			}
		}
		for _, term := range negativeTerms {
			if strings.Contains(text, term) {
				negativeScore++
			}
		}
		for _, term := range neutralTerms {
			if strings.Contains(text, term) {
				neutralScore++
			}
		}
	}

	totalSignals := positiveScore + negativeScore + neutralScore
	if totalSignals == 0 {
		return entities.MoodAssessment{
			Label:      entities.MoodNeutral,
			Confidence: 0.5,
			Rationale:  "Not enough sentiment cues in notes.",
		}
	}

	label := entities.MoodNeutral
	dominant := neutralScore
	if positiveScore > dominant {
		label = entities.MoodPositive
		dominant = positiveScore
	}
	if negativeScore > dominant {
		label = entities.MoodConcerned
		dominant = negativeScore
	}

	return entities.MoodAssessment{
		Label:      label,
		Confidence: round2(float64(dominant) / float64(totalSignals)),
		Rationale:  fmt.Sprintf("Signals -> positive:%d, neutral:%d, negative:%d", positiveScore, neutralScore, negativeScore),
	}
}

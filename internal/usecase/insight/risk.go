package insight

import (
	"strings"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

const riskHitLimit = 25

type riskTerm struct {
	term   string
	weight int
}

// riskTerms is the fixed weighted keyword table. Weights are calibration
// constants, not to be tuned.
var riskTerms = []riskTerm{
	{"blocked", 3},
	{"delay", 3},
	{"risk", 2},
	{"urgent", 2},
	{"issue", 2},
	{"escalate", 3},
	{"problem", 2},
	{"stuck", 2},
	{"fail", 3},
}

// BuildRiskRadar scores risk language across the note log. Every matching
// term in a note contributes independently; hits are kept in encounter
// order and capped, while the score keeps accumulating past the cap.
func BuildRiskRadar(notes []entities.Note) entities.RiskRadar {
	hits := make([]entities.RiskHit, 0)
	score := 0

	for _, note := range notes {
		normalized := Normalize(note.Text)
		text := strings.ToLower(normalized)
		if text == "" {
			continue
		}
		speaker := note.Speaker
		if speaker == "" {
			speaker = entities.DefaultSpeaker
		}

		for _, token := range riskTerms {
			if strings.Contains(text, token.term) {
				score += token.weight
				hits = append(hits, entities.RiskHit{
					Term:    token.term,
					Weight:  token.weight,
					Note:    normalized,
					Speaker: speaker,
				})
			}
		}
	}

	severity := entities.RiskSeverityLow
	if score >= 10 {
		severity = entities.RiskSeverityHigh
	} else if score >= 5 {
		severity = entities.RiskSeverityMedium
	}

	if len(hits) > riskHitLimit {
		hits = hits[:riskHitLimit]
	}

	return entities.RiskRadar{
		Score:    score,
		Severity: severity,
		Hits:     hits,
	}
}

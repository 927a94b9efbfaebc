package insight

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

const (
	conflictLimit        = 12
	stanceExampleLimit   = 3
	conflictKeywordLimit = 10
	conflictKeywordMin   = 5
)

var nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9\s]`)

// Accept/reject verb lexicons used for stance polarity.
var (
	acceptVerbs = []string{"approve", "agreed", "go with", "enable", "increase", "adopt", "accept", "proceed"}
	rejectVerbs = []string{"reject", "decline", "drop", "disable", "decrease", "avoid", "rollback", "block"}
)

// detectPolarity nets accept mentions against reject mentions: more accepts
// is +1, more rejects is -1, equal counts cancel to 0.
func detectPolarity(text string) int {
	t := strings.ToLower(Normalize(text))
	p, n := 0, 0
	for _, token := range acceptVerbs {
		if strings.Contains(t, token) {
			p++
		}
	}
	for _, token := range rejectVerbs {
		if strings.Contains(t, token) {
			n++
		}
	}
	if p == n {
		return 0
	}
	if p > n {
		return 1
	}
	return -1
}

// conflictKeywords extracts up to 10 candidate topic tokens of length >= 5.
func conflictKeywords(text string) []string {
	cleaned := nonAlphanumericRe.ReplaceAllString(strings.ToLower(Normalize(text)), " ")
	words := strings.Fields(cleaned)
	keywords := make([]string, 0, conflictKeywordLimit)
	for _, w := range words {
		if len(w) < conflictKeywordMin {
			continue
		}
		keywords = append(keywords, w)
		if len(keywords) >= conflictKeywordLimit {
			break
		}
	}
	return keywords
}

// BuildConflictMap groups polarized stances by topic keyword and reports
// keywords argued from both sides. Keyword order follows first encounter.
func BuildConflictMap(notes []entities.Note) entities.ConflictMap {
	stancesByKeyword := make(map[string][]entities.Stance)
	keywordOrder := make([]string, 0)

	for _, note := range notes {
		text := Normalize(note.Text)
		if text == "" {
			continue
		}
		polarity := detectPolarity(text)
		if polarity == 0 {
			continue
		}
		speaker := note.Speaker
		if speaker == "" {
			speaker = entities.DefaultSpeaker
		}

		for _, keyword := range conflictKeywords(text) {
			if _, ok := stancesByKeyword[keyword]; !ok {
				keywordOrder = append(keywordOrder, keyword)
			}
			stancesByKeyword[keyword] = append(stancesByKeyword[keyword], entities.Stance{
				Polarity: polarity,
				Speaker:  speaker,
				Text:     text,
			})
		}
	}

	conflicts := make([]entities.Conflict, 0)
	for _, keyword := range keywordOrder {
		entries := stancesByKeyword[keyword]
		var positive, negative []entities.Stance
		for _, e := range entries {
			if e.Polarity == 1 && len(positive) < stanceExampleLimit {
				positive = append(positive, e)
			}
			if e.Polarity == -1 && len(negative) < stanceExampleLimit {
				negative = append(negative, e)
			}
		}
		if len(positive) == 0 || len(negative) == 0 {
			continue
		}
		conflicts = append(conflicts, entities.Conflict{
			Topic:    keyword,
			Positive: positive,
			Negative: negative,
		})
	}

	count := len(conflicts)
	severity := entities.ConflictSeverityNone
	switch {
	case count >= 4:
		severity = entities.ConflictSeverityHigh
	case count >= 2:
		severity = entities.ConflictSeverityMedium
	case count >= 1:
		severity = entities.ConflictSeverityLow
	}

	confidence := 0.35 + 0.12*float64(count)
	if confidence > 0.95 {
		confidence = 0.95
	}

	if len(conflicts) > conflictLimit {
		conflicts = conflicts[:conflictLimit]
	}

	return entities.ConflictMap{
		Severity:      severity,
		ConflictCount: count,
		Confidence:    round2(confidence),
		Conflicts:     conflicts,
	}
}

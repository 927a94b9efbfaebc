package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

const (
	nextAgendaLimit     = 10
	agendaDecisionLimit = 4
	agendaKeywordLimit  = 6
	keywordMinLength    = 3
)

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "to", "of", "for", "in", "on", "at", "is", "are", "was", "were", "be", "been",
		"with", "by", "as", "it", "that", "this", "we", "you", "i", "they", "he", "she", "them", "our", "your", "from",
		"will", "would", "should", "could", "can", "do", "did", "does", "done", "not", "but", "if", "then", "so",
	} {
		stopwords[w] = struct{}{}
	}
}

// TopKeywords ranks non-stopword tokens of length >= 3 by frequency across
// the note log. Ties keep first-encounter order.
func TopKeywords(notes []entities.Note, limit int) []entities.KeywordCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, note := range notes {
		cleaned := nonAlphanumericRe.ReplaceAllString(strings.ToLower(note.Text), " ")
		for _, word := range strings.Fields(cleaned) {
			if len(word) < keywordMinLength {
				continue
			}
			if _, stop := stopwords[word]; stop {
				continue
			}
			if _, ok := counts[word]; !ok {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	ranked := make([]entities.KeywordCount, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, entities.KeywordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// BuildNextAgenda synthesizes a follow-up agenda. Candidate pools are
// appended in priority order (open action items, then up to 4 decisions,
// then frequent keywords), skipping exact duplicates, up to 10 lines.
func BuildNextAgenda(meeting *entities.Meeting, insights entities.Insights) []string {
	unresolved := make([]string, 0, len(insights.ActionItems))
	for _, item := range insights.ActionItems {
		if item.Status == entities.ActionItemStatusDone {
			continue
		}
		unresolved = append(unresolved, fmt.Sprintf("Action Follow-up: %s (Owner: %s)", item.Item, item.Owner))
	}

	decisions := make([]string, 0, agendaDecisionLimit)
	for _, d := range insights.Decisions {
		if len(decisions) >= agendaDecisionLimit {
			break
		}
		decisions = append(decisions, fmt.Sprintf("Revisit decision impact: %s", d))
	}

	keywords := make([]string, 0, agendaKeywordLimit)
	for _, k := range TopKeywords(meeting.Notes, agendaKeywordLimit) {
		keywords = append(keywords, fmt.Sprintf("Discuss %q continuity", k.Word))
	}

	agenda := make([]string, 0, nextAgendaLimit)
	seen := make(map[string]struct{})
	pushMany := func(items []string) {
		for _, item := range items {
			if len(agenda) >= nextAgendaLimit {
				return
			}
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			agenda = append(agenda, item)
		}
	}

	pushMany(unresolved)
	pushMany(decisions)
	pushMany(keywords)

	if len(agenda) == 0 {
		agenda = append(agenda, "Review key outcomes from previous meeting and define next action owners.")
	}

	return agenda
}

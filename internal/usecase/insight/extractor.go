package insight

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// Caps for the extracted lists. Excess is dropped silently.
const (
	summaryLimit  = 6
	agendaLimit   = 6
	decisionLimit = 8
	actionLimit   = 12
)

var (
	agendaLabelRe   = regexp.MustCompile(`(?i)^agenda[:\s-]`)
	agendaStripRe   = regexp.MustCompile(`(?i)^agenda[:\s-]*`)
	decisionCueRe   = regexp.MustCompile(`(?i)(we (decided|agree)|decision|approved|finalized|go with)`)
	actionLabelRe   = regexp.MustCompile(`(?i)^(action|todo)[:\s-]`)
	obligationCueRe = regexp.MustCompile(`(?i)(follow up|will|needs to|should)`)
)

// Extract performs a single linear pass over the note log and produces the
// deduplicated insight record. It is a pure function of the snapshot:
// recomputing over the same notes yields the same result.
func Extract(notes []entities.Note) entities.Insights {
	var (
		summary   []string
		agenda    []string
		decisions []string
	)
	actionItems := make([]entities.ActionItem, 0)
	statsBySpeaker := make(map[string]*entities.SpeakerStat)
	speakerOrder := make([]string, 0)

	for _, note := range notes {
		speaker := note.Speaker
		if speaker == "" {
			speaker = entities.DefaultSpeaker
		}
		text := Normalize(note.Text)
		if text == "" {
			continue
		}

		stat, ok := statsBySpeaker[speaker]
		if !ok {
			stat = &entities.SpeakerStat{Speaker: speaker}
			statsBySpeaker[speaker] = stat
			speakerOrder = append(speakerOrder, speaker)
		}
		stat.Notes++
		stat.Words += len(strings.Fields(text))

		if len(summary) < 5 {
			summary = append(summary, fmt.Sprintf("%s: %s", speaker, text))
		}

		if agendaLabelRe.MatchString(text) {
			agenda = append(agenda, agendaStripRe.ReplaceAllString(text, ""))
		}

		if decisionCueRe.MatchString(text) {
			decisions = append(decisions, fmt.Sprintf("%s: %s", speaker, text))
		}

		if actionLabelRe.MatchString(text) || obligationCueRe.MatchString(text) {
			actionItems = append(actionItems, ParseActionItem(text, speaker))
		}
	}

	speakerStats := make([]entities.SpeakerStat, 0, len(speakerOrder))
	for _, speaker := range speakerOrder {
		speakerStats = append(speakerStats, *statsBySpeaker[speaker])
	}
	sort.SliceStable(speakerStats, func(i, j int) bool {
		return speakerStats[i].Notes > speakerStats[j].Notes
	})

	if len(actionItems) > actionLimit {
		actionItems = actionItems[:actionLimit]
	}

	return entities.Insights{
		Summary:      dedupeStrings(summary, summaryLimit),
		Agenda:       dedupeStrings(agenda, agendaLimit),
		Decisions:    dedupeStrings(decisions, decisionLimit),
		ActionItems:  actionItems,
		SpeakerStats: speakerStats,
	}
}

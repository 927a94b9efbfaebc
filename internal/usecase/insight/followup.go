package insight

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// BuildFollowupDrafts renders one follow-up email draft per invited
// attendee, summarizing top decisions and action items.
func BuildFollowupDrafts(meeting *entities.Meeting, insights entities.Insights) []entities.FollowupDraft {
	summaryLine := "Discussion summary unavailable."
	if len(insights.Summary) > 0 {
		summaryLine = insights.Summary[0]
	}

	drafts := make([]entities.FollowupDraft, 0, len(meeting.Attendees))
	for _, attendee := range meeting.Attendees {
		lines := []string{
			fmt.Sprintf("Hi %s,", strings.SplitN(attendee, "@", 2)[0]),
			"",
			fmt.Sprintf("Quick follow-up from %q.", meeting.Title),
			fmt.Sprintf("Top summary: %s", summaryLine),
			"",
			fmt.Sprintf("Decisions (%d):", len(insights.Decisions)),
		}
		for i, d := range insights.Decisions {
			if i >= 3 {
				break
			}
			lines = append(lines, fmt.Sprintf("- %s", d))
		}
		lines = append(lines, "", fmt.Sprintf("Action items (%d):", len(insights.ActionItems)))
		for i, a := range insights.ActionItems {
			if i >= 4 {
				break
			}
			line := fmt.Sprintf("- %s (Owner: %s", a.Item, a.Owner)
			if a.Due != "" {
				line += fmt.Sprintf(", Due: %s", a.Due)
			}
			lines = append(lines, line+")")
		}
		lines = append(lines,
			"",
			"Please reply with status updates before next sync.",
			"",
			"Regards,",
			"MOM AI",
		)

		drafts = append(drafts, entities.FollowupDraft{
			To:      attendee,
			Subject: fmt.Sprintf("Follow-up: %s", meeting.Title),
			Body:    strings.Join(lines, "\n"),
		})
	}

	return drafts
}

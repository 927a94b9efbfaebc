package mailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

const reminderMaxRetries = 3

// reminderFallbackLimit caps how many invited attendees receive a reminder
// when the owner has no resolvable email.
const reminderFallbackLimit = 5

// buildOwnerEmailLookup maps attendee email local parts to full addresses
// so action item owners like "john" resolve to "john@acme.com".
func buildOwnerEmailLookup(attendees []string) map[string]string {
	lookup := make(map[string]string, len(attendees))
	for _, email := range attendees {
		normalized := strings.ToLower(strings.TrimSpace(email))
		localPart := strings.SplitN(normalized, "@", 2)[0]
		if localPart != "" {
			lookup[localPart] = normalized
		}
	}
	return lookup
}

// resolveReminderRecipients returns the owner's email when it can be
// resolved, otherwise the fallback recipients.
func resolveReminderRecipients(item entities.ActionItem, ownerLookup map[string]string, fallback []string) []string {
	ownerRaw := strings.ToLower(strings.TrimSpace(item.Owner))
	if email, ok := ownerLookup[ownerRaw]; ok {
		return []string{email}
	}
	firstWord := strings.SplitN(ownerRaw, " ", 2)[0]
	if email, ok := ownerLookup[firstWord]; ok {
		return []string{email}
	}
	return fallback
}

// BuildReminderJobs creates one reminder email job per action item, due
// daysAhead days from now. Items whose recipients cannot be resolved are
// skipped.
func BuildReminderJobs(meeting *entities.Meeting, fromEmail string, daysAhead int) []*entities.EmailJob {
	if meeting.Insights == nil {
		return nil
	}
	if daysAhead < 0 {
		daysAhead = 0
	}

	ownerLookup := buildOwnerEmailLookup(meeting.Attendees)
	fallback := meeting.Attendees
	if len(fallback) > reminderFallbackLimit {
		fallback = fallback[:reminderFallbackLimit]
	}
	dueAt := time.Now().UTC().Add(time.Duration(daysAhead) * 24 * time.Hour)

	var jobs []*entities.EmailJob
	for _, item := range meeting.Insights.ActionItems {
		recipients := resolveReminderRecipients(item, ownerLookup, fallback)
		if len(recipients) == 0 {
			continue
		}

		job := entities.NewEmailJob(entities.EmailJobTypeActionReminder, entities.EmailPayload{
			MeetingID: meeting.ID,
			FromEmail: fromEmail,
			To:        recipients,
			Subject:   fmt.Sprintf("Reminder: Action Item from %s", meeting.Title),
			Text: fmt.Sprintf("Action Item: %s\nOwner: %s\nStatus: %s\nMeeting: %s",
				item.Item, item.Owner, item.Status, meeting.Title),
		}, reminderMaxRetries)
		job.NextAttemptAt = dueAt
		jobs = append(jobs, job)
	}
	return jobs
}

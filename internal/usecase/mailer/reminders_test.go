package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

func reminderMeeting(attendees []string, items []entities.ActionItem) *entities.Meeting {
	m := entities.NewMeeting("Sprint Planning", attendees, "", "manual", entities.MeetingSourceManual)
	m.Insights = &entities.Insights{ActionItems: items}
	return m
}

func TestBuildReminderJobsResolvesOwnerEmail(t *testing.T) {
	m := reminderMeeting(
		[]string{"john@acme.com", "mary@acme.com"},
		[]entities.ActionItem{
			{Owner: "John", Item: "update the roadmap", Status: entities.ActionItemStatusOpen},
		},
	)

	jobs := BuildReminderJobs(m, "noreply@acme.com", 1)

	require.Len(t, jobs, 1)
	job := jobs[0]
	assert.Equal(t, entities.EmailJobTypeActionReminder, job.Type)
	assert.Equal(t, []string{"john@acme.com"}, job.Payload.To)
	assert.Equal(t, "Reminder: Action Item from Sprint Planning", job.Payload.Subject)
	assert.Contains(t, job.Payload.Text, "Action Item: update the roadmap")
	assert.Contains(t, job.Payload.Text, "Owner: John")
	assert.True(t, job.NextAttemptAt.After(time.Now().UTC().Add(23*time.Hour)))
}

func TestBuildReminderJobsOwnerFirstWordFallback(t *testing.T) {
	m := reminderMeeting(
		[]string{"mary@acme.com"},
		[]entities.ActionItem{
			{Owner: "Mary Jones", Item: "review the contract", Status: entities.ActionItemStatusOpen},
		},
	)

	jobs := BuildReminderJobs(m, "noreply@acme.com", 0)

	require.Len(t, jobs, 1)
	assert.Equal(t, []string{"mary@acme.com"}, jobs[0].Payload.To)
}

func TestBuildReminderJobsFallsBackToAttendees(t *testing.T) {
	attendees := []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com", "f@x.com", "g@x.com"}
	m := reminderMeeting(attendees, []entities.ActionItem{
		{Owner: "Unknown Person", Item: "triage the backlog", Status: entities.ActionItemStatusOpen},
	})

	jobs := BuildReminderJobs(m, "noreply@x.com", 1)

	require.Len(t, jobs, 1)
	// Fallback fan-out is capped.
	assert.Equal(t, attendees[:5], jobs[0].Payload.To)
}

func TestBuildReminderJobsWithoutInsights(t *testing.T) {
	m := entities.NewMeeting("No Insights", []string{"a@x.com"}, "", "manual", entities.MeetingSourceManual)

	assert.Nil(t, BuildReminderJobs(m, "noreply@x.com", 1))
}

func TestBuildReminderJobsNegativeDaysClamped(t *testing.T) {
	m := reminderMeeting([]string{"john@acme.com"}, []entities.ActionItem{
		{Owner: "John", Item: "anything", Status: entities.ActionItemStatusOpen},
	})

	jobs := BuildReminderJobs(m, "noreply@acme.com", -3)

	require.Len(t, jobs, 1)
	assert.True(t, jobs[0].NextAttemptAt.Before(time.Now().UTC().Add(time.Minute)))
}

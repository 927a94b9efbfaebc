package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

func TestBuildFollowupDraftsOnePerAttendee(t *testing.T) {
	m := entities.NewMeeting("Release Sync", []string{"pm@example.com", "qa@example.com"}, "", "manual", entities.MeetingSourceManual)
	insights := entities.Insights{
		Summary:   []string{"PM: release candidate looks stable"},
		Decisions: []string{"PM: we decided to ship on Thursday"},
		ActionItems: []entities.ActionItem{
			{Owner: "QA", Item: "run the regression suite", Due: "tomorrow", Status: entities.ActionItemStatusOpen},
		},
	}

	drafts := BuildFollowupDrafts(m, insights)

	require.Len(t, drafts, 2)
	assert.Equal(t, "pm@example.com", drafts[0].To)
	assert.Equal(t, "qa@example.com", drafts[1].To)
	assert.Equal(t, "Follow-up: Release Sync", drafts[0].Subject)

	assert.Contains(t, drafts[0].Body, "Hi pm,")
	assert.Contains(t, drafts[1].Body, "Hi qa,")
	assert.Contains(t, drafts[0].Body, "Top summary: PM: release candidate looks stable")
	assert.Contains(t, drafts[0].Body, "- PM: we decided to ship on Thursday")
	assert.Contains(t, drafts[0].Body, "run the regression suite (Owner: QA, Due: tomorrow)")
}

func TestBuildFollowupDraftsWithoutInsights(t *testing.T) {
	m := entities.NewMeeting("Quiet Meeting", []string{"pm@example.com"}, "", "manual", entities.MeetingSourceManual)

	drafts := BuildFollowupDrafts(m, entities.Insights{})

	require.Len(t, drafts, 1)
	assert.Contains(t, drafts[0].Body, "Discussion summary unavailable.")
	assert.Contains(t, drafts[0].Body, "Decisions (0):")
	assert.Contains(t, drafts[0].Body, "Action items (0):")
}

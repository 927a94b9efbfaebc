package insight

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

func note(speaker, text string) entities.Note {
	return entities.Note{
		ID:        uuid.New(),
		Text:      text,
		Speaker:   speaker,
		Source:    entities.NoteSourceManual,
		Timestamp: time.Now().UTC(),
	}
}

func TestExtractClassifiesNotes(t *testing.T) {
	notes := []entities.Note{
		note("PM", "Agenda: status updates and blockers"),
		note("Dev1", "I completed the API endpoint for notifications"),
		note("Dev2", "We decided to keep the existing auth middleware"),
		note("PM", "Action: John will fix the login bug by friday"),
	}

	insights := Extract(notes)

	require.Len(t, insights.Agenda, 1)
	assert.Equal(t, "status updates and blockers", insights.Agenda[0])

	require.Len(t, insights.Decisions, 1)
	assert.Equal(t, "Dev2: We decided to keep the existing auth middleware", insights.Decisions[0])

	require.Len(t, insights.ActionItems, 1)
	item := insights.ActionItems[0]
	assert.Equal(t, "John", item.Owner)
	assert.Equal(t, "John will fix the login bug by friday", item.Item)
	assert.Equal(t, "friday", item.Due)
	assert.Equal(t, entities.ActionItemStatusOpen, item.Status)
}

func TestExtractDecisionCap(t *testing.T) {
	notes := make([]entities.Note, 0, 40)
	for i := 0; i < 40; i++ {
		notes = append(notes, note("Lead", fmt.Sprintf("We decided to ship feature %d", i)))
	}

	insights := Extract(notes)

	require.Len(t, insights.Decisions, 8)
	// First-seen order survives the cap.
	assert.Equal(t, "Lead: We decided to ship feature 0", insights.Decisions[0])
	assert.Equal(t, "Lead: We decided to ship feature 7", insights.Decisions[7])
}

func TestExtractDeduplicatesRepeatedNotes(t *testing.T) {
	notes := []entities.Note{
		note("PM", "Agenda: sprint review"),
		note("PM", "Agenda: sprint review"),
		note("PM", "We decided to postpone the release"),
		note("PM", "We decided to postpone the release"),
	}

	insights := Extract(notes)

	assert.Len(t, insights.Agenda, 1)
	assert.Len(t, insights.Decisions, 1)
}

func TestExtractSpeakerStats(t *testing.T) {
	notes := []entities.Note{
		note("Dev1", "first update here"),
		note("Dev1", "second update"),
		note("PM", "one note only"),
		note("", "unattributed remark"),
	}

	insights := Extract(notes)

	require.Len(t, insights.SpeakerStats, 3)
	assert.Equal(t, "Dev1", insights.SpeakerStats[0].Speaker)
	assert.Equal(t, 2, insights.SpeakerStats[0].Notes)
	assert.Equal(t, 5, insights.SpeakerStats[0].Words)

	speakers := make([]string, 0, len(insights.SpeakerStats))
	for _, s := range insights.SpeakerStats {
		speakers = append(speakers, s.Speaker)
	}
	assert.Contains(t, speakers, entities.DefaultSpeaker)
}

func TestExtractIgnoresWhitespaceOnlyNotes(t *testing.T) {
	insights := Extract([]entities.Note{
		note("PM", "   \t  "),
		note("PM", "real content"),
	})

	require.Len(t, insights.SpeakerStats, 1)
	assert.Equal(t, 1, insights.SpeakerStats[0].Notes)
}

func TestExtractIsDeterministic(t *testing.T) {
	notes := []entities.Note{
		note("PM", "Agenda: roadmap review"),
		note("Dev1", "Action: update the migration script by tomorrow"),
		note("Lead", "We decided to go with option B"),
	}

	first := Extract(notes)
	second := Extract(notes)
	assert.Equal(t, first, second)
}

func TestExtractEmptyLog(t *testing.T) {
	insights := Extract(nil)

	assert.Empty(t, insights.Summary)
	assert.Empty(t, insights.Agenda)
	assert.Empty(t, insights.Decisions)
	assert.NotNil(t, insights.ActionItems)
	assert.Empty(t, insights.ActionItems)
	assert.Empty(t, insights.SpeakerStats)
}

package meeting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

func TestIngestHookContext(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	m, err := f.service.Start(ctx, "pm@example.com", "Weekly Sync", []string{"pm@example.com"}, "", "")
	require.NoError(t, err)

	result, err := f.service.IngestHookContext(ctx, HookContext{
		MeetingID: m.ID,
		Participants: []HookParticipant{
			{Name: "PM", Email: "pm@example.com", Action: "join"},
			{Name: "Visitor", Email: "visitor@example.com", Action: "join"},
		},
		Note:  "single headline note",
		Notes: []string{"first batch note", "  ", "second batch note"},
		Captions: []HookCaption{
			{Speaker: "Dev1", Text: "caption line one"},
			{Speaker: "", Text: "caption without speaker"},
			{Speaker: "Dev1", Text: "   "},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.ParticipantsIngested)
	// Blank note and caption entries are dropped.
	assert.Equal(t, 5, result.NotesIngested)
	assert.Equal(t, 2, result.Attendance.ParticipantCount)
	assert.Equal(t, []string{"visitor@example.com"}, result.Attendance.DiscoveredParticipants)

	stored, err := f.service.Get(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, stored.Notes, 5)

	assert.Equal(t, HookSpeaker, stored.Notes[0].Speaker)
	assert.Equal(t, entities.NoteSourceHook, stored.Notes[0].Source)
	assert.Equal(t, "Dev1", stored.Notes[3].Speaker)
	assert.Equal(t, entities.DefaultSpeaker, stored.Notes[4].Speaker)

	snapshot, err := f.analyticsRepo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, snapshot.NotesCreated)
}

func TestIngestHookContextUnknownMeeting(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.IngestHookContext(context.Background(), HookContext{
		MeetingID: newMeetingFixture().ID,
		Note:      "orphan note",
	})
	assert.Equal(t, apperrors.ErrorCode_MEETING_NOT_FOUND, appCode(t, err))
}

func TestIngestHookContextPresenceSourceDefault(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	m, err := f.service.Start(ctx, "pm@example.com", "Weekly Sync", []string{"pm@example.com"}, "", "")
	require.NoError(t, err)

	_, err = f.service.IngestHookContext(ctx, HookContext{
		MeetingID:    m.ID,
		Participants: []HookParticipant{{Name: "PM", Email: "pm@example.com", Action: "join"}},
	})
	require.NoError(t, err)

	stored, err := f.service.Get(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, stored.PresenceEvents, 1)
	assert.Equal(t, "browser_hook", stored.PresenceEvents[0].Source)
}

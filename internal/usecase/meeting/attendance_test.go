package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

func newMeetingFixture() *entities.Meeting {
	return entities.NewMeeting(
		"Weekly Sync",
		[]string{"pm@example.com", "dev@example.com"},
		"https://meet.google.com/abc",
		"google_meet",
		entities.MeetingSourceManual,
	)
}

func TestRegisterPresenceJoinAndLeave(t *testing.T) {
	m := newMeetingFixture()

	event := RegisterPresence(m, PresencePayload{Name: "PM", Email: "PM@Example.com", Action: "join"})
	assert.Equal(t, entities.PresenceJoin, event.Action)
	assert.Equal(t, "pm@example.com", event.Email)
	assert.Equal(t, "manual", event.Source)

	RegisterPresence(m, PresencePayload{Name: "PM", Email: "pm@example.com", Action: "leave"})

	require.Len(t, m.PresenceEvents, 2)
	attendee := m.AttendanceMap["pm@example.com"]
	require.NotNil(t, attendee)
	assert.Equal(t, 1, attendee.Joins)
	assert.Equal(t, 1, attendee.Leaves)
	assert.NotNil(t, attendee.FirstJoinAt)
	assert.NotNil(t, attendee.LastLeaveAt)
	assert.False(t, attendee.Discovered)
}

func TestRegisterPresenceUnknownActionCountsAsJoin(t *testing.T) {
	m := newMeetingFixture()

	event := RegisterPresence(m, PresencePayload{Name: "Guest", Action: "whatever"})
	assert.Equal(t, entities.PresenceJoin, event.Action)
}

func TestRegisterPresenceTracksDiscoveredParticipants(t *testing.T) {
	m := newMeetingFixture()

	RegisterPresence(m, PresencePayload{Name: "Visitor", Email: "visitor@example.com", Action: "join"})
	RegisterPresence(m, PresencePayload{Name: "Visitor", Email: "visitor@example.com", Action: "join"})

	attendee := m.AttendanceMap["visitor@example.com"]
	require.NotNil(t, attendee)
	assert.True(t, attendee.Discovered)
	assert.Equal(t, 2, attendee.Joins)

	// Repeated joins do not duplicate the discovered list.
	assert.Equal(t, []string{"visitor@example.com"}, m.DiscoveredAttendees)
}

func TestRegisterPresenceWithoutEmailKeysByName(t *testing.T) {
	m := newMeetingFixture()

	RegisterPresence(m, PresencePayload{Name: "Walk In", Action: "join", Source: "browser_hook"})

	attendee := m.AttendanceMap["walk in"]
	require.NotNil(t, attendee)
	assert.Equal(t, "Walk In", attendee.Name)
	assert.Empty(t, attendee.Email)
	assert.Empty(t, m.DiscoveredAttendees)
}

func TestRegisterPresenceDefaultsName(t *testing.T) {
	m := newMeetingFixture()

	event := RegisterPresence(m, PresencePayload{Email: "pm@example.com", Action: "join"})
	assert.Equal(t, entities.DefaultSpeaker, event.Name)
}

func TestAttendanceSummarySortedByName(t *testing.T) {
	m := newMeetingFixture()
	RegisterPresence(m, PresencePayload{Name: "Zoe", Email: "zoe@example.com", Action: "join"})
	RegisterPresence(m, PresencePayload{Name: "Adam", Email: "adam@example.com", Action: "join"})
	RegisterPresence(m, PresencePayload{Name: "PM", Email: "pm@example.com", Action: "join"})

	summary := AttendanceSummary(m)

	assert.Equal(t, 3, summary.ParticipantCount)
	assert.Equal(t, 2, summary.DiscoveredParticipantCount)
	require.Len(t, summary.Participants, 3)
	assert.Equal(t, "Adam", summary.Participants[0].Name)
	assert.Equal(t, "PM", summary.Participants[1].Name)
	assert.Equal(t, "Zoe", summary.Participants[2].Name)
}

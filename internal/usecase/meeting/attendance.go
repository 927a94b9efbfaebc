package meeting

import (
	"sort"
	"strings"
	"time"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// PresencePayload is one raw join/leave observation before normalization.
type PresencePayload struct {
	Name   string
	Email  string
	Action string
	Source string
}

func normalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func normalizeName(value string) string {
	name := strings.TrimSpace(value)
	if name == "" {
		return entities.DefaultSpeaker
	}
	return name
}

// RegisterPresence appends a presence event and folds it into the meeting's
// attendance map. Participants not on the invited list are tracked as
// discovered.
func RegisterPresence(m *entities.Meeting, payload PresencePayload) entities.PresenceEvent {
	action := entities.PresenceJoin
	if payload.Action == string(entities.PresenceLeave) {
		action = entities.PresenceLeave
	}
	name := normalizeName(payload.Name)
	email := normalizeEmail(payload.Email)
	source := payload.Source
	if source == "" {
		source = "manual"
	}
	now := time.Now().UTC()

	event := entities.PresenceEvent{
		Name:      name,
		Email:     email,
		Action:    action,
		Source:    source,
		Timestamp: now,
	}
	m.PresenceEvents = append(m.PresenceEvents, event)

	key := email
	if key == "" {
		key = strings.ToLower(name)
	}
	attendee, ok := m.AttendanceMap[key]
	if !ok {
		attendee = &entities.Attendee{Name: name}
		m.AttendanceMap[key] = attendee
	}

	attendee.Name = name
	if email != "" {
		attendee.Email = email
	}
	attendee.Discovered = attendee.Discovered || !m.HasAttendee(email)

	if action == entities.PresenceJoin {
		attendee.Joins++
		if attendee.FirstJoinAt == nil {
			attendee.FirstJoinAt = &now
		}
	} else {
		attendee.Leaves++
		attendee.LastLeaveAt = &now
	}

	if email != "" && !m.HasAttendee(email) {
		addDiscovered(m, email)
	}

	return event
}

func addDiscovered(m *entities.Meeting, email string) {
	for _, existing := range m.DiscoveredAttendees {
		if existing == email {
			return
		}
	}
	m.DiscoveredAttendees = append(m.DiscoveredAttendees, email)
}

// AttendanceSummary builds the consumable attendance view, participants
// sorted by name.
func AttendanceSummary(m *entities.Meeting) entities.AttendanceSummary {
	participants := make([]entities.Attendee, 0, len(m.AttendanceMap))
	for _, a := range m.AttendanceMap {
		participants = append(participants, *a)
	}
	sort.Slice(participants, func(i, j int) bool {
		return participants[i].Name < participants[j].Name
	})

	discovered := append([]string{}, m.DiscoveredAttendees...)

	return entities.AttendanceSummary{
		ParticipantCount:           len(participants),
		DiscoveredParticipantCount: len(discovered),
		DiscoveredParticipants:     discovered,
		Participants:               participants,
	}
}

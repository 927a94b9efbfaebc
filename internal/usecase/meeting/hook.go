package meeting

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// HookSpeaker attributes notes pushed by the browser extension.
const HookSpeaker = "BrowserHook"

// HookParticipant is one presence observation pushed by the browser hook.
type HookParticipant struct {
	Name   string
	Email  string
	Action string
	Source string
}

// HookCaption is one caption line pushed by the browser hook.
type HookCaption struct {
	Speaker string
	Text    string
}

// HookContext is the whole payload of one browser-hook push.
type HookContext struct {
	MeetingID    uuid.UUID
	Participants []HookParticipant
	Note         string
	Notes        []string
	Captions     []HookCaption
}

// HookResult reports what a hook push ingested.
type HookResult struct {
	ParticipantsIngested int
	NotesIngested        int
	Attendance           entities.AttendanceSummary
}

// IngestHookContext fans a browser-hook payload into presence events and
// note log entries.
func (s *Service) IngestHookContext(ctx context.Context, payload HookContext) (*HookResult, error) {
	var result HookResult
	_, err := s.meetingRepo.Update(ctx, payload.MeetingID, func(m *entities.Meeting) error {
		for _, p := range payload.Participants {
			source := p.Source
			if source == "" {
				source = "browser_hook"
			}
			RegisterPresence(m, PresencePayload{
				Name:   p.Name,
				Email:  p.Email,
				Action: p.Action,
				Source: source,
			})
		}
		result.ParticipantsIngested = len(payload.Participants)

		if note := strings.TrimSpace(payload.Note); note != "" {
			m.AppendNote(note, HookSpeaker, entities.NoteSourceHook)
			result.NotesIngested++
		}
		for _, item := range payload.Notes {
			if text := strings.TrimSpace(item); text != "" {
				m.AppendNote(text, HookSpeaker, entities.NoteSourceHook)
				result.NotesIngested++
			}
		}
		for _, caption := range payload.Captions {
			text := strings.TrimSpace(caption.Text)
			if text == "" {
				continue
			}
			m.AppendNote(text, caption.Speaker, entities.NoteSourceHook)
			result.NotesIngested++
		}

		result.Attendance = AttendanceSummary(m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.NotesIngested > 0 {
		if err := s.analyticsRepo.Bump(ctx, "notesCreated", result.NotesIngested); err != nil {
			s.logger.Error("failed to bump counter", zap.Error(err))
		}
	}
	s.audit(ctx, "", "hook.meeting_context", &payload.MeetingID, map[string]string{
		"participantsIngested": strconv.Itoa(result.ParticipantsIngested),
		"notesIngested":        strconv.Itoa(result.NotesIngested),
	})
	return &result, nil
}

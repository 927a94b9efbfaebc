package meeting

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/domain/repositories"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/external/calendar"
	"github.com/johnquangdev/mom-ai/internal/usecase/insight"
	"github.com/johnquangdev/mom-ai/internal/usecase/mailer"
	"github.com/johnquangdev/mom-ai/internal/usecase/mom"
	"github.com/johnquangdev/mom-ai/internal/usecase/transcription"
)

// Options tune meeting orchestration behavior.
type Options struct {
	// AutoNoteFromTranscript promotes qualifying transcript chunks into notes.
	AutoNoteFromTranscript bool
	// EmailJobMaxRetries caps delivery attempts for queued MoM emails.
	EmailJobMaxRetries int
}

// Service orchestrates the meeting lifecycle: note capture, presence,
// transcription, insight extraction, MoM synthesis, and outbound email.
type Service struct {
	meetingRepo   repositories.MeetingRepository
	jobRepo       repositories.JobRepository
	auditRepo     repositories.AuditRepository
	analyticsRepo repositories.AnalyticsRepository
	calendar      *calendar.MockProvider
	simulator     *transcription.Simulator
	logger        *zap.Logger
	opts          Options
}

// NewService creates a meeting service.
func NewService(
	meetingRepo repositories.MeetingRepository,
	jobRepo repositories.JobRepository,
	auditRepo repositories.AuditRepository,
	analyticsRepo repositories.AnalyticsRepository,
	calendarProvider *calendar.MockProvider,
	simulator *transcription.Simulator,
	logger *zap.Logger,
	opts Options,
) *Service {
	if opts.EmailJobMaxRetries <= 0 {
		opts.EmailJobMaxRetries = 3
	}
	return &Service{
		meetingRepo:   meetingRepo,
		jobRepo:       jobRepo,
		auditRepo:     auditRepo,
		analyticsRepo: analyticsRepo,
		calendar:      calendarProvider,
		simulator:     simulator,
		logger:        logger,
		opts:          opts,
	}
}

// Start creates a meeting from manual input. The platform is inferred from
// the meeting link when not given.
func (s *Service) Start(ctx context.Context, actor, title string, attendees []string, meetingLink, platform string) (*entities.Meeting, error) {
	if title == "" || len(attendees) == 0 {
		return nil, apperrors.ErrInvalidArgument("title and attendees are required")
	}
	if platform == "" {
		platform = calendar.DetectPlatform(meetingLink)
	}

	m := entities.NewMeeting(title, attendees, meetingLink, platform, entities.MeetingSourceManual)
	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.bump(ctx, "meetingCreated")
	s.audit(ctx, actor, "meeting.start.manual", &m.ID, map[string]string{
		"title":    m.Title,
		"platform": m.Platform,
	})
	s.logger.Info("meeting started",
		zap.String("meeting_id", m.ID.String()),
		zap.String("platform", m.Platform),
	)
	return m, nil
}

// StartFromEventResult carries the created meeting plus the calendar event
// it was seeded from.
type StartFromEventResult struct {
	Meeting            *entities.Meeting
	FromCalendarEvent  calendar.Event
	SelectedByFallback bool
}

// StartFromEvent creates a meeting seeded from a calendar event. An unknown
// event id falls back to the first upcoming event.
func (s *Service) StartFromEvent(ctx context.Context, actor, platform, eventID, ownerEmail string) (*StartFromEventResult, error) {
	if platform == "" || eventID == "" {
		return nil, apperrors.ErrInvalidArgument("platform and eventId are required")
	}

	events, err := s.calendar.ListEvents(platform, ownerEmail)
	if err != nil {
		return nil, err
	}

	chosen := events[0]
	for _, ev := range events {
		if ev.EventID == eventID {
			chosen = ev
			break
		}
	}

	m := entities.NewMeeting(chosen.Title, chosen.Attendees, chosen.MeetingLink, platform, entities.MeetingSourceCalendar)
	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.bump(ctx, "meetingCreated")
	s.audit(ctx, actor, "meeting.start.calendar", &m.ID, map[string]string{
		"title":    m.Title,
		"platform": platform,
	})

	return &StartFromEventResult{
		Meeting:            m,
		FromCalendarEvent:  chosen,
		SelectedByFallback: chosen.EventID != eventID,
	}, nil
}

// Get returns the meeting by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return s.meetingRepo.GetByID(ctx, id)
}

// AddNote appends a manual note to an active meeting.
func (s *Service) AddNote(ctx context.Context, actor string, id uuid.UUID, text, speaker string) (entities.Note, error) {
	var note entities.Note
	_, err := s.meetingRepo.Update(ctx, id, func(m *entities.Meeting) error {
		if !m.IsActive {
			return apperrors.ErrMeetingEnded(id.String())
		}
		if text == "" {
			return apperrors.ErrNoteTextRequired()
		}
		note = m.AppendNote(text, speaker, entities.NoteSourceManual)
		return nil
	})
	if err != nil {
		return entities.Note{}, err
	}

	s.bump(ctx, "notesCreated")
	s.audit(ctx, actor, "meeting.note.added", &id, map[string]string{"speaker": note.Speaker})
	return note, nil
}

// RegisterPresence records a join/leave event and returns the updated
// attendance summary.
func (s *Service) RegisterPresence(ctx context.Context, actor string, id uuid.UUID, payload PresencePayload) (entities.PresenceEvent, entities.AttendanceSummary, error) {
	if payload.Name == "" && payload.Email == "" {
		return entities.PresenceEvent{}, entities.AttendanceSummary{}, apperrors.ErrAttendeeRequired()
	}

	var event entities.PresenceEvent
	var summary entities.AttendanceSummary
	_, err := s.meetingRepo.Update(ctx, id, func(m *entities.Meeting) error {
		event = RegisterPresence(m, payload)
		summary = AttendanceSummary(m)
		return nil
	})
	if err != nil {
		return entities.PresenceEvent{}, entities.AttendanceSummary{}, err
	}

	s.audit(ctx, actor, "meeting.presence", &id, map[string]string{
		"name":   event.Name,
		"email":  event.Email,
		"action": string(event.Action),
	})
	return event, summary, nil
}

// Attendance returns the attendance summary for a meeting.
func (s *Service) Attendance(ctx context.Context, id uuid.UUID) (entities.AttendanceSummary, error) {
	m, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return entities.AttendanceSummary{}, err
	}
	return AttendanceSummary(m), nil
}

// EndResult is the terminal snapshot of a meeting.
type EndResult struct {
	Meeting    *entities.Meeting
	Attendance entities.AttendanceSummary
}

// End closes the meeting: stops transcription and simulation, extracts
// insights, renders the MoM, and snapshots it as a version.
func (s *Service) End(ctx context.Context, actor string, id uuid.UUID) (*EndResult, error) {
	var summary entities.AttendanceSummary
	m, err := s.meetingRepo.Update(ctx, id, func(m *entities.Meeting) error {
		if !m.IsActive {
			return apperrors.ErrMeetingEnded(id.String())
		}
		m.End()
		if m.Transcription != nil {
			m.Transcription.Stop()
		}

		insights := insight.Extract(m.Notes)
		m.Insights = &insights
		mood := insight.AnalyzeMood(m.Notes)
		summary = AttendanceSummary(m)
		m.Mom = mom.Synthesize(m, insights, mood, summary)
		mom.AppendVersion(m, m.Mom, "meeting_end")
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.simulator.Stop(id)
	s.bump(ctx, "meetingEnded")
	s.audit(ctx, actor, "meeting.end", &id, map[string]string{
		"notes": strconv.Itoa(len(m.Notes)),
	})
	s.logger.Info("meeting ended",
		zap.String("meeting_id", id.String()),
		zap.Int("notes", len(m.Notes)),
	)
	return &EndResult{Meeting: m, Attendance: summary}, nil
}

// AnalysisBundle is the full derived-intelligence view of a meeting.
type AnalysisBundle struct {
	Insights   entities.Insights        `json:"insights"`
	Mood       entities.MoodAssessment  `json:"mood"`
	Risk       entities.RiskRadar       `json:"risk"`
	Conflicts  entities.ConflictMap     `json:"conflicts"`
	Score      entities.MeetingScore    `json:"score"`
	NextAgenda []string                 `json:"next_agenda"`
	Followups  []entities.FollowupDraft `json:"followups"`
}

// RecomputeInsights re-runs the full analysis over the current note log.
// For an ended meeting the MoM is regenerated and re-snapshotted.
func (s *Service) RecomputeInsights(ctx context.Context, actor string, id uuid.UUID) (*AnalysisBundle, error) {
	var bundle AnalysisBundle
	_, err := s.meetingRepo.Update(ctx, id, func(m *entities.Meeting) error {
		insights := insight.Extract(m.Notes)
		m.Insights = &insights

		mood := insight.AnalyzeMood(m.Notes)
		bundle = AnalysisBundle{
			Insights:   insights,
			Mood:       mood,
			Risk:       insight.BuildRiskRadar(m.Notes),
			Conflicts:  insight.BuildConflictMap(m.Notes),
			Score:      insight.ComputeMeetingScore(m, insights, mood),
			NextAgenda: insight.BuildNextAgenda(m, insights),
			Followups:  insight.BuildFollowupDrafts(m, insights),
		}

		if !m.IsActive {
			m.Mom = mom.Synthesize(m, insights, mood, AttendanceSummary(m))
			mom.AppendVersion(m, m.Mom, "regenerate")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "meeting.insights.recomputed", &id, nil)
	return &bundle, nil
}

// CreateShare creates (or returns) the stable share handle for a rendered MoM.
func (s *Service) CreateShare(ctx context.Context, actor string, id uuid.UUID) (*entities.MomShare, error) {
	var share *entities.MomShare
	_, err := s.meetingRepo.Update(ctx, id, func(m *entities.Meeting) error {
		if m.Mom == "" {
			return apperrors.ErrMomNotGenerated()
		}
		if m.MomShare == nil {
			m.MomShare = &entities.MomShare{
				ID:        newShareID(),
				CreatedAt: time.Now().UTC(),
			}
		}
		share = m.MomShare
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "mom.share.created", &id, map[string]string{"shareId": share.ID})
	return share, nil
}

// GetShare returns the existing share handle or a not-found rejection.
func (s *Service) GetShare(ctx context.Context, id uuid.UUID) (*entities.MomShare, error) {
	m, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.MomShare == nil {
		return nil, apperrors.ErrShareNotFound()
	}
	return m.MomShare, nil
}

// GetByShareID resolves a meeting through its public share handle.
func (s *Service) GetByShareID(ctx context.Context, shareID string) (*entities.Meeting, error) {
	return s.meetingRepo.GetByShareID(ctx, shareID)
}

// SendMom queues the rendered MoM for email delivery to all attendees.
// shareURL is the public link included in the email body.
func (s *Service) SendMom(ctx context.Context, actor string, id uuid.UUID, fromEmail, shareURL string) (uuid.UUID, error) {
	if fromEmail == "" {
		return uuid.Nil, apperrors.ErrFromEmailRequired()
	}

	m, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	if m.Mom == "" {
		return uuid.Nil, apperrors.ErrMomNotGenerated()
	}

	job := entities.NewEmailJob(entities.EmailJobTypeSendMom, entities.EmailPayload{
		MeetingID: m.ID,
		FromEmail: fromEmail,
		To:        m.Attendees,
		Subject:   "Minutes of Meeting: " + m.Title,
		Text:      m.Mom + "\n\nShared MoM Link: " + shareURL,
	}, s.opts.EmailJobMaxRetries)

	if err := s.jobRepo.Enqueue(ctx, job); err != nil {
		return uuid.Nil, err
	}

	s.bump(ctx, "momsQueued")
	s.audit(ctx, actor, "mom.email.queued", &id, map[string]string{
		"jobId":      job.ID.String(),
		"recipients": strconv.Itoa(len(m.Attendees)),
	})
	return job.ID, nil
}

// QueueReminders queues one reminder email per extracted action item, due
// daysAhead days in the future.
func (s *Service) QueueReminders(ctx context.Context, actor string, id uuid.UUID, fromEmail string, daysAhead int) ([]uuid.UUID, error) {
	if fromEmail == "" {
		return nil, apperrors.ErrFromEmailRequired()
	}

	m, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	jobs := mailer.BuildReminderJobs(m, fromEmail, daysAhead)
	ids := make([]uuid.UUID, 0, len(jobs))
	for _, job := range jobs {
		if err := s.jobRepo.Enqueue(ctx, job); err != nil {
			return ids, err
		}
		ids = append(ids, job.ID)
	}

	s.audit(ctx, actor, "mom.reminders.queued", &id, map[string]string{
		"jobs": strconv.Itoa(len(ids)),
	})
	return ids, nil
}

// ListVersions returns the stored MoM versions, oldest first.
func (s *Service) ListVersions(ctx context.Context, id uuid.UUID) ([]entities.MomVersion, error) {
	m, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.MomVersions, nil
}

// DiffVersions compares two stored MoM versions.
func (s *Service) DiffVersions(ctx context.Context, id, versionA, versionB uuid.UUID) (entities.MomDiff, error) {
	m, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return entities.MomDiff{}, err
	}
	return mom.DiffVersions(m, versionA, versionB)
}

func newShareID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(buf)
}

func (s *Service) bump(ctx context.Context, metric string) {
	if err := s.analyticsRepo.Bump(ctx, metric, 1); err != nil {
		s.logger.Error("failed to bump counter", zap.String("metric", metric), zap.Error(err))
	}
}

func (s *Service) audit(ctx context.Context, actor, action string, meetingID *uuid.UUID, details map[string]string) {
	if err := s.auditRepo.Append(ctx, entities.NewAuditEvent(actor, action, meetingID, details)); err != nil {
		s.logger.Error("failed to record audit event", zap.Error(err))
	}
}


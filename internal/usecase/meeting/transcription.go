package meeting

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/usecase/transcription"
)

// StartTranscription opens a transcription session for an active meeting.
// At most one session is active per meeting.
func (s *Service) StartTranscription(ctx context.Context, actor string, id uuid.UUID, language, provider string) (*entities.TranscriptionSession, error) {
	var session *entities.TranscriptionSession
	_, err := s.meetingRepo.Update(ctx, id, func(m *entities.Meeting) error {
		if m.Transcription != nil && m.Transcription.IsActive {
			return apperrors.ErrTranscriptionActive(id.String())
		}
		m.Transcription = entities.NewTranscriptionSession(language, provider)
		session = m.Transcription
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "transcription.start", &id, map[string]string{"provider": session.Provider})
	return session, nil
}

// ChunkResult is one ingested chunk plus the note it may have promoted into.
type ChunkResult struct {
	Chunk    entities.TranscriptChunk
	AutoNote *entities.Note
}

// AddChunk ingests one transcript chunk into the active session, promoting
// it into the note log when it qualifies.
func (s *Service) AddChunk(ctx context.Context, actor string, id uuid.UUID, text, speaker string, confidence *float64, source entities.ChunkSource) (*ChunkResult, error) {
	if text == "" {
		return nil, apperrors.ErrChunkTextRequired()
	}

	result, err := s.ingestChunk(ctx, id, text, speaker, confidence, source)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "transcription.chunk", &id, map[string]string{
		"speaker":          result.Chunk.Speaker,
		"autoNoteCaptured": strconv.FormatBool(result.AutoNote != nil),
	})
	return result, nil
}

// ingestChunk is the single serialized ingestion path shared by live chunks
// and the simulator.
func (s *Service) ingestChunk(ctx context.Context, id uuid.UUID, text, speaker string, confidence *float64, source entities.ChunkSource) (*ChunkResult, error) {
	var result ChunkResult
	_, err := s.meetingRepo.Update(ctx, id, func(m *entities.Meeting) error {
		if m.Transcription == nil || !m.Transcription.IsActive {
			return apperrors.ErrTranscriptionInactive(id.String())
		}

		result.Chunk = transcription.AddChunk(m.Transcription, text, speaker, confidence, source)

		if s.opts.AutoNoteFromTranscript && transcription.ShouldCaptureAsNote(result.Chunk) {
			note := entities.Note{
				ID:        uuid.New(),
				Text:      result.Chunk.Text,
				Speaker:   result.Chunk.Speaker,
				Source:    entities.NoteSourceTranscriptionAuto,
				Timestamp: result.Chunk.Timestamp,
			}
			m.Notes = append(m.Notes, note)
			result.AutoNote = &note
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bump(ctx, "transcriptChunks")
	if result.AutoNote != nil {
		s.bump(ctx, "notesCreated")
	}
	return &result, nil
}

// StopTranscription closes the active session and cancels any running
// simulation.
func (s *Service) StopTranscription(ctx context.Context, actor string, id uuid.UUID) (*entities.TranscriptionSession, error) {
	var session *entities.TranscriptionSession
	_, err := s.meetingRepo.Update(ctx, id, func(m *entities.Meeting) error {
		if m.Transcription == nil || !m.Transcription.IsActive {
			return apperrors.ErrTranscriptionInactive(id.String())
		}
		m.Transcription.Stop()
		session = m.Transcription
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.simulator.Stop(id)
	s.audit(ctx, actor, "transcription.stop", &id, nil)
	return session, nil
}

// SimulationInfo describes a launched simulation run.
type SimulationInfo struct {
	Preset     string
	ChunkCount int
	Interval   time.Duration
}

// Simulate feeds a preset chunk script into the active session, one chunk
// per tick, until exhaustion or stop.
func (s *Service) Simulate(ctx context.Context, actor string, id uuid.UUID, preset string, interval time.Duration) (*SimulationInfo, error) {
	m, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Transcription == nil || !m.Transcription.IsActive {
		return nil, apperrors.ErrTranscriptionInactive(id.String())
	}
	if s.simulator.Running(id) {
		return nil, apperrors.ErrSimulationRunning(id.String())
	}

	if preset == "" {
		preset = transcription.DefaultPreset
	}
	chunks := transcription.PresetChunks(preset)
	if interval <= 0 {
		interval = transcription.DefaultSimulationInterval
	}

	started := s.simulator.Start(id, chunks, interval, func(text string) bool {
		_, err := s.ingestChunk(context.Background(), id, text, "", nil, entities.ChunkSourceSimulator)
		if err != nil {
			var appErr apperrors.AppError
			if !(errors.As(err, &appErr) && appErr.Code == apperrors.ErrorCode_TRANSCRIPTION_INACTIVE) {
				s.logger.Error("simulation tick failed",
					zap.String("meeting_id", id.String()),
					zap.Error(err),
				)
			}
			return false
		}
		return true
	})
	if !started {
		return nil, apperrors.ErrSimulationRunning(id.String())
	}

	s.audit(ctx, actor, "transcription.simulate", &id, map[string]string{"preset": preset})
	return &SimulationInfo{Preset: preset, ChunkCount: len(chunks), Interval: interval}, nil
}

// TranscriptionView is a session snapshot with its rendered transcript.
type TranscriptionView struct {
	Session    *entities.TranscriptionSession
	Transcript string
}

// GetTranscription returns the meeting's session and rendered transcript.
func (s *Service) GetTranscription(ctx context.Context, id uuid.UUID) (*TranscriptionView, error) {
	m, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Transcription == nil {
		return nil, apperrors.ErrNoTranscriptionSession(id.String())
	}
	return &TranscriptionView{
		Session:    m.Transcription,
		Transcript: transcription.TranscriptText(m.Transcription),
	}, nil
}

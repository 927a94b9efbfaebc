package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	transcriptiondto "github.com/johnquangdev/mom-ai/internal/adapter/dto/transcription"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/mom-ai/internal/usecase/meeting"
)

// Transcription handles transcription session HTTP requests
type Transcription struct {
	service *meeting.Service
	logger  *zap.Logger
}

// NewTranscription creates a new transcription handler
func NewTranscription(service *meeting.Service, logger *zap.Logger) *Transcription {
	return &Transcription{
		service: service,
		logger:  logger,
	}
}

// Start opens a transcription session
// POST /api/meetings/:id/transcription/start
func (h *Transcription) Start(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req transcriptiondto.StartRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}

	session, err := h.service.StartTranscription(c.Request().Context(), middleware.Actor(c), id, req.Language, req.Provider)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, echo.Map{
		"id":            id.String(),
		"transcription": session,
	})
}

// AddChunk ingests one live transcript chunk
// POST /api/meetings/:id/transcription/chunks
func (h *Transcription) AddChunk(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req transcriptiondto.ChunkRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrChunkTextRequired())
	}

	result, err := h.service.AddChunk(c.Request().Context(), middleware.Actor(c), id, req.Text, req.Speaker, req.Confidence, entities.ChunkSource(req.Source))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, echo.Map{
		"id":               id.String(),
		"chunk":            result.Chunk,
		"autoNoteCaptured": result.AutoNote != nil,
		"autoNote":         result.AutoNote,
	})
}

// Stop closes the active session
// POST /api/meetings/:id/transcription/stop
func (h *Transcription) Stop(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	session, err := h.service.StopTranscription(c.Request().Context(), middleware.Actor(c), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, echo.Map{
		"id":            id.String(),
		"transcription": session,
	})
}

// Simulate launches a scripted chunk feed
// POST /api/meetings/:id/transcription/simulate
func (h *Transcription) Simulate(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req transcriptiondto.SimulateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}

	info, err := h.service.Simulate(c.Request().Context(), middleware.Actor(c), id, req.Preset, time.Duration(req.IntervalMs)*time.Millisecond)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleAccepted(h.logger, c, echo.Map{
		"id":         id.String(),
		"started":    true,
		"preset":     info.Preset,
		"chunkCount": info.ChunkCount,
		"intervalMs": info.Interval.Milliseconds(),
	})
}

// Get returns the session and its rendered transcript
// GET /api/meetings/:id/transcription
func (h *Transcription) Get(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	view, err := h.service.GetTranscription(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, echo.Map{
		"id":            id.String(),
		"transcription": view.Session,
		"transcript":    view.Transcript,
	})
}

// Export renders the transcript as plain text or structured chunks
// GET /api/meetings/:id/transcription/export?format=txt|json
func (h *Transcription) Export(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	view, err := h.service.GetTranscription(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	format := strings.ToLower(c.QueryParam("format"))
	switch format {
	case "", "txt":
		return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(view.Transcript))
	case "json":
		return HandleSuccess(h.logger, c, echo.Map{
			"id":            id.String(),
			"transcription": view.Session,
			"chunks":        view.Session.Chunks,
		})
	default:
		return HandleError(h.logger, c, apperrors.ErrInvalidExportFormat(format))
	}
}

package handler

import (
	"crypto/subtle"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	hookdto "github.com/johnquangdev/mom-ai/internal/adapter/dto/hook"
	"github.com/johnquangdev/mom-ai/internal/usecase/meeting"
)

// hookKeyHeader carries the shared secret for browser hook pushes.
const hookKeyHeader = "X-Hook-Key"

// Hook handles browser-extension context pushes
type Hook struct {
	service *meeting.Service
	apiKey  string
	logger  *zap.Logger
}

// NewHook creates a new hook handler. An empty apiKey disables the key check.
func NewHook(service *meeting.Service, apiKey string, logger *zap.Logger) *Hook {
	return &Hook{
		service: service,
		apiKey:  apiKey,
		logger:  logger,
	}
}

// MeetingContext ingests participants, notes, and captions pushed by the
// browser extension
// POST /api/hooks/meeting-context
func (h *Hook) MeetingContext(c echo.Context) error {
	if h.apiKey != "" {
		provided := c.Request().Header.Get(hookKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(h.apiKey)) != 1 {
			return HandleError(h.logger, c, apperrors.ErrInvalidHookKey())
		}
	}

	var req hookdto.MeetingContextRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}

	id, err := uuid.Parse(req.MeetingID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrMeetingNotFound(req.MeetingID))
	}

	payload := meeting.HookContext{
		MeetingID: id,
		Note:      req.Note,
		Notes:     req.Notes,
	}
	for _, p := range req.Participants {
		payload.Participants = append(payload.Participants, meeting.HookParticipant{
			Name:   p.Name,
			Email:  p.Email,
			Action: p.Action,
			Source: p.Source,
		})
	}
	for _, caption := range req.Captions {
		payload.Captions = append(payload.Captions, meeting.HookCaption{
			Speaker: caption.Speaker,
			Text:    caption.Text,
		})
	}

	result, err := h.service.IngestHookContext(c.Request().Context(), payload)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, echo.Map{
		"id":                   id.String(),
		"participantsIngested": result.ParticipantsIngested,
		"notesIngested":        result.NotesIngested,
		"attendance":           result.Attendance,
	})
}

package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	meetingdto "github.com/johnquangdev/mom-ai/internal/adapter/dto/meeting"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/external/calendar"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/mom-ai/internal/usecase/meeting"
)

// Integration handles platform/calendar HTTP requests
type Integration struct {
	service  *meeting.Service
	calendar *calendar.MockProvider
	logger   *zap.Logger
}

// NewIntegration creates a new integration handler
func NewIntegration(service *meeting.Service, calendarProvider *calendar.MockProvider, logger *zap.Logger) *Integration {
	return &Integration{
		service:  service,
		calendar: calendarProvider,
		logger:   logger,
	}
}

// Platforms lists the supported meeting platforms
// GET /api/integrations/platforms
func (h *Integration) Platforms(c echo.Context) error {
	return HandleSuccess(h.logger, c, echo.Map{
		"platforms": calendar.SupportedPlatforms(),
	})
}

// Events lists upcoming calendar events for a platform
// GET /api/integrations/:platform/events
func (h *Integration) Events(c echo.Context) error {
	platform := c.Param("platform")
	events, err := h.calendar.ListEvents(platform, c.QueryParam("ownerEmail"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, echo.Map{
		"platform": platform,
		"events":   events,
	})
}

// StartFromEvent creates a meeting seeded from a calendar event
// POST /api/integrations/start-from-event
func (h *Integration) StartFromEvent(c echo.Context) error {
	var req meetingdto.StartFromEventRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("platform and eventId are required"))
	}

	result, err := h.service.StartFromEvent(c.Request().Context(), middleware.Actor(c), req.Platform, req.EventID, req.OwnerEmail)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, echo.Map{
		"meeting":            meetingdto.NewMeetingResponse(result.Meeting),
		"fromCalendarEvent":  result.FromCalendarEvent,
		"selectedByFallback": result.SelectedByFallback,
	})
}

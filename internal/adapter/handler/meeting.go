package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	meetingdto "github.com/johnquangdev/mom-ai/internal/adapter/dto/meeting"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/mom-ai/internal/usecase/meeting"
)

// Meeting handles meeting lifecycle HTTP requests
type Meeting struct {
	service *meeting.Service
	logger  *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(service *meeting.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		service: service,
		logger:  logger,
	}
}

func meetingID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrMeetingNotFound(c.Param("id"))
	}
	return id, nil
}

// Start creates a meeting from manual input
// POST /api/meetings/start
func (h *Meeting) Start(c echo.Context) error {
	var req meetingdto.StartMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("title and attendees[] are required"))
	}

	m, err := h.service.Start(c.Request().Context(), middleware.Actor(c), req.Title, req.Attendees, req.MeetingLink, req.Platform)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, meetingdto.NewMeetingResponse(m))
}

// Get returns one meeting
// GET /api/meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, meetingdto.NewMeetingResponse(m))
}

// AddNote appends a manual note
// POST /api/meetings/:id/notes
func (h *Meeting) AddNote(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.AddNoteRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrNoteTextRequired())
	}

	note, err := h.service.AddNote(c.Request().Context(), middleware.Actor(c), id, req.Text, req.Speaker)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, note)
}

// RegisterPresence records a join/leave event
// POST /api/meetings/:id/presence
func (h *Meeting) RegisterPresence(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.PresenceRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}

	event, attendance, err := h.service.RegisterPresence(c.Request().Context(), middleware.Actor(c), id, meeting.PresencePayload{
		Name:   req.Name,
		Email:  req.Email,
		Action: req.Action,
		Source: req.Source,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, echo.Map{
		"event":      event,
		"attendance": attendance,
	})
}

// Attendance returns the attendance summary
// GET /api/meetings/:id/attendance
func (h *Meeting) Attendance(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	attendance, err := h.service.Attendance(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, echo.Map{
		"id":         id.String(),
		"attendance": attendance,
	})
}

// End closes the meeting and renders the MoM
// POST /api/meetings/:id/end
func (h *Meeting) End(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.End(c.Request().Context(), middleware.Actor(c), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, echo.Map{
		"id":         id.String(),
		"endedAt":    result.Meeting.EndedAt,
		"insights":   result.Meeting.Insights,
		"attendance": result.Attendance,
		"mom":        result.Meeting.Mom,
	})
}

// RecomputeInsights re-runs the full analysis over the note log
// POST /api/meetings/:id/insights
func (h *Meeting) RecomputeInsights(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	bundle, err := h.service.RecomputeInsights(c.Request().Context(), middleware.Actor(c), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, bundle)
}

// CreateShare creates (or returns) the MoM share link
// POST /api/meetings/:id/share-mom
func (h *Meeting) CreateShare(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	share, err := h.service.CreateShare(c.Request().Context(), middleware.Actor(c), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, &meetingdto.ShareResponse{
		ID:        share.ID,
		CreatedAt: share.CreatedAt,
		URL:       shareURL(c, share.ID),
	})
}

// GetShare returns the existing MoM share link
// GET /api/meetings/:id/share-mom
func (h *Meeting) GetShare(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	share, err := h.service.GetShare(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, &meetingdto.ShareResponse{
		ID:        share.ID,
		CreatedAt: share.CreatedAt,
		URL:       shareURL(c, share.ID),
	})
}

// SendMom queues the MoM for email delivery
// POST /api/meetings/:id/send-mom
func (h *Meeting) SendMom(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.SendMomRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrFromEmailRequired())
	}

	actor := middleware.Actor(c)
	share, err := h.service.CreateShare(c.Request().Context(), actor, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	jobID, err := h.service.SendMom(c.Request().Context(), actor, id, req.FromEmail, shareURL(c, share.ID))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleAccepted(h.logger, c, echo.Map{
		"message": "MoM queued for sending",
		"jobId":   jobID.String(),
	})
}

// QueueReminders queues action item reminder emails
// POST /api/meetings/:id/reminders
func (h *Meeting) QueueReminders(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.QueueRemindersRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrFromEmailRequired())
	}
	if req.DaysAhead == 0 {
		req.DaysAhead = 1
	}

	jobIDs, err := h.service.QueueReminders(c.Request().Context(), middleware.Actor(c), id, req.FromEmail, req.DaysAhead)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	ids := make([]string, 0, len(jobIDs))
	for _, jobID := range jobIDs {
		ids = append(ids, jobID.String())
	}
	return HandleAccepted(h.logger, c, echo.Map{
		"message": "Reminders queued",
		"jobIds":  ids,
	})
}

// ListVersions returns the stored MoM versions
// GET /api/meetings/:id/versions
func (h *Meeting) ListVersions(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	versions, err := h.service.ListVersions(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, echo.Map{
		"id":       id.String(),
		"versions": versions,
	})
}

// DiffVersions compares two stored MoM versions
// POST /api/meetings/:id/versions/diff
func (h *Meeting) DiffVersions(c echo.Context) error {
	id, err := meetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.DiffVersionsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}

	versionA, err := uuid.Parse(req.VersionA)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrVersionNotFound(req.VersionA))
	}
	versionB, err := uuid.Parse(req.VersionB)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrVersionNotFound(req.VersionB))
	}

	diff, err := h.service.DiffVersions(c.Request().Context(), id, versionA, versionB)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, diff)
}

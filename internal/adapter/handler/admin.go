package handler

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	authdto "github.com/johnquangdev/mom-ai/internal/adapter/dto/auth"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/domain/repositories"
	"github.com/johnquangdev/mom-ai/internal/usecase/auth"
)

const (
	jobListLimit      = 100
	auditDefaultLimit = 100
	auditMaxLimit     = 500
)

// Admin handles admin-only HTTP requests
type Admin struct {
	authService   *auth.Service
	meetingRepo   repositories.MeetingRepository
	jobRepo       repositories.JobRepository
	auditRepo     repositories.AuditRepository
	analyticsRepo repositories.AnalyticsRepository
	logger        *zap.Logger
}

// NewAdmin creates a new admin handler
func NewAdmin(
	authService *auth.Service,
	meetingRepo repositories.MeetingRepository,
	jobRepo repositories.JobRepository,
	auditRepo repositories.AuditRepository,
	analyticsRepo repositories.AnalyticsRepository,
	logger *zap.Logger,
) *Admin {
	return &Admin{
		authService:   authService,
		meetingRepo:   meetingRepo,
		jobRepo:       jobRepo,
		auditRepo:     auditRepo,
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

// Analytics returns usage counters and queue depth
// GET /api/admin/analytics
func (h *Admin) Analytics(c echo.Context) error {
	ctx := c.Request().Context()

	snapshot, err := h.analyticsRepo.Snapshot(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingCount, err := h.meetingRepo.Count(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	queuedJobs, err := h.jobRepo.CountByStatus(ctx, entities.EmailJobStatusQueued)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, echo.Map{
		"analytics":    snapshot,
		"meetingCount": meetingCount,
		"queuedJobs":   queuedJobs,
	})
}

// Audit returns recent audit events, newest first
// GET /api/admin/audit?limit=N
func (h *Admin) Audit(c echo.Context) error {
	limit := auditDefaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > auditMaxLimit {
		limit = auditMaxLimit
	}

	logs, err := h.auditRepo.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, echo.Map{"logs": logs})
}

// ListUsers returns all accounts
// GET /api/admin/users
func (h *Admin) ListUsers(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out := make([]*authdto.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, authdto.NewUserResponse(user))
	}
	return HandleSuccess(h.logger, c, echo.Map{"users": out})
}

// CreateUser registers a new account
// POST /api/admin/users
func (h *Admin) CreateUser(c echo.Context) error {
	var req authdto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("email and password are required"))
	}

	user, err := h.authService.CreateUser(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, echo.Map{"user": authdto.NewUserResponse(user)})
}

// ListJobs returns the most recent email jobs, newest first
// GET /api/admin/jobs
func (h *Admin) ListJobs(c echo.Context) error {
	jobs, err := h.jobRepo.ListRecent(c.Request().Context(), jobListLimit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, echo.Map{"jobs": jobs})
}

// GetJob returns one email job
// GET /api/admin/jobs/:id
func (h *Admin) GetJob(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrJobNotFound(c.Param("id")))
	}

	job, err := h.jobRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, echo.Map{"job": job})
}

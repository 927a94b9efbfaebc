package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	authdto "github.com/johnquangdev/mom-ai/internal/adapter/dto/auth"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/mom-ai/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Login verifies credentials and issues a bearer token
// POST /api/auth/login
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &authdto.LoginResponse{
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
		TokenType: "Bearer",
		User:      authdto.NewUserResponse(result.User),
	})
}

// Me returns the authenticated user
// GET /api/auth/me
func (h *Auth) Me(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	return HandleSuccess(h.logger, c, authdto.NewUserResponse(user))
}

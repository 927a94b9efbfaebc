package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/domain/repositories"
	"github.com/johnquangdev/mom-ai/pkg/jwt"
)

// Default bootstrap admin credentials, overridable via config.
const (
	DefaultAdminEmail    = "admin@mom.local"
	DefaultAdminPassword = "admin12345"
)

// Service handles password authentication and account management
type Service struct {
	userRepo      repositories.UserRepository
	auditRepo     repositories.AuditRepository
	analyticsRepo repositories.AnalyticsRepository
	jwtManager    *jwt.Manager
	logger        *zap.Logger
}

// NewService creates a new auth service
func NewService(
	userRepo repositories.UserRepository,
	auditRepo repositories.AuditRepository,
	analyticsRepo repositories.AnalyticsRepository,
	jwtManager *jwt.Manager,
	logger *zap.Logger,
) *Service {
	return &Service{
		userRepo:      userRepo,
		auditRepo:     auditRepo,
		analyticsRepo: analyticsRepo,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// LoginResponse carries the issued token and its lifetime.
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresIn int64          `json:"expires_in"`
	User      *entities.User `json:"user"`
}

// Login verifies credentials and issues an access token.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials()
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		var appErr apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrorCode_AUTH_USER_NOT_FOUND {
			return nil, apperrors.ErrInvalidCredentials()
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials()
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	user, err = s.userRepo.Update(ctx, user.ID, func(u *entities.User) error {
		now := time.Now().UTC()
		u.LastLoginAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.analyticsRepo.Bump(ctx, "authLogins", 1); err != nil {
		s.logger.Error("failed to bump authLogins", zap.Error(err))
	}
	s.recordAudit(ctx, user.Email, "auth.login", map[string]string{"email": user.Email})

	return &LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtManager.GetExpiry().Seconds()),
		User:      user,
	}, nil
}

// CreateUser registers an account with a bcrypt password hash.
func (s *Service) CreateUser(ctx context.Context, email, password, role string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 {
		return nil, apperrors.ErrInvalidArgument("email and a password of at least 8 characters are required")
	}
	if role != entities.UserRoleAdmin && role != entities.UserRoleMember {
		role = entities.UserRoleMember
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	user := entities.NewUser(email, role)
	user.PasswordHash = string(hash)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, "", "auth.user_created", map[string]string{
		"email": user.Email,
		"role":  user.Role,
	})
	return user, nil
}

// BootstrapAdmin seeds the first admin account when the user store is
// empty. Safe to call on every startup.
func (s *Service) BootstrapAdmin(ctx context.Context, email, password string) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if email == "" {
		email = DefaultAdminEmail
	}
	if password == "" {
		password = DefaultAdminPassword
	}

	user, err := s.CreateUser(ctx, email, password, entities.UserRoleAdmin)
	if err != nil {
		return err
	}

	s.recordAudit(ctx, "", "auth.bootstrap_admin", map[string]string{"email": user.Email})
	s.logger.Info("✅ bootstrap admin created", zap.String("email", user.Email))
	return nil
}

// ValidateToken parses the token and resolves its user against the store.
func (s *Service) ValidateToken(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken()
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil || user.Email != claims.Email {
		return nil, apperrors.ErrInvalidToken()
	}
	return user, nil
}

// ListUsers returns all accounts.
func (s *Service) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.List(ctx)
}

func (s *Service) recordAudit(ctx context.Context, actor, action string, details map[string]string) {
	if err := s.auditRepo.Append(ctx, entities.NewAuditEvent(actor, action, nil, details)); err != nil {
		s.logger.Error("failed to record audit event", zap.Error(err))
	}
}

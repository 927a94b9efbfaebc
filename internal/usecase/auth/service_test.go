package auth

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	"github.com/johnquangdev/mom-ai/internal/adapter/repository"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/persistence"
	"github.com/johnquangdev/mom-ai/pkg/jwt"
)

func newAuthService(t *testing.T) *Service {
	t.Helper()

	store, err := persistence.NewFileStore(t.TempDir())
	require.NoError(t, err)

	return NewService(
		repository.NewUserRepository(store),
		repository.NewAuditRepository(store),
		repository.NewAnalyticsRepository(store),
		jwt.NewManager("test-secret", time.Hour),
		zap.NewNop(),
	)
}

func authCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	var appErr apperrors.AppError
	require.True(t, stderrors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func TestBootstrapAdminSeedsFirstAccount(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, s.BootstrapAdmin(ctx, "", ""))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, DefaultAdminEmail, users[0].Email)
	assert.Equal(t, entities.UserRoleAdmin, users[0].Role)

	// A second bootstrap is a no-op once any account exists.
	require.NoError(t, s.BootstrapAdmin(ctx, "other@mom.local", "password123"))
	users, err = s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLogin(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()
	require.NoError(t, s.BootstrapAdmin(ctx, "", ""))

	resp, err := s.Login(ctx, "  ADMIN@mom.local ", DefaultAdminPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, DefaultAdminEmail, resp.User.Email)
	assert.NotNil(t, resp.User.LastLoginAt)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()
	require.NoError(t, s.BootstrapAdmin(ctx, "", ""))

	_, err := s.Login(ctx, DefaultAdminEmail, "wrong-password")
	assert.Equal(t, apperrors.ErrorCode_AUTH_INVALID_CREDENTIALS, authCode(t, err))

	// Unknown accounts are indistinguishable from wrong passwords.
	_, err = s.Login(ctx, "nobody@mom.local", "whatever123")
	assert.Equal(t, apperrors.ErrorCode_AUTH_INVALID_CREDENTIALS, authCode(t, err))

	_, err = s.Login(ctx, "", "")
	assert.Equal(t, apperrors.ErrorCode_AUTH_INVALID_CREDENTIALS, authCode(t, err))
}

func TestCreateUserValidation(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "member@mom.local", "short", entities.UserRoleMember)
	assert.Equal(t, apperrors.ErrorCode_INVALID_ARGUMENT, authCode(t, err))

	user, err := s.CreateUser(ctx, "Member@Mom.Local", "password123", "bogus-role")
	require.NoError(t, err)
	assert.Equal(t, "member@mom.local", user.Email)
	assert.Equal(t, entities.UserRoleMember, user.Role)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "password123", user.PasswordHash)

	_, err = s.CreateUser(ctx, "member@mom.local", "password123", entities.UserRoleMember)
	assert.Equal(t, apperrors.ErrorCode_AUTH_USER_ALREADY_EXISTS, authCode(t, err))
}

func TestValidateToken(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "member@mom.local", "password123", entities.UserRoleMember)
	require.NoError(t, err)

	resp, err := s.Login(ctx, user.Email, "password123")
	require.NoError(t, err)

	resolved, err := s.ValidateToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, user.Email, resolved.Email)

	_, err = s.ValidateToken(ctx, "garbage")
	assert.Equal(t, apperrors.ErrorCode_AUTH_INVALID_TOKEN, authCode(t, err))
}

func TestValidateTokenRejectsDeletedUser(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	// Token minted for a user the store has never seen.
	token, err := jwt.NewManager("test-secret", time.Hour).GenerateToken(entities.NewUser("ghost@mom.local", "").ID, "ghost@mom.local", "member")
	require.NoError(t, err)

	_, err = s.ValidateToken(ctx, token)
	assert.Equal(t, apperrors.ErrorCode_AUTH_INVALID_TOKEN, authCode(t, err))
}

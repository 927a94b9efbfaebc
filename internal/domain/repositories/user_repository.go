package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// UserRepository manages authenticated accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*entities.User) error) (*entities.User, error)
	Count(ctx context.Context) (int, error)
}

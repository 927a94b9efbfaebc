package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/domain/repositories"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/persistence"
)

// UserRepository is the file-backed account store.
type UserRepository struct {
	store *persistence.FileStore
}

// NewUserRepository creates a user repository over the file store.
func NewUserRepository(store *persistence.FileStore) *UserRepository {
	return &UserRepository{store: store}
}

var _ repositories.UserRepository = (*UserRepository)(nil)

// Create registers a user, rejecting duplicate emails.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	return r.store.Mutate(func(db *persistence.Database) error {
		for _, u := range db.Users {
			if u.Email == user.Email {
				return apperrors.ErrUserAlreadyExists(user.Email)
			}
		}
		db.Users = append(db.Users, user)
		return nil
	})
}

// GetByID returns the user or a typed not-found rejection.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var found *entities.User
	r.store.View(func(db *persistence.Database) {
		for _, u := range db.Users {
			if u.ID == id {
				found = u
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrUserNotFound()
	}
	return found, nil
}

// GetByEmail looks a user up by normalized email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var found *entities.User
	r.store.View(func(db *persistence.Database) {
		for _, u := range db.Users {
			if u.Email == email {
				found = u
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrUserNotFound()
	}
	return found, nil
}

// List returns all users in creation order.
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	r.store.View(func(db *persistence.Database) {
		users = append([]*entities.User{}, db.Users...)
	})
	return users, nil
}

// Update applies fn to a clone of the user and publishes it on success.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, fn func(*entities.User) error) (*entities.User, error) {
	var updated *entities.User
	err := r.store.Mutate(func(db *persistence.Database) error {
		for i, u := range db.Users {
			if u.ID == id {
				work, err := cloneRecord(u)
				if err != nil {
					return err
				}
				if err := fn(work); err != nil {
					return err
				}
				db.Users[i] = work
				updated = work
				return nil
			}
		}
		return apperrors.ErrUserNotFound()
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Count returns the number of stored users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	count := 0
	r.store.View(func(db *persistence.Database) {
		count = len(db.Users)
	})
	return count, nil
}

package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/domain/repositories"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/persistence"
)

// MeetingRepository is the file-backed meeting registry. Update serializes
// mutations per meeting id with a dedicated lock per key and applies the
// callback to a clone that is published only on success, so every pointer a
// read hands out is an immutable snapshot.
type MeetingRepository struct {
	store *persistence.FileStore

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewMeetingRepository creates a meeting repository over the file store.
func NewMeetingRepository(store *persistence.FileStore) *MeetingRepository {
	return &MeetingRepository{
		store: store,
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

var _ repositories.MeetingRepository = (*MeetingRepository)(nil)

func (r *MeetingRepository) lockFor(id uuid.UUID) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[id] = lock
	}
	return lock
}

// Create registers a new meeting aggregate.
func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.store.Mutate(func(db *persistence.Database) error {
		db.Meetings = append(db.Meetings, meeting)
		return nil
	})
}

// GetByID returns the meeting or a typed not-found rejection.
func (r *MeetingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var found *entities.Meeting
	r.store.View(func(db *persistence.Database) {
		for _, m := range db.Meetings {
			if m.ID == id {
				found = m
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrMeetingNotFound(id.String())
	}
	return found, nil
}

// Update applies fn to a clone of the meeting under its per-key lock and
// publishes the clone on success. A failing fn leaves the stored meeting
// and the snapshot file untouched.
func (r *MeetingRepository) Update(ctx context.Context, id uuid.UUID, fn func(*entities.Meeting) error) (*entities.Meeting, error) {
	lock := r.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	var updated *entities.Meeting
	err := r.store.Mutate(func(db *persistence.Database) error {
		for i, m := range db.Meetings {
			if m.ID == id {
				work, err := cloneRecord(m)
				if err != nil {
					return err
				}
				if err := fn(work); err != nil {
					return err
				}
				db.Meetings[i] = work
				updated = work
				return nil
			}
		}
		return apperrors.ErrMeetingNotFound(id.String())
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetByShareID resolves a meeting through its public share handle.
func (r *MeetingRepository) GetByShareID(ctx context.Context, shareID string) (*entities.Meeting, error) {
	var found *entities.Meeting
	r.store.View(func(db *persistence.Database) {
		for _, m := range db.Meetings {
			if m.MomShare != nil && m.MomShare.ID == shareID {
				found = m
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrShareNotFound()
	}
	return found, nil
}

// Count returns the number of stored meetings.
func (r *MeetingRepository) Count(ctx context.Context) (int, error) {
	count := 0
	r.store.View(func(db *persistence.Database) {
		count = len(db.Meetings)
	})
	return count, nil
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/domain/repositories"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/persistence"
)

// JobRepository is the file-backed email job queue.
type JobRepository struct {
	store *persistence.FileStore
}

// NewJobRepository creates a job repository over the file store.
func NewJobRepository(store *persistence.FileStore) *JobRepository {
	return &JobRepository{store: store}
}

var _ repositories.JobRepository = (*JobRepository)(nil)

// Enqueue appends a job to the queue.
func (r *JobRepository) Enqueue(ctx context.Context, job *entities.EmailJob) error {
	return r.store.Mutate(func(db *persistence.Database) error {
		db.Jobs = append(db.Jobs, job)
		return nil
	})
}

// GetByID returns the job or a typed not-found rejection.
func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.EmailJob, error) {
	var found *entities.EmailJob
	r.store.View(func(db *persistence.Database) {
		for _, j := range db.Jobs {
			if j.ID == id {
				found = j
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrJobNotFound(id.String())
	}
	return found, nil
}

// NextRunnable returns the oldest queued job due at or before now.
func (r *JobRepository) NextRunnable(ctx context.Context, now time.Time) (*entities.EmailJob, error) {
	var found *entities.EmailJob
	r.store.View(func(db *persistence.Database) {
		for _, j := range db.Jobs {
			if j.Runnable(now) {
				found = j
				return
			}
		}
	})
	return found, nil
}

// Update applies fn to a clone of the job and publishes it on success.
func (r *JobRepository) Update(ctx context.Context, id uuid.UUID, fn func(*entities.EmailJob) error) (*entities.EmailJob, error) {
	var updated *entities.EmailJob
	err := r.store.Mutate(func(db *persistence.Database) error {
		for i, j := range db.Jobs {
			if j.ID == id {
				work, err := cloneRecord(j)
				if err != nil {
					return err
				}
				if err := fn(work); err != nil {
					return err
				}
				db.Jobs[i] = work
				updated = work
				return nil
			}
		}
		return apperrors.ErrJobNotFound(id.String())
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListRecent returns up to limit jobs, newest first.
func (r *JobRepository) ListRecent(ctx context.Context, limit int) ([]*entities.EmailJob, error) {
	var jobs []*entities.EmailJob
	r.store.View(func(db *persistence.Database) {
		start := 0
		if len(db.Jobs) > limit {
			start = len(db.Jobs) - limit
		}
		recent := db.Jobs[start:]
		jobs = make([]*entities.EmailJob, 0, len(recent))
		for i := len(recent) - 1; i >= 0; i-- {
			jobs = append(jobs, recent[i])
		}
	})
	return jobs, nil
}

// CountByStatus counts jobs currently in the given status.
func (r *JobRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	count := 0
	r.store.View(func(db *persistence.Database) {
		for _, j := range db.Jobs {
			if j.Status == status {
				count++
			}
		}
	})
	return count, nil
}

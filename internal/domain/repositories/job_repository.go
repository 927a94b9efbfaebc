package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// JobRepository manages the outbound email job queue.
type JobRepository interface {
	Enqueue(ctx context.Context, job *entities.EmailJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.EmailJob, error)
	// NextRunnable returns the oldest queued job due at or before now,
	// or nil when nothing is runnable.
	NextRunnable(ctx context.Context, now time.Time) (*entities.EmailJob, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*entities.EmailJob) error) (*entities.EmailJob, error)
	ListRecent(ctx context.Context, limit int) ([]*entities.EmailJob, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

// AuditRepository appends to and reads the bounded audit trail.
type AuditRepository interface {
	Append(ctx context.Context, event entities.AuditEvent) error
	ListRecent(ctx context.Context, limit int) ([]entities.AuditEvent, error)
}

// AnalyticsRepository tracks usage counters.
type AnalyticsRepository interface {
	Bump(ctx context.Context, metric string, delta int) error
	Snapshot(ctx context.Context) (entities.Analytics, error)
}

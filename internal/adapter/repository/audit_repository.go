package repository

import (
	"context"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/domain/repositories"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/persistence"
)

// AuditRepository is the file-backed bounded audit trail.
type AuditRepository struct {
	store *persistence.FileStore
}

// NewAuditRepository creates an audit repository over the file store.
func NewAuditRepository(store *persistence.FileStore) *AuditRepository {
	return &AuditRepository{store: store}
}

var _ repositories.AuditRepository = (*AuditRepository)(nil)

// Append records an event and trims the trail to its retention limit.
func (r *AuditRepository) Append(ctx context.Context, event entities.AuditEvent) error {
	return r.store.Mutate(func(db *persistence.Database) error {
		db.AuditLogs = append(db.AuditLogs, event)
		if len(db.AuditLogs) > entities.AuditLogLimit {
			db.AuditLogs = db.AuditLogs[len(db.AuditLogs)-entities.AuditLogLimit:]
		}
		return nil
	})
}

// ListRecent returns up to limit events, newest first.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]entities.AuditEvent, error) {
	var events []entities.AuditEvent
	r.store.View(func(db *persistence.Database) {
		start := 0
		if len(db.AuditLogs) > limit {
			start = len(db.AuditLogs) - limit
		}
		recent := db.AuditLogs[start:]
		events = make([]entities.AuditEvent, 0, len(recent))
		for i := len(recent) - 1; i >= 0; i-- {
			events = append(events, recent[i])
		}
	})
	return events, nil
}

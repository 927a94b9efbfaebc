package repository

import (
	"context"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/domain/repositories"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/persistence"
)

// Metric names accepted by Bump.
const (
	MetricMeetingCreated   = "meetingCreated"
	MetricMeetingEnded     = "meetingEnded"
	MetricNotesCreated     = "notesCreated"
	MetricTranscriptChunks = "transcriptChunks"
	MetricMomsQueued       = "momsQueued"
	MetricMomsSent         = "momsSent"
	MetricAuthLogins       = "authLogins"
)

// AnalyticsRepository is the file-backed usage counter store.
type AnalyticsRepository struct {
	store *persistence.FileStore
}

// NewAnalyticsRepository creates an analytics repository over the file store.
func NewAnalyticsRepository(store *persistence.FileStore) *AnalyticsRepository {
	return &AnalyticsRepository{store: store}
}

var _ repositories.AnalyticsRepository = (*AnalyticsRepository)(nil)

// Bump adds delta to the named counter.
func (r *AnalyticsRepository) Bump(ctx context.Context, metric string, delta int) error {
	return r.store.Mutate(func(db *persistence.Database) error {
		switch metric {
		case MetricMeetingCreated:
			db.Analytics.MeetingCreated += delta
		case MetricMeetingEnded:
			db.Analytics.MeetingEnded += delta
		case MetricNotesCreated:
			db.Analytics.NotesCreated += delta
		case MetricTranscriptChunks:
			db.Analytics.TranscriptChunks += delta
		case MetricMomsQueued:
			db.Analytics.MomsQueued += delta
		case MetricMomsSent:
			db.Analytics.MomsSent += delta
		case MetricAuthLogins:
			db.Analytics.AuthLogins += delta
		default:
			return apperrors.ErrInvalidArgument("unknown analytics metric: " + metric)
		}
		return nil
	})
}

// Snapshot returns the current counter values.
func (r *AnalyticsRepository) Snapshot(ctx context.Context) (entities.Analytics, error) {
	var snapshot entities.Analytics
	r.store.View(func(db *persistence.Database) {
		snapshot = db.Analytics
	})
	return snapshot, nil
}

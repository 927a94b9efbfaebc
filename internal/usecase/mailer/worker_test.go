package mailer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-ai/internal/adapter/repository"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/persistence"
)

type stubSender struct {
	mu         sync.Mutex
	configured bool
	err        error
	sent       []entities.EmailPayload
}

func (s *stubSender) Configured() bool { return s.configured }

func (s *stubSender) Send(ctx context.Context, payload entities.EmailPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, payload)
	return nil
}

type workerFixture struct {
	worker        *Worker
	jobRepo       *repository.JobRepository
	auditRepo     *repository.AuditRepository
	analyticsRepo *repository.AnalyticsRepository
	sender        *stubSender
}

func newWorkerFixture(t *testing.T, sender *stubSender) *workerFixture {
	t.Helper()

	store, err := persistence.NewFileStore(t.TempDir())
	require.NoError(t, err)

	jobRepo := repository.NewJobRepository(store)
	auditRepo := repository.NewAuditRepository(store)
	analyticsRepo := repository.NewAnalyticsRepository(store)

	return &workerFixture{
		worker:        NewWorker(jobRepo, auditRepo, analyticsRepo, sender, zap.NewNop(), time.Second),
		jobRepo:       jobRepo,
		auditRepo:     auditRepo,
		analyticsRepo: analyticsRepo,
		sender:        sender,
	}
}

func queueJob(t *testing.T, f *workerFixture, maxRetries int) *entities.EmailJob {
	t.Helper()
	job := entities.NewEmailJob(entities.EmailJobTypeSendMom, entities.EmailPayload{
		FromEmail: "noreply@example.com",
		To:        []string{"pm@example.com"},
		Subject:   "Minutes of Meeting: Weekly Sync",
		Text:      "body",
	}, maxRetries)
	require.NoError(t, f.jobRepo.Enqueue(context.Background(), job))
	return job
}

func TestWorkerDeliversJob(t *testing.T) {
	sender := &stubSender{configured: true}
	f := newWorkerFixture(t, sender)
	ctx := context.Background()

	job := queueJob(t, f, 3)
	f.worker.Tick(ctx)

	stored, err := f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.EmailJobStatusSucceeded, stored.Status)
	assert.Equal(t, 1, stored.Attempts)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Minutes of Meeting: Weekly Sync", sender.sent[0].Subject)

	snapshot, err := f.analyticsRepo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.MomsSent)

	events, err := f.auditRepo.ListRecent(ctx, 5)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, "job.succeeded", events[0].Action)
	assert.Equal(t, "false", events[0].Details["previewOnly"])
}

func TestWorkerPreviewModeWithoutSMTP(t *testing.T) {
	sender := &stubSender{configured: false}
	f := newWorkerFixture(t, sender)
	ctx := context.Background()

	job := queueJob(t, f, 3)
	f.worker.Tick(ctx)

	stored, err := f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.EmailJobStatusSucceeded, stored.Status)
	assert.Empty(t, sender.sent)

	events, err := f.auditRepo.ListRecent(ctx, 5)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, "job.succeeded", events[0].Action)
	assert.Equal(t, "true", events[0].Details["previewOnly"])
}

func TestWorkerRequeuesOnFailure(t *testing.T) {
	sender := &stubSender{configured: true, err: errors.New("smtp unavailable")}
	f := newWorkerFixture(t, sender)
	ctx := context.Background()

	job := queueJob(t, f, 3)
	f.worker.Tick(ctx)

	stored, err := f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.EmailJobStatusQueued, stored.Status)
	assert.Equal(t, 1, stored.Attempts)
	assert.Equal(t, "smtp unavailable", stored.Error)
	assert.True(t, stored.NextAttemptAt.After(time.Now().UTC()))

	// Not runnable again until the backoff elapses.
	f.worker.Tick(ctx)
	stored, err = f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Attempts)

	events, err := f.auditRepo.ListRecent(ctx, 5)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, "job.retry", events[0].Action)
	assert.Equal(t, "1", events[0].Details["attempts"])
}

func TestWorkerFailsAfterMaxRetries(t *testing.T) {
	sender := &stubSender{configured: true, err: errors.New("permanent refusal")}
	f := newWorkerFixture(t, sender)
	ctx := context.Background()

	job := queueJob(t, f, 1)
	f.worker.Tick(ctx)

	stored, err := f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.EmailJobStatusFailed, stored.Status)
	assert.Equal(t, "permanent refusal", stored.Error)

	events, err := f.auditRepo.ListRecent(ctx, 5)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, "job.failed", events[0].Action)

	// A failed job never runs again.
	f.worker.Tick(ctx)
	stored, err = f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Attempts)
}

func TestWorkerTickWithEmptyQueue(t *testing.T) {
	f := newWorkerFixture(t, &stubSender{configured: true})

	// No jobs queued: a tick is a no-op.
	f.worker.Tick(context.Background())

	jobs, err := f.jobRepo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestWorkerProcessesDueRemindersOnly(t *testing.T) {
	sender := &stubSender{configured: true}
	f := newWorkerFixture(t, sender)
	ctx := context.Background()

	future := entities.NewEmailJob(entities.EmailJobTypeActionReminder, entities.EmailPayload{
		To:      []string{"pm@example.com"},
		Subject: "Reminder: Action Item from Weekly Sync",
	}, 3)
	future.NextAttemptAt = time.Now().UTC().Add(24 * time.Hour)
	require.NoError(t, f.jobRepo.Enqueue(ctx, future))

	f.worker.Tick(ctx)

	stored, err := f.jobRepo.GetByID(ctx, future.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.EmailJobStatusQueued, stored.Status)
	assert.Zero(t, stored.Attempts)
	assert.Empty(t, sender.sent)
}

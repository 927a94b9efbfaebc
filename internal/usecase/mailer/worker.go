package mailer

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
	"github.com/johnquangdev/mom-ai/internal/domain/repositories"
)

// DefaultWorkerInterval is how often the queue is polled for runnable jobs.
const DefaultWorkerInterval = 2 * time.Second

// Worker drains the email job queue one job per tick. Ticks never overlap;
// a tick that finds the worker busy returns immediately.
type Worker struct {
	jobRepo       repositories.JobRepository
	auditRepo     repositories.AuditRepository
	analyticsRepo repositories.AnalyticsRepository
	sender        Sender
	logger        *zap.Logger
	interval      time.Duration

	busy atomic.Bool
}

// NewWorker creates a queue worker. A non-positive interval falls back to
// the default.
func NewWorker(
	jobRepo repositories.JobRepository,
	auditRepo repositories.AuditRepository,
	analyticsRepo repositories.AnalyticsRepository,
	sender Sender,
	logger *zap.Logger,
	interval time.Duration,
) *Worker {
	if interval <= 0 {
		interval = DefaultWorkerInterval
	}
	return &Worker{
		jobRepo:       jobRepo,
		auditRepo:     auditRepo,
		analyticsRepo: analyticsRepo,
		sender:        sender,
		logger:        logger,
		interval:      interval,
	}
}

// Run polls the queue until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("email queue worker started", zap.Duration("interval", w.interval))
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("email queue worker stopped")
			return
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick processes at most one runnable job. Exported so tests and admin
// endpoints can drive the queue without the polling loop.
func (w *Worker) Tick(ctx context.Context) {
	if !w.busy.CompareAndSwap(false, true) {
		return
	}
	defer w.busy.Store(false)

	job, err := w.jobRepo.NextRunnable(ctx, time.Now().UTC())
	if err != nil {
		w.logger.Error("failed to poll job queue", zap.Error(err))
		return
	}
	if job == nil {
		return
	}

	job, err = w.jobRepo.Update(ctx, job.ID, func(j *entities.EmailJob) error {
		j.MarkProcessing()
		return nil
	})
	if err != nil {
		w.logger.Error("failed to mark job processing", zap.Error(err))
		return
	}

	w.process(ctx, job)
}

func (w *Worker) process(ctx context.Context, job *entities.EmailJob) {
	meetingID := job.Payload.MeetingID

	if !w.sender.Configured() {
		// No relay configured: the job is considered delivered in preview
		// mode so local setups work without SMTP credentials.
		w.finishSuccess(ctx, job, true)
		return
	}

	if err := w.sender.Send(ctx, job.Payload); err != nil {
		if job.Attempts >= job.MaxRetries {
			if _, uerr := w.jobRepo.Update(ctx, job.ID, func(j *entities.EmailJob) error {
				j.MarkFailed(err.Error())
				return nil
			}); uerr != nil {
				w.logger.Error("failed to mark job failed", zap.Error(uerr))
			}
			w.audit(ctx, "job.failed", &meetingID, map[string]string{
				"jobId": job.ID.String(),
				"error": err.Error(),
			})
			w.logger.Error("❌ email job exhausted retries",
				zap.String("job_id", job.ID.String()),
				zap.Error(err),
			)
			return
		}

		if _, uerr := w.jobRepo.Update(ctx, job.ID, func(j *entities.EmailJob) error {
			j.MarkRetry(err.Error())
			return nil
		}); uerr != nil {
			w.logger.Error("failed to re-queue job", zap.Error(uerr))
		}
		w.audit(ctx, "job.retry", &meetingID, map[string]string{
			"jobId":    job.ID.String(),
			"error":    err.Error(),
			"attempts": strconv.Itoa(job.Attempts),
		})
		w.logger.Warn("email job re-queued",
			zap.String("job_id", job.ID.String()),
			zap.Int("attempts", job.Attempts),
			zap.Error(err),
		)
		return
	}

	w.finishSuccess(ctx, job, false)
}

func (w *Worker) finishSuccess(ctx context.Context, job *entities.EmailJob, previewOnly bool) {
	meetingID := job.Payload.MeetingID

	if _, err := w.jobRepo.Update(ctx, job.ID, func(j *entities.EmailJob) error {
		j.MarkSuccess()
		return nil
	}); err != nil {
		w.logger.Error("failed to mark job succeeded", zap.Error(err))
		return
	}

	if err := w.analyticsRepo.Bump(ctx, "momsSent", 1); err != nil {
		w.logger.Error("failed to bump momsSent", zap.Error(err))
	}
	w.audit(ctx, "job.succeeded", &meetingID, map[string]string{
		"jobId":       job.ID.String(),
		"previewOnly": strconv.FormatBool(previewOnly),
	})
	w.logger.Info("✅ email job delivered",
		zap.String("job_id", job.ID.String()),
		zap.String("type", job.Type),
		zap.Bool("preview_only", previewOnly),
	)
}

func (w *Worker) audit(ctx context.Context, action string, meetingID *uuid.UUID, details map[string]string) {
	if err := w.auditRepo.Append(ctx, entities.NewAuditEvent("", action, meetingID, details)); err != nil {
		w.logger.Error("failed to record audit event", zap.Error(err))
	}
}

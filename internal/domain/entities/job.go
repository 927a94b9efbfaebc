package entities

import (
	"time"

	"github.com/google/uuid"
)

// EmailJobType constants
const (
	EmailJobTypeSendMom        = "send_mom_email"
	EmailJobTypeActionReminder = "action_reminder_email"
)

// EmailJobStatus constants
const (
	EmailJobStatusQueued     = "queued"
	EmailJobStatusProcessing = "processing"
	EmailJobStatusSucceeded  = "succeeded"
	EmailJobStatusFailed     = "failed"
)

// EmailPayload is the deliverable content of an email job.
type EmailPayload struct {
	MeetingID uuid.UUID `json:"meeting_id"`
	FromEmail string    `json:"from_email"`
	To        []string  `json:"to"`
	Subject   string    `json:"subject"`
	Text      string    `json:"text"`
}

// EmailJob is one queued outbound email with retry bookkeeping.
type EmailJob struct {
	ID            uuid.UUID    `json:"id"`
	Type          string       `json:"type"`
	Status        string       `json:"status"`
	Attempts      int          `json:"attempts"`
	MaxRetries    int          `json:"max_retries"`
	NextAttemptAt time.Time    `json:"next_attempt_at"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Error         string       `json:"error,omitempty"`
	Payload       EmailPayload `json:"payload"`
}

// NewEmailJob creates a queued job runnable immediately.
func NewEmailJob(jobType string, payload EmailPayload, maxRetries int) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:            uuid.New(),
		Type:          jobType,
		Status:        EmailJobStatusQueued,
		MaxRetries:    maxRetries,
		NextAttemptAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
		Payload:       payload,
	}
}

// MarkProcessing transitions the job into processing and counts the attempt.
func (j *EmailJob) MarkProcessing() {
	j.Status = EmailJobStatusProcessing
	j.Attempts++
	j.UpdatedAt = time.Now().UTC()
}

// MarkSuccess finalizes the job as delivered.
func (j *EmailJob) MarkSuccess() {
	j.Status = EmailJobStatusSucceeded
	j.Error = ""
	j.UpdatedAt = time.Now().UTC()
}

// MarkRetry re-queues the job with exponential backoff, capped at 60s.
func (j *EmailJob) MarkRetry(errMsg string) {
	j.Status = EmailJobStatusQueued
	j.Error = errMsg
	backoffSeconds := 1 << uint(j.Attempts)
	if backoffSeconds > 60 {
		backoffSeconds = 60
	}
	j.NextAttemptAt = time.Now().UTC().Add(time.Duration(backoffSeconds) * time.Second)
	j.UpdatedAt = time.Now().UTC()
}

// MarkFailed finalizes the job after exhausting retries.
func (j *EmailJob) MarkFailed(errMsg string) {
	j.Status = EmailJobStatusFailed
	j.Error = errMsg
	j.UpdatedAt = time.Now().UTC()
}

// Runnable reports whether the job is due to run at the given instant.
func (j *EmailJob) Runnable(now time.Time) bool {
	return j.Status == EmailJobStatusQueued && !j.NextAttemptAt.After(now)
}

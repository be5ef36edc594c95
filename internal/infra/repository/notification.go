package repository

import (
	"context"
	"time"

	"staybook/internal/infra"
	"staybook/internal/infra/db"

	"github.com/google/uuid"
)

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

const (
	createNotificationJob = `INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

	// SKIP LOCKED lets several relays drain the queue without blocking each other.
	claimNotificationJobs = `SELECT id, kind, topic, payload, attempts FROM notification_jobs
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at, id
LIMIT $2
FOR UPDATE SKIP LOCKED`

	updateNotificationJobStatus = `UPDATE notification_jobs
SET status = $2, last_error = $3, attempts = attempts + 1, run_at = $4, updated_at = now()
WHERE id = $1`
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, createNotificationJob, kind, topic, payload, runAt, JobStatusQueued)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue locks up to limit queued jobs whose run time has come. The locks
// hold until the caller's transaction ends.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx db.DBTX, now time.Time, limit int) ([]NotificationJob, error) {
	rows, err := tx.Query(ctx, claimNotificationJobs, now, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []NotificationJob
	for rows.Next() {
		var j NotificationJob
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, tx db.DBTX, jobID uuid.UUID, status string, lastError *string, nextRun time.Time) error {
	if _, err := tx.Exec(ctx, updateNotificationJobStatus, jobID, status, lastError, nextRun); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}

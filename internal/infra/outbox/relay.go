package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"staybook/internal/infra/repository"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxAttempts = 8
	baseBackoff = time.Second
	maxBackoff  = 5 * time.Minute
)

// Relay moves queued notification_jobs rows to Kafka. Each batch is claimed
// and settled in one transaction, so a crash mid-batch leaves the rows queued
// and they are published again (at-least-once).
type Relay struct {
	pool     *pgxpool.Pool
	jobs     *repository.NotificationRepository
	pub      Publisher
	clock    clock.Clock
	interval time.Duration
	batch    int
	logger   *slog.Logger
}

func NewRelay(pool *pgxpool.Pool, pub Publisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *Relay {
	interval := cfg.Kafka.RelayInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	batch := cfg.Kafka.RelayBatch
	if batch <= 0 {
		batch = 50
	}
	return &Relay{
		pool:     pool,
		jobs:     repository.NewNotificationRepository(),
		pub:      pub,
		clock:    clk,
		interval: interval,
		batch:    batch,
		logger:   logger,
	}
}

// Run drains the outbox every interval until ctx is done.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
			r.logger.Error("outbox relay failed", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RelayOnce publishes one batch and reports how many jobs were sent.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	return shared.RunInTx(ctx, r.pool, func(tx pgx.Tx) (int, error) {
		now := r.clock.Now()
		jobs, err := r.jobs.ClaimDue(ctx, tx, now, r.batch)
		if err != nil {
			return 0, err
		}

		sent := 0
		for _, job := range jobs {
			pubErr := r.pub.Publish(ctx, job.Topic, partitionKey(job.Payload), job.Payload)
			o := settle(job, pubErr, now)
			if pubErr != nil {
				r.logger.Warn("outbox publish failed",
					slog.String("job_id", job.ID.String()),
					slog.String("topic", job.Topic),
					slog.Int("attempt", int(job.Attempts)+1),
					slog.String("status", o.status),
					slog.String("error", pubErr.Error()))
			} else {
				sent++
			}
			if err := r.jobs.UpdateJobStatus(ctx, tx, job.ID, o.status, o.lastError, o.nextRun); err != nil {
				return sent, err
			}
		}
		return sent, nil
	})
}

type outcome struct {
	status    string
	lastError *string
	nextRun   time.Time
}

// settle decides what happens to a job after one publish attempt: sent,
// requeued with exponential backoff, or parked as failed once attempts run out.
func settle(job repository.NotificationJob, pubErr error, now time.Time) outcome {
	if pubErr == nil {
		return outcome{status: repository.JobStatusSent, nextRun: now}
	}
	msg := pubErr.Error()
	attempt := int(job.Attempts) + 1
	if attempt >= maxAttempts {
		return outcome{status: repository.JobStatusFailed, lastError: &msg, nextRun: now}
	}
	wait := baseBackoff << (attempt - 1)
	if wait > maxBackoff {
		wait = maxBackoff
	}
	return outcome{status: repository.JobStatusQueued, lastError: &msg, nextRun: now.Add(wait)}
}

// partitionKey keys booking events by payment so the confirmed and later
// cancelled events of one booking stay ordered.
func partitionKey(payload []byte) []byte {
	var ev struct {
		PaymentID string `json:"payment_id"`
	}
	if err := json.Unmarshal(payload, &ev); err != nil || ev.PaymentID == "" {
		return nil
	}
	return []byte(ev.PaymentID)
}

package repository

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"
)

const recordReconciliation = `INSERT INTO reconciliation_events (intent_id, event_id, payment_id, reason, detail, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

type ReconciliationRepository struct{}

func NewReconciliationRepository() *ReconciliationRepository {
	return &ReconciliationRepository{}
}

func (r *ReconciliationRepository) Record(ctx context.Context, tx db.DBTX, ev shared.ReconciliationEvent) error {
	_, err := tx.Exec(ctx, recordReconciliation,
		ev.IntentID, ev.EventID, pgconv.UUIDPtrToPgtype(ev.PaymentID), string(ev.Reason), ev.Detail, ev.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to record reconciliation event", err)
	}
	return nil
}

package repository

import (
	"context"
	"time"

	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
)

// NotificationRepository writes outbox jobs in the same transaction as the
// state change they announce. A separate worker drains the table; delivery
// and formatting live outside this engine.
type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const createJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, 'queued')`

func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if _, err := dbtx.Exec(ctx, createJobSQL, kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

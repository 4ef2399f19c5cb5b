package repository

import (
	"context"
	"time"

	"miyzapis/internal/infra"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// CreateJob enqueues a delivery job in the same transaction as the
// write that caused it; the delivery worker itself is a separate
// subsystem.
func (r *NotificationRepository) CreateJob(ctx context.Context, db infra.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := db.Exec(ctx, `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)
	`, kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create notification job", err)
	}
	return nil
}

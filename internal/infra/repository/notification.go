package repository

import (
	"context"
	"time"

	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

const insertNotificationJobQuery = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, 'pending')
`

// CreateJob enqueues an outbox row; committing it in the same transaction as
// the state change keeps notifications and bookings consistent.
func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, insertNotificationJobQuery,
		pgconv.UUIDToPgtype(uuid.New()),
		kind,
		topic,
		payload,
		pgconv.TimeToPgtype(runAt),
	)
	if err != nil {
		return wrapPgErr("failed to create notification job", err)
	}
	return nil
}

package notify

import (
	"context"
	"encoding/json"

	"stayhub/internal/domain/verification"
	"stayhub/internal/infra/db"
	"stayhub/internal/infra/repository"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
)

// OutboxSender hands verification codes to the notification outbox; a worker
// outside this service drains the jobs into real email delivery. An insert
// failure is reported as a delivery failure so the caller keeps the prior
// code live.
type OutboxSender struct {
	jobs  *repository.NotificationRepository
	clock clock.Clock
}

func NewOutboxSender(dbtx db.DBTX, clk clock.Clock) *OutboxSender {
	return &OutboxSender{
		jobs:  repository.NewNotificationRepository(dbtx),
		clock: clk,
	}
}

func (s *OutboxSender) Send(ctx context.Context, recipient string, code verification.Code) error {
	payload, err := json.Marshal(map[string]any{
		"recipient":  recipient,
		"code":       code.Value,
		"expires_at": code.ExpiresAt,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode verification payload")
	}
	return s.jobs.CreateJob(ctx, "email", "verification_code", payload, s.clock.Now())
}

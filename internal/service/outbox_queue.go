package service

import (
	"context"
	"encoding/json"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"go.uber.org/zap"
)

// OutboxQueueService feeds the notification publisher: it turns
// unpublished outbox rows into queue jobs and marks them once they
// reach the broker.
type OutboxQueueService interface {
	FindJobsToQueue(ctx context.Context, limit int) ([]NotificationJob, error)
	MarkJobAsQueued(ctx context.Context, outboxID int64) error
}

type outboxQueue struct {
	outboxRepo repository.OutboxRepository
	logger     *zap.Logger
}

func NewOutboxQueueService(outboxRepo repository.OutboxRepository, logger *zap.Logger) OutboxQueueService {
	return &outboxQueue{outboxRepo: outboxRepo, logger: logger}
}

func (o *outboxQueue) FindJobsToQueue(ctx context.Context, limit int) ([]NotificationJob, error) {
	rows, err := o.outboxRepo.FindUnpublished(limit)
	if err != nil {
		o.logger.Error("Failed to find unpublished outbox rows", zap.Error(err))
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	jobs := make([]NotificationJob, 0, len(rows))
	for _, row := range rows {
		var job NotificationJob
		if err := json.Unmarshal([]byte(row.Payload), &job); err != nil {
			// A malformed payload would loop forever, park it as failed.
			o.logger.Error("Malformed outbox payload, marking failed",
				zap.Int64("outboxID", row.ID), zap.Error(err))
			_ = o.outboxRepo.MarkFailed(ctx, row.ID, err.Error())
			continue
		}

		job.OutboxID = row.ID
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func (o *outboxQueue) MarkJobAsQueued(ctx context.Context, outboxID int64) error {
	if err := o.outboxRepo.MarkPublished(ctx, outboxID); err != nil {
		o.logger.Error("Failed to mark outbox row as published",
			zap.Int64("outboxID", outboxID), zap.Error(err))
		return err
	}

	return nil
}

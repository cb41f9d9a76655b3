package publishers

import (
	"context"
	"encoding/json"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/service"
	"github.com/ghallymuhammad/eventhub-project-sub000/pkg/mq"
	"go.uber.org/zap"
)

// QueueNotify is the queue carrying notification jobs from the outbox
// to the dispatch worker.
const QueueNotify = "eventhub.notify"

type NotifyPublisher interface {
	Publish(ctx context.Context) error
}

type notifyPublisher struct {
	service   service.OutboxQueueService
	publisher mq.Publisher
	batchSize int
	logger    *zap.Logger
}

func NewNotifyPublisher(service service.OutboxQueueService, publisher mq.Publisher,
	batchSize int, logger *zap.Logger) NotifyPublisher {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &notifyPublisher{service: service, publisher: publisher, batchSize: batchSize, logger: logger}
}

func (n *notifyPublisher) Publish(ctx context.Context) error {
	jobs, err := n.service.FindJobsToQueue(ctx, n.batchSize)
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		return nil
	}

	n.logger.Info("Publishing notification jobs", zap.Int("count", len(jobs)))

	successCount := 0
	for _, job := range jobs {
		body, _ := json.Marshal(job)
		if err := n.publisher.Publish(ctx, "", QueueNotify, body); err != nil {
			n.logger.Error("Failed to publish notification job",
				zap.Error(err),
				zap.Int64("outboxID", job.OutboxID))
			continue
		}

		if err := n.service.MarkJobAsQueued(ctx, job.OutboxID); err != nil {
			continue
		}

		successCount++
	}

	if successCount > 0 {
		n.logger.Info("Published notification jobs",
			zap.Int("published", successCount),
			zap.Int("total", len(jobs)))
	}

	return nil
}

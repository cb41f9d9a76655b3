package consumers

import (
	"context"
	"encoding/json"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/metrics"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/publishers"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/service"
	"github.com/ghallymuhammad/eventhub-project-sub000/pkg/mq"
	"go.uber.org/zap"
)

type NotifyConsumer interface {
	Consume(ctx context.Context) error
}

type notifyConsumer struct {
	service  service.DispatchService
	consumer mq.Consumer
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewNotifyConsumer(service service.DispatchService, consumer mq.Consumer,
	metrics *metrics.Metrics, logger *zap.Logger) NotifyConsumer {
	return &notifyConsumer{service: service, consumer: consumer, metrics: metrics, logger: logger}
}

func (n *notifyConsumer) Consume(ctx context.Context) error {
	return n.consumer.Consume(ctx, 1, publishers.QueueNotify, n.handleJob)
}

func (n *notifyConsumer) handleJob(ctx context.Context, body []byte) error {
	var job service.NotificationJob
	if err := json.Unmarshal(body, &job); err != nil {
		n.logger.Warn("Invalid notification job", zap.Error(err))
		return err
	}

	err := n.service.Deliver(ctx, job)
	if err != nil {
		n.metrics.NotificationsDispatched.WithLabelValues(job.Kind, "error").Inc()
		return err
	}

	n.metrics.NotificationsDispatched.WithLabelValues(job.Kind, "ok").Inc()
	return nil
}

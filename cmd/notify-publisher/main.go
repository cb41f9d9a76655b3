package main

import (
	"context"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/config"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/database"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/publishers"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/service"
	"github.com/ghallymuhammad/eventhub-project-sub000/pkg/mq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			NewMQConnection,
			NewMQPublisher,

			repository.NewOutboxRepository,

			service.NewOutboxQueueService,

			NewNotifyPublisher,
		),
		fx.Invoke(runNotifyPublisher),
	).Run()
}

func runNotifyPublisher(cfg *config.Config, publisher publishers.NotifyPublisher, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.QueueNotify}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			logger.Info("queue declared", zap.String("queue", publishers.QueueNotify))

			go func() {
				ticker := time.NewTicker(cfg.Publisher.Interval)
				defer ticker.Stop()

				for {
					select {
					case <-ticker.C:
						if err := publisher.Publish(appCtx); err != nil {
							logger.Error("failed to publish notification jobs", zap.Error(err))
						}
					case <-appCtx.Done():
						logger.Info("publisher context cancelled")
						return
					}
				}
			}()

			logger.Info("notify publisher started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping notify publisher")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewNotifyPublisher(cfg *config.Config, svc service.OutboxQueueService, publisher mq.Publisher,
	logger *zap.Logger) publishers.NotifyPublisher {
	return publishers.NewNotifyPublisher(svc, publisher, cfg.Publisher.BatchSize, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}

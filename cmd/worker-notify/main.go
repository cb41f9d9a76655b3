package main

import (
	"context"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/config"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/consumers"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/database"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/metrics"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/publishers"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/service"
	"github.com/ghallymuhammad/eventhub-project-sub000/pkg/mailer"
	"github.com/ghallymuhammad/eventhub-project-sub000/pkg/mq"
	"github.com/ghallymuhammad/eventhub-project-sub000/pkg/ticketart"
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
			NewMQConsumer,
			metrics.NewMetrics,

			repository.NewNotificationRepository,
			repository.NewOutboxRepository,

			NewArtifactGenerator,
			NewMailer,
			service.NewDispatchService,

			consumers.NewNotifyConsumer,
		),
		fx.Invoke(runNotifyConsumer),
	).Run()
}

func runNotifyConsumer(cfg *config.Config, consumer consumers.NotifyConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.QueueNotify}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", publishers.QueueNotify))

			go func() {
				if err := consumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("notify consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping notify consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewArtifactGenerator(cfg *config.Config) service.ArtifactGenerator {
	return ticketart.NewGenerator(cfg.Artifact)
}

func NewMailer(cfg *config.Config) service.Mailer {
	return mailer.NewSMTPMailer(cfg.Mail)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}

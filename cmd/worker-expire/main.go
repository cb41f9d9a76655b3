package main

import (
	"context"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/config"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/database"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/metrics"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			metrics.NewMetrics,

			repository.NewEventRepository,
			repository.NewTicketRepository,
			repository.NewTransactionRepository,
			repository.NewCouponRepository,
			repository.NewUserRepository,
			repository.NewAttendeeRepository,
			repository.NewOutboxRepository,
			repository.NewTransactionManager,

			service.NewInventoryService,
			service.NewRewardsService,
			service.NewFulfillmentService,
			service.NewTransactionService,
		),
		fx.Invoke(runExpireWorker),
	).Run()
}

func runExpireWorker(cfg *config.Config, transactions service.TransactionService, m *metrics.Metrics,
	logger *zap.Logger, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(cfg.Expiry.Interval)
				defer ticker.Stop()

				for {
					select {
					case <-ticker.C:
						expired, err := transactions.ExpireOverdue(appCtx, cfg.Expiry.BatchSize)
						if err != nil {
							logger.Error("expiry sweep failed", zap.Error(err))
						}
						if expired > 0 {
							m.TransactionsExpired.Add(float64(expired))
							logger.Info("expired overdue transactions", zap.Int("count", expired))
						}
					case <-appCtx.Done():
						logger.Info("expire worker context cancelled")
						return
					}
				}
			}()

			logger.Info("expire worker started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping expire worker")
			cancel()
			return nil
		},
	})
}

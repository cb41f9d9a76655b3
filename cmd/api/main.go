package main

import (
	"context"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/api"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/api/middleware"
	v1 "github.com/ghallymuhammad/eventhub-project-sub000/internal/api/v1"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/config"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/database"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/metrics"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/service"
	"github.com/gofiber/fiber/v2"
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
			repository.NewNotificationRepository,
			repository.NewOutboxRepository,
			repository.NewTransactionManager,

			service.NewInventoryService,
			service.NewRewardsService,
			service.NewFulfillmentService,
			service.NewTransactionService,
			service.NewNotificationService,

			NewFiberApp,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func NewFiberApp(m *metrics.Metrics, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))

	return app
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting API server", zap.String("port", cfg.API.Port))
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("API server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

package api

import (
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/api/middleware"
	v1 "github.com/ghallymuhammad/eventhub-project-sub000/internal/api/v1"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	group := app.Group("/v1", middleware.Actor())

	group.Post("/transactions", handler.CreateTransaction)
	group.Get("/transactions", handler.ListTransactions)
	group.Get("/transactions/:id", handler.GetTransaction)
	group.Post("/transactions/:id/proof", handler.UploadProof)
	group.Post("/transactions/:id/confirm", handler.ConfirmTransaction)

	group.Get("/events/:id/transactions", handler.ListEventTransactions)

	group.Get("/notifications", handler.ListNotifications)
	group.Post("/notifications/:id/read", handler.MarkNotificationRead)
}

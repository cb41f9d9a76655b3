package v1

import (
	"strconv"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/api/middleware"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/constants"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/metrics"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Handler struct {
	logger        *zap.Logger
	transactions  service.TransactionService
	notifications service.NotificationService
	metrics       *metrics.Metrics
}

func NewHandler(logger *zap.Logger, transactions service.TransactionService,
	notifications service.NotificationService, metrics *metrics.Metrics) *Handler {
	return &Handler{logger: logger, transactions: transactions, notifications: notifications, metrics: metrics}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreateTransaction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request CreateTransactionRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body", zap.Error(err))
		return badRequestBody(c)
	}

	lines := make([]service.PurchaseLine, 0, len(request.Lines))
	for _, line := range request.Lines {
		lines = append(lines, service.PurchaseLine{TicketID: line.TicketID, Quantity: line.Quantity})
	}

	cmd := service.CreateTransactionCommand{
		UserID:          middleware.ActorID(c),
		EventID:         request.EventID,
		Lines:           lines,
		CouponCode:      request.CouponCode,
		PointsRequested: request.PointsRequested,
	}

	resp, err := h.transactions.Create(ctx, cmd)
	if err != nil {
		return err
	}

	h.metrics.TransactionsCreated.Inc()
	h.logger.Info("Transaction created",
		zap.Int64("transactionID", resp.TransactionID),
		zap.Int64("userID", cmd.UserID))

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *Handler) UploadProof(c *fiber.Ctx) error {
	ctx := c.UserContext()

	transactionID, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	var request UploadProofRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequestBody(c)
	}

	cmd := service.UploadProofCommand{
		TransactionID: transactionID,
		RequesterID:   middleware.ActorID(c),
		ProofRef:      request.ProofRef,
	}

	resp, err := h.transactions.UploadProof(ctx, cmd)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) ConfirmTransaction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	transactionID, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	var request ConfirmTransactionRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequestBody(c)
	}

	cmd := service.ConfirmTransactionCommand{
		TransactionID: transactionID,
		OrganizerID:   middleware.ActorID(c),
		Decision:      request.Decision,
	}

	resp, err := h.transactions.Confirm(ctx, cmd)
	if err != nil {
		return err
	}

	h.metrics.TransactionsConfirmed.WithLabelValues(cmd.Decision).Inc()

	return c.JSON(resp)
}

func (h *Handler) GetTransaction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	transactionID, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	resp, err := h.transactions.GetByID(ctx, transactionID, middleware.ActorID(c))
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) ListTransactions(c *fiber.Ctx) error {
	ctx := c.UserContext()
	limit, offset := pagination(c)

	resp, err := h.transactions.ListByUser(ctx, service.ListTransactionsQuery{
		UserID: middleware.ActorID(c),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) ListEventTransactions(c *fiber.Ctx) error {
	ctx := c.UserContext()

	eventID, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	limit, offset := pagination(c)

	resp, err := h.transactions.ListByEvent(ctx, service.ListEventTransactionsQuery{
		EventID:     eventID,
		OrganizerID: middleware.ActorID(c),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) ListNotifications(c *fiber.Ctx) error {
	ctx := c.UserContext()
	limit, offset := pagination(c)

	resp, err := h.notifications.ListByUser(ctx, service.ListNotificationsQuery{
		UserID: middleware.ActorID(c),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	ctx := c.UserContext()

	notificationID, ok := pathID(c, "id")
	if !ok {
		return nil
	}

	if err := h.notifications.MarkRead(ctx, notificationID, middleware.ActorID(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// pathID parses a numeric path parameter, writing the 400 response
// itself when the value is unusable.
func pathID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeValidation,
			"message": "invalid path parameter",
		})
		return 0, false
	}

	return id, true
}

func pagination(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", defaultPageSize)
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

func badRequestBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    constants.ErrCodeInvalidRequestBody,
		"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
	})
}
